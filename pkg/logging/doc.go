// Package logging wraps zerolog setup for settingsguard.
//
// Commands call SetupLogger once from the root command; every other package
// asks for a component logger with GetLogger.
package logging
