// Package config handles configuration management for settingsguard.
// It layers the embedded defaults, the user config file and
// SETTINGSGUARD_ environment variables with koanf.
package config
