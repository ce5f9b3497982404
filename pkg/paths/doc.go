// Package paths provides centralized path handling for settingsguard.
// It follows the XDG Base Directory specification for the user config
// file, the user rules directory and the log file.
package paths
