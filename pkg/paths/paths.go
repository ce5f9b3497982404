package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for settingsguard
	EnvConfigDir = "SETTINGSGUARD_CONFIG_DIR"

	// EnvStateHome is the XDG state directory variable
	EnvStateHome = "XDG_STATE_HOME"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names inside the XDG directories. These are not user-configurable.
const (
	// AppDirName is the directory name used under each XDG base directory
	AppDirName = "settingsguard"

	// ConfigFileName is the user configuration file inside ConfigDir
	ConfigFileName = "config.toml"

	// RulesDirName holds user rule files picked up automatically
	RulesDirName = "rules.d"

	// LogFileName is the name of the log file
	LogFileName = "settingsguard.log"
)

// ConfigDir returns the settingsguard config directory.
// SETTINGSGUARD_CONFIG_DIR wins over $XDG_CONFIG_HOME/settingsguard.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFilePath returns the path of the user configuration file
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// RulesDir returns the directory scanned for user rule files
func RulesDir() string {
	return filepath.Join(ConfigDir(), RulesDirName)
}

// StateDir returns the settingsguard state directory
func StateDir() string {
	if dir := os.Getenv(EnvStateHome); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the path to the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
