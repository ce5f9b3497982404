package core

import (
	"github.com/arthur-debert/settingsguard/pkg/config"
	"github.com/arthur-debert/settingsguard/pkg/logging"
)

// Initialize loads the configuration from configPath (the user config file
// when empty) and installs it as the global configuration.
func Initialize(configPath string) (*config.Config, error) {
	logger := logging.GetLogger("core.init")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	config.Initialize(cfg)

	logger.Debug().
		Bool("includeDefaults", cfg.Rules.IncludeDefaults).
		Int("ruleFiles", len(cfg.Rules.Files)).
		Msg("Core initialization completed")
	return cfg, nil
}

// MustInitialize calls Initialize and panics on error
func MustInitialize(configPath string) *config.Config {
	cfg, err := Initialize(configPath)
	if err != nil {
		panic("Core initialization failed: " + err.Error())
	}
	return cfg
}
