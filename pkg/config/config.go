package config

// Config is the effective settingsguard configuration
type Config struct {
	Rules   RulesConfig   `koanf:"rules"`
	Query   QueryConfig   `koanf:"query"`
	Output  OutputConfig  `koanf:"output"`
	Logging LoggingConfig `koanf:"logging"`
}

// RulesConfig selects which rule sets make up the rule store
type RulesConfig struct {
	IncludeDefaults bool     `koanf:"include_defaults"`
	ScanUserDir     bool     `koanf:"scan_user_dir"`
	Files           []string `koanf:"files"`
}

// QueryConfig tunes the what-if queries
type QueryConfig struct {
	DedupeConflictingFields bool `koanf:"dedupe_conflicting_fields"`
}

// OutputConfig holds report defaults for the CLI
type OutputConfig struct {
	Format      string `koanf:"format"`
	MinSeverity string `koanf:"min_severity"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File bool `koanf:"file"`
}

// Default returns the configuration described by the embedded defaults
func Default() *Config {
	cfg, err := load("", false)
	if err != nil {
		// The embedded defaults are covered by tests
		panic("settingsguard: embedded config defaults are invalid: " + err.Error())
	}
	return cfg
}
