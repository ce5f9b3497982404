package config

// Global configuration instance
var globalConfig *Config

// Initialize sets up the global configuration
func Initialize(cfg *Config) {
	if cfg == nil {
		cfg = Default()
	}
	globalConfig = cfg
}

// Get returns the current configuration
func Get() *Config {
	if globalConfig == nil {
		Initialize(nil)
	}
	return globalConfig
}

// GetRules returns rule store configuration
func GetRules() RulesConfig {
	return Get().Rules
}

// GetQuery returns query configuration
func GetQuery() QueryConfig {
	return Get().Query
}

// GetOutput returns output configuration
func GetOutput() OutputConfig {
	return Get().Output
}

// GetLogging returns logging configuration
func GetLogging() LoggingConfig {
	return Get().Logging
}
