package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/settingsguard/pkg/errors"
	"github.com/arthur-debert/settingsguard/pkg/logging"
	"github.com/arthur-debert/settingsguard/pkg/paths"
	"github.com/arthur-debert/settingsguard/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// sections: SETTINGSGUARD_QUERY__DEDUPE_CONFLICTING_FIELDS=false
const EnvPrefix = "SETTINGSGUARD_"

// Load builds the configuration from, in order: embedded defaults, the
// config file, and environment variables. An empty path means the user
// config file, which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	return load(path, true)
}

func load(path string, withUserLayers bool) (*Config, error) {
	logger := logging.GetLogger("config.loader")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(NewBytesProvider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	if withUserLayers {
		// 2. Config file
		explicit := path != ""
		if !explicit {
			path = paths.ConfigFilePath()
		}
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
					WithDetail("path", path)
			}
			logger.Debug().Str("path", path).Msg("Loaded config file")
		} else if explicit {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", path).
				WithDetail("path", path)
		}

		// 3. Environment
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
			return strings.ReplaceAll(key, "__", ".")
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := postProcess(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func postProcess(cfg *Config) error {
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	if cfg.Output.Format == "" {
		cfg.Output.Format = "auto"
	}

	sev, err := types.ParseSeverity(cfg.Output.MinSeverity)
	if err != nil || !sev.IsWarningSeverity() {
		return errors.Newf(errors.ErrConfigParse,
			"output.min_severity must be low, medium or high, got %q", cfg.Output.MinSeverity)
	}
	cfg.Output.MinSeverity = string(sev)

	for i, f := range cfg.Rules.Files {
		cfg.Rules.Files[i] = paths.ExpandHome(strings.TrimSpace(f))
	}
	return nil
}
