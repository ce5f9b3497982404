package settings

import (
	_ "embed"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/settingsguard/pkg/config"
	"github.com/arthur-debert/settingsguard/pkg/errors"
	"github.com/arthur-debert/settingsguard/pkg/logging"
	"github.com/arthur-debert/settingsguard/pkg/types"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultSettings []byte

// Format is the encoding of a settings document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat accepts a format name or a file extension
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", errors.Newf(errors.ErrUnsupportedFormat,
			"unsupported settings format %q (want json, yaml or toml)", s)
	}
}

func parserFor(format Format) (koanf.Parser, error) {
	switch format {
	case FormatJSON:
		return json.Parser(), nil
	case FormatYAML:
		return yaml.Parser(), nil
	case FormatTOML:
		return toml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrUnsupportedFormat, "unsupported settings format %q", format)
	}
}

// LoadFile reads a settings document, picking the parser from the extension
func LoadFile(path string) (types.Snapshot, error) {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrUnsupportedFormat, "cannot load settings").
			WithDetail("path", path)
	}
	parser, err := parserFor(format)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSettingsLoad, "cannot read settings file %s", path).
			WithDetail("path", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSettingsParse, "failed to parse settings from %s", path).
			WithDetail("path", path)
	}
	return fromKoanf(k, path), nil
}

// Parse decodes a settings document held in memory
func Parse(data []byte, format Format) (types.Snapshot, error) {
	parser, err := parserFor(format)
	if err != nil {
		return nil, err
	}
	k := koanf.New(".")
	if err := k.Load(config.NewBytesProvider(data), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSettingsParse, "invalid %s settings document", format)
	}
	return fromKoanf(k, "<memory>"), nil
}

// Read decodes a settings document from r, typically stdin
func Read(r io.Reader, format Format) (types.Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSettingsLoad, "failed to read settings")
	}
	return Parse(data, format)
}

// Defaults returns the default agent behavior settings
func Defaults() types.Snapshot {
	snap, err := Parse(defaultSettings, FormatTOML)
	if err != nil {
		panic("settingsguard: embedded default settings are invalid: " + err.Error())
	}
	return snap
}

// DefaultsContent returns the embedded default settings document
func DefaultsContent() string {
	return string(defaultSettings)
}

func fromKoanf(k *koanf.Koanf, source string) types.Snapshot {
	logger := logging.GetLogger("settings")
	snap, skipped := types.SnapshotFromMap(k.All())
	for _, key := range skipped {
		logger.Debug().Str("source", source).Str("field", key).Msg("Skipping non-scalar setting")
	}
	logger.Debug().Str("source", source).Int("fields", len(snap)).Msg("Loaded settings")
	return snap
}
