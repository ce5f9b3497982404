package rules

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/settingsguard/pkg/errors"
	"github.com/arthur-debert/settingsguard/pkg/logging"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a rule file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the rule file format from its extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.Newf(errors.ErrUnsupportedFormat,
			"unsupported rule file extension %q (want .json, .yaml, .yml or .toml)", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// Parse decodes a rule document and checks it against the rule schema.
// Predicate strings are not checked here; they fail closed at evaluation.
func Parse(data []byte, format Format) (RuleSet, error) {
	var raw interface{}

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return RuleSet{}, errors.Wrap(err, errors.ErrRulesParse, "invalid JSON rule document")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return RuleSet{}, errors.Wrap(err, errors.ErrRulesParse, "invalid YAML rule document")
		}
	case FormatTOML:
		var m map[string]interface{}
		if err := toml.Unmarshal(data, &m); err != nil {
			return RuleSet{}, errors.Wrap(err, errors.ErrRulesParse, "invalid TOML rule document")
		}
		raw = m
	default:
		return RuleSet{}, errors.Newf(errors.ErrUnsupportedFormat, "unsupported rule format %q", format)
	}

	if raw == nil {
		raw = map[string]interface{}{}
	}

	// Round-trip through JSON so YAML and TOML values look like JSON values
	// to the schema validator.
	normalized, err := json.Marshal(raw)
	if err != nil {
		return RuleSet{}, errors.Wrap(err, errors.ErrRulesParse, "rule document cannot be represented as JSON")
	}
	var doc interface{}
	if err := json.Unmarshal(normalized, &doc); err != nil {
		return RuleSet{}, errors.Wrap(err, errors.ErrInternal, "failed to normalize rule document")
	}

	if err := validateDocument(doc); err != nil {
		return RuleSet{}, errors.Wrap(err, errors.ErrRulesInvalid, "rule document does not match the rule schema")
	}

	var rs RuleSet
	if err := json.Unmarshal(normalized, &rs); err != nil {
		return RuleSet{}, errors.Wrap(err, errors.ErrRulesParse, "failed to decode rule document")
	}
	return rs, nil
}

// LoadFile reads and parses a single rule file
func LoadFile(path string) (RuleSet, error) {
	logger := logging.GetLogger("rules.loader")

	format, err := FormatFromPath(path)
	if err != nil {
		return RuleSet{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, errors.Wrapf(err, errors.ErrRulesLoad, "failed to read rule file %s", path).
			WithDetail("path", path)
	}

	rs, err := Parse(data, format)
	if err != nil {
		return RuleSet{}, errors.Wrapf(err, errors.GetErrorCode(err), "rule file %s", path).
			WithDetail("path", path)
	}

	pairs, warnings := rs.Counts()
	logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("conflictPairs", pairs).
		Int("warnings", warnings).
		Msg("Loaded rule file")

	return rs, nil
}

// LoadFiles loads every path in order and merges the results
func LoadFiles(paths ...string) (RuleSet, error) {
	sets := make([]RuleSet, 0, len(paths))
	for _, p := range paths {
		rs, err := LoadFile(p)
		if err != nil {
			return RuleSet{}, err
		}
		sets = append(sets, rs)
	}
	return Merge(sets...), nil
}

// LoadDir loads every rule file in dir, sorted by name. A missing
// directory is not an error and yields an empty rule set.
func LoadDir(dir string) (RuleSet, error) {
	logger := logging.GetLogger("rules.loader")

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		logger.Debug().Str("dir", dir).Msg("No rules directory, skipping")
		return RuleSet{}, nil
	}
	if err != nil {
		return RuleSet{}, errors.Wrapf(err, errors.ErrRulesLoad, "failed to read rules directory %s", dir)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ferr := FormatFromPath(e.Name()); ferr != nil {
			logger.Debug().Str("file", e.Name()).Msg("Skipping non-rule file")
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)

	return LoadFiles(files...)
}
