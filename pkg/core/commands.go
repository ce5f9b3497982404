package core

import (
	"io"
	"os"

	"github.com/arthur-debert/settingsguard/pkg/errors"
	"github.com/arthur-debert/settingsguard/pkg/logging"
	"github.com/arthur-debert/settingsguard/pkg/settings"
	"github.com/arthur-debert/settingsguard/pkg/types"
)

// StdinPath reads settings from standard input
const StdinPath = "-"

// SettingsSource describes where the settings snapshot comes from
type SettingsSource struct {
	// Path is a settings file, StdinPath, or empty for the built-in defaults
	Path string
	// StdinFormat is the format of stdin input, json when empty
	StdinFormat string
	// Stdin overrides os.Stdin
	Stdin io.Reader
	// Assignments are field=value overrides applied after loading
	Assignments []string
}

// LoadSettings builds the snapshot described by src
func LoadSettings(src SettingsSource) (types.Snapshot, error) {
	var snap types.Snapshot
	var err error

	switch src.Path {
	case "":
		snap = settings.Defaults()
	case StdinPath:
		format := settings.FormatJSON
		if src.StdinFormat != "" {
			if format, err = settings.ParseFormat(src.StdinFormat); err != nil {
				return nil, err
			}
		}
		in := src.Stdin
		if in == nil {
			in = os.Stdin
		}
		snap, err = settings.Read(in, format)
	default:
		snap, err = settings.LoadFile(src.Path)
	}
	if err != nil {
		return nil, err
	}

	return settings.ApplyAssignments(snap, src.Assignments)
}

// ValidateResult is the outcome of validating one snapshot
type ValidateResult struct {
	Settings types.Snapshot `json:"-"`
	types.Result
}

// Validate loads the settings and runs the full validation
func (e *Engine) Validate(src SettingsSource) (*ValidateResult, error) {
	logger := logging.GetLogger("core.validate")
	defer logging.LogOperationStart(logger, "validate")()

	snap, err := LoadSettings(src)
	if err != nil {
		return nil, err
	}

	res := e.Validator.Validate(snap)
	logger.Debug().
		Int("conflicts", len(res.Conflicts)).
		Int("warnings", len(res.Warnings)).
		Msg("Validation finished")

	return &ValidateResult{Settings: snap, Result: res}, nil
}

// CheckOptions select the option to try against a snapshot
type CheckOptions struct {
	SettingsSource
	Field string
	// Value is typed the same way as field=value assignments
	Value string
}

// Check reports what setting opts.Field to opts.Value would conflict with
func (e *Engine) Check(opts CheckOptions) (*types.FieldCheck, error) {
	if opts.Field == "" {
		return nil, errors.New(errors.ErrInvalidInput, "a field name is required")
	}

	snap, err := LoadSettings(opts.SettingsSource)
	if err != nil {
		return nil, err
	}

	value := settings.ParseValue(opts.Value)
	conflicts := e.Validator.WouldCreateConflict(snap, opts.Field, value)
	fields := e.Validator.ConflictingFields(snap, opts.Field, value)
	if conflicts == nil {
		conflicts = []types.Conflict{}
	}
	if fields == nil {
		fields = []string{}
	}

	return &types.FieldCheck{
		Field:             opts.Field,
		Value:             value,
		Disabled:          len(conflicts) > 0,
		ConflictingFields: fields,
		Conflicts:         conflicts,
	}, nil
}
