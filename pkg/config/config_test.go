// Test Type: Unit Test
// Description: Tests for the config package - layered loading and global access

package config_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/settingsguard/pkg/config"
	"github.com/arthur-debert/settingsguard/pkg/errors"
	"github.com/arthur-debert/settingsguard/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.True(t, cfg.Rules.IncludeDefaults)
	assert.True(t, cfg.Rules.ScanUserDir)
	assert.Empty(t, cfg.Rules.Files)
	assert.True(t, cfg.Query.DedupeConflictingFields)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.Equal(t, "medium", cfg.Output.MinSeverity)
	assert.True(t, cfg.Logging.File)
}

func TestLoad_NoUserFile(t *testing.T) {
	testutil.NewTestEnvironment(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_UserFileOverridesDefaults(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	content := `
[rules]
include_defaults = false
files = ["/etc/team-rules.yaml"]

[output]
format = "JSON"
min_severity = "high"
`
	env.WriteConfig(content)

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Rules.IncludeDefaults)
	assert.Equal(t, []string{"/etc/team-rules.yaml"}, cfg.Rules.Files)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "high", cfg.Output.MinSeverity)
	// untouched keys keep their defaults
	assert.True(t, cfg.Query.DedupeConflictingFields)
}

func TestLoad_ExplicitPath(t *testing.T) {
	testutil.NewTestEnvironment(t)
	path := testutil.CreateTempFile(t, "custom.toml", "[query]\ndedupe_conflicting_fields = false\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Query.DedupeConflictingFields)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	testutil.NewTestEnvironment(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_MalformedFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteConfig("[rules\n")

	_, err := config.Load("")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("SETTINGSGUARD_QUERY__DEDUPE_CONFLICTING_FIELDS", "false")
	t.Setenv("SETTINGSGUARD_OUTPUT__MIN_SEVERITY", "low")
	t.Setenv("SETTINGSGUARD_RULES__FILES", "a.json,b.yaml")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Query.DedupeConflictingFields)
	assert.Equal(t, "low", cfg.Output.MinSeverity)
	assert.Equal(t, []string{"a.json", "b.yaml"}, cfg.Rules.Files)
}

func TestLoad_RejectsConflictSeverityThreshold(t *testing.T) {
	testutil.NewTestEnvironment(t)
	t.Setenv("SETTINGSGUARD_OUTPUT__MIN_SEVERITY", "error")

	_, err := config.Load("")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestInitializeAndGet(t *testing.T) {
	t.Cleanup(func() { config.Initialize(nil) })

	config.Initialize(nil)
	assert.Equal(t, config.Default(), config.Get())

	custom := &config.Config{Output: config.OutputConfig{Format: "text", MinSeverity: "low"}}
	config.Initialize(custom)
	assert.Equal(t, "text", config.GetOutput().Format)
	assert.False(t, config.GetRules().IncludeDefaults)
	assert.False(t, config.GetQuery().DedupeConflictingFields)
	assert.False(t, config.GetLogging().File)
}

func TestDefaultConfigContent(t *testing.T) {
	assert.Contains(t, config.DefaultConfigContent(), "[rules]")
}
