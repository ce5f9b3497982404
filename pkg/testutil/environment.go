package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/settingsguard/pkg/paths"
)

// TestEnvironment points settingsguard's config and state directories at
// temp dirs for the duration of a test
type TestEnvironment struct {
	ConfigDir string
	StateDir  string

	t *testing.T
}

// NewTestEnvironment creates an isolated environment. The variables it sets
// are restored by t.Setenv when the test ends.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		ConfigDir: t.TempDir(),
		StateDir:  t.TempDir(),
		t:         t,
	}

	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvStateHome, env.StateDir)
	t.Setenv("XDG_CONFIG_HOME", "")

	return env
}

// WriteConfig writes the user config.toml
func (env *TestEnvironment) WriteConfig(content string) string {
	env.t.Helper()
	return CreateFile(env.t, env.ConfigDir, paths.ConfigFileName, content)
}

// WriteRuleFile drops a rule file into the user rules.d directory
func (env *TestEnvironment) WriteRuleFile(name, content string) string {
	env.t.Helper()
	return CreateFile(env.t, filepath.Join(env.ConfigDir, paths.RulesDirName), name, content)
}

// RulesDir returns the rules.d path inside ConfigDir
func (env *TestEnvironment) RulesDir() string {
	return filepath.Join(env.ConfigDir, paths.RulesDirName)
}
