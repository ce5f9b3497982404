// Package testutil provides utilities for testing settingsguard components.
//
// Key components:
//   - TestEnvironment: isolates the config and state directories so tests
//     never read the developer's own config.toml or rules.d
//   - CreateFile / CreateDir: write fixtures inline under t.TempDir()
//
// Usage guidelines:
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
