// Package settings reads settings snapshots for the validator.
//
// Snapshots come from JSON, YAML or TOML documents, from `field=value`
// assignments given on the command line, or from the built-in defaults of
// the agent behavior form. Nested objects are flattened into dotted field
// names, so {"dailyLimits": {"comments": 50}} becomes dailyLimits.comments.
package settings
