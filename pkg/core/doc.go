// Package core wires the settingsguard building blocks together for the
// command line. It loads the configuration, assembles the effective rule
// set and builds a validator from it.
//
// # Rule set assembly
//
// Rule sets are merged in this order, later sets appending to earlier ones:
//
//  1. The built-in agent behavior rules (rules.include_defaults)
//  2. Every rule file in $XDG_CONFIG_HOME/settingsguard/rules.d
//     (rules.scan_user_dir), sorted by name
//  3. The files listed in rules.files
//  4. Files passed with --rules
//
// Merging never removes or overrides rules. A conflict category that appears
// twice is reported twice.
//
// # Settings sources
//
// Settings come from a JSON, YAML or TOML file, from stdin when the path
// is "-", or from the built-in defaults when no path is given. field=value
// assignments are applied on top.
package core
