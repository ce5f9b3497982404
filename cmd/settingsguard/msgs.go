package main

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort           = "Check agent behavior settings for conflicts and risky combinations"
	MsgValidateShort       = "Report conflicts and warnings for a settings file"
	MsgCheckShort          = "Tell whether an option would conflict with current settings"
	MsgRulesShort          = "Inspect the effective rule store"
	MsgRulesListShort      = "Print the catalogue of conflict and warning rules"
	MsgRulesLintShort      = "Report rules that can never fire"
	MsgRulesSchemaShort    = "Print the JSON schema of rule files"
	MsgConfigShort         = "Show configuration defaults and locations"
	MsgConfigDefShort      = "Print the default configuration file"
	MsgConfigPathShort     = "Print the config, rules and log locations"
	MsgConfigSettingsShort = "Print the default agent settings validated when no FILE is given"
	MsgVersionShort        = "Print version information"
	MsgCompletionShort     = "Generate shell completion script"
	MsgManShort            = "Generate the settingsguard(1) man page"

	// Flag descriptions
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig         = "Config file (default $XDG_CONFIG_HOME/settingsguard/config.toml)"
	MsgFlagRules          = "Extra rule file (JSON, YAML or TOML), repeatable"
	MsgFlagNoDefaults     = "Leave out the built-in rules"
	MsgFlagSet            = "Override a setting, field=value, repeatable"
	MsgFlagFormat         = "Output format: auto, term, text, json, markdown or junit"
	MsgFlagStdinFormat    = "Format of settings read from stdin: json, yaml or toml"
	MsgFlagFailOnWarnings = "Also fail when a warning at or above --min-severity fires"
	MsgFlagMinSeverity    = "Lowest failing warning severity: low, medium or high"
	MsgFlagField          = "Field to try"
	MsgFlagValue          = "Value to try for --field"

	// Error messages
	MsgErrMinSeverity = "invalid --min-severity %q: want low, medium or high"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/validate-long.txt
	msgValidateLongRaw string
	MsgValidateLong    = strings.TrimSpace(msgValidateLongRaw)

	//go:embed msgs/validate-example.txt
	msgValidateExampleRaw string
	MsgValidateExample    = strings.TrimRight(msgValidateExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
