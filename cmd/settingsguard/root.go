package main

import (
	"fmt"

	"github.com/arthur-debert/settingsguard/internal/version"
	"github.com/arthur-debert/settingsguard/pkg/cobrax/topics"
	"github.com/arthur-debert/settingsguard/pkg/config"
	"github.com/arthur-debert/settingsguard/pkg/core"
	"github.com/arthur-debert/settingsguard/pkg/logging"
	"github.com/arthur-debert/settingsguard/pkg/output"
	"github.com/arthur-debert/settingsguard/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity  int
		configFile string
	)

	rootCmd := &cobra.Command{
		Use:     "settingsguard",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := core.Initialize(configFile)

			var opts []logging.Option
			if err != nil || !cfg.Logging.File {
				opts = append(opts, logging.WithoutFile())
			}
			logging.SetupLogger(verbosity, opts...)
			if err != nil {
				return err
			}

			log.Debug().Str("command", cmd.CommandPath()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	opts := topics.Options{
		Extensions: []string{".txt", ".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if _, err := topics.InitializeWithOptions(rootCmd, helpTopics(), opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// ruleFlags are shared by every command that builds a rule store
type ruleFlags struct {
	files      []string
	noDefaults bool
}

func (f *ruleFlags) register(cmd *cobra.Command, persistent bool) {
	flags := cmd.Flags()
	if persistent {
		flags = cmd.PersistentFlags()
	}
	flags.StringArrayVar(&f.files, "rules", nil, MsgFlagRules)
	flags.BoolVar(&f.noDefaults, "no-defaults", false, MsgFlagNoDefaults)
}

func (f *ruleFlags) engine() (*core.Engine, error) {
	return core.NewEngine(config.Get(), core.EngineOptions{
		RuleFiles:  f.files,
		NoDefaults: f.noDefaults,
	})
}

// newRenderer builds the renderer for --format, falling back to the
// configured output.format
func newRenderer(cmd *cobra.Command, format string, minSeverity types.Severity) (output.Renderer, error) {
	if format == "" {
		format = config.GetOutput().Format
	}
	f, err := output.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return output.NewRenderer(cmd.OutOrStdout(), f, output.Options{MinSeverity: minSeverity})
}

// parseMinSeverity resolves --min-severity against output.min_severity
func parseMinSeverity(s string) (types.Severity, error) {
	if s == "" {
		s = config.GetOutput().MinSeverity
	}
	sev, err := types.ParseSeverity(s)
	if err != nil || !sev.IsWarningSeverity() {
		return "", fmt.Errorf(MsgErrMinSeverity, s)
	}
	return sev, nil
}
