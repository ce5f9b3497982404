package main

import (
	"github.com/arthur-debert/settingsguard/pkg/core"
	"github.com/arthur-debert/settingsguard/pkg/logging"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var (
		rf             ruleFlags
		assignments    []string
		format         string
		stdinFormat    string
		failOnWarnings bool
		minSeverity    string
	)

	cmd := &cobra.Command{
		Use:     "validate [FILE]",
		Short:   MsgValidateShort,
		Long:    MsgValidateLong,
		Example: MsgValidateExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.validate")

			minSev, err := parseMinSeverity(minSeverity)
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cmd, format, minSev)
			if err != nil {
				return err
			}

			engine, err := rf.engine()
			if err != nil {
				return err
			}

			src := core.SettingsSource{
				Assignments: assignments,
				StdinFormat: stdinFormat,
				Stdin:       cmd.InOrStdin(),
			}
			if len(args) == 1 {
				src.Path = args[0]
			}

			res, err := engine.Validate(src)
			if err != nil {
				return err
			}
			if err := renderer.Result(res.Result); err != nil {
				return err
			}

			failing := res.HasConflicts() ||
				(failOnWarnings && len(res.WarningsAtLeast(minSev)) > 0)
			logger.Info().
				Int("conflicts", len(res.Conflicts)).
				Int("warnings", len(res.Warnings)).
				Bool("failing", failing).
				Msg("Validate finished")

			if failing {
				return findings()
			}
			return nil
		},
	}

	rf.register(cmd, false)
	cmd.Flags().StringArrayVar(&assignments, "set", nil, MsgFlagSet)
	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().StringVar(&stdinFormat, "stdin-format", "json", MsgFlagStdinFormat)
	cmd.Flags().BoolVar(&failOnWarnings, "fail-on-warnings", false, MsgFlagFailOnWarnings)
	cmd.Flags().StringVar(&minSeverity, "min-severity", "", MsgFlagMinSeverity)

	return cmd
}
