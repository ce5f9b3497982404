package main

import (
	"github.com/arthur-debert/settingsguard/pkg/core"
	"github.com/arthur-debert/settingsguard/pkg/types"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var (
		rf          ruleFlags
		assignments []string
		format      string
		stdinFormat string
		field       string
		value       string
	)

	cmd := &cobra.Command{
		Use:     "check [FILE] --field FIELD --value VALUE",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd, format, types.SeverityMedium)
			if err != nil {
				return err
			}

			engine, err := rf.engine()
			if err != nil {
				return err
			}

			opts := core.CheckOptions{
				SettingsSource: core.SettingsSource{
					Assignments: assignments,
					StdinFormat: stdinFormat,
					Stdin:       cmd.InOrStdin(),
				},
				Field: field,
				Value: value,
			}
			if len(args) == 1 {
				opts.Path = args[0]
			}

			check, err := engine.Check(opts)
			if err != nil {
				return err
			}
			if err := renderer.Check(*check); err != nil {
				return err
			}
			if check.Disabled {
				return findings()
			}
			return nil
		},
	}

	rf.register(cmd, false)
	cmd.Flags().StringArrayVar(&assignments, "set", nil, MsgFlagSet)
	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().StringVar(&stdinFormat, "stdin-format", "json", MsgFlagStdinFormat)
	cmd.Flags().StringVar(&field, "field", "", MsgFlagField)
	cmd.Flags().StringVar(&value, "value", "", MsgFlagValue)
	_ = cmd.MarkFlagRequired("field")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}
