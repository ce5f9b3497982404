package main

import (
	"github.com/arthur-debert/settingsguard/pkg/rules"
	"github.com/arthur-debert/settingsguard/pkg/types"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	var rf ruleFlags

	cmd := &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		GroupID: "core",
	}
	rf.register(cmd, true)

	cmd.AddCommand(newRulesListCmd(&rf))
	cmd.AddCommand(newRulesLintCmd(&rf))
	cmd.AddCommand(newRulesSchemaCmd())
	return cmd
}

func newRulesListCmd(rf *ruleFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: MsgRulesListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd, format, types.SeverityMedium)
			if err != nil {
				return err
			}
			engine, err := rf.engine()
			if err != nil {
				return err
			}
			return renderer.Rules(engine.RuleSet, engine.Sources)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	return cmd
}

func newRulesLintCmd(rf *ruleFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "lint",
		Short: MsgRulesLintShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd, format, types.SeverityMedium)
			if err != nil {
				return err
			}
			engine, err := rf.engine()
			if err != nil {
				return err
			}

			issues := engine.Lint()
			if err := renderer.Lint(issues); err != nil {
				return err
			}
			if len(issues) > 0 {
				return findings()
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	return cmd
}

func newRulesSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: MsgRulesSchemaShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(rules.SchemaJSON())
			return err
		},
	}
}
