package main

import (
	"fmt"

	"github.com/arthur-debert/settingsguard/pkg/config"
	"github.com/arthur-debert/settingsguard/pkg/paths"
	"github.com/arthur-debert/settingsguard/pkg/settings"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "defaults",
		Short: MsgConfigDefShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), config.DefaultConfigContent())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "settings",
		Short: MsgConfigSettingsShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), settings.DefaultsContent())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: MsgConfigPathShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config: %s\n", paths.ConfigFilePath())
			fmt.Fprintf(out, "rules:  %s\n", paths.RulesDir())
			fmt.Fprintf(out, "log:    %s\n", paths.LogFilePath())
		},
	})

	return cmd
}
