package main

import (
	"github.com/arthur-debert/settingsguard/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// newManCmd writes the man page to stdout. It is hidden because it only
// serves packaging scripts.
func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "SETTINGSGUARD",
				Section: "1",
				Source:  "settingsguard " + version.Version,
				Manual:  "settingsguard manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
