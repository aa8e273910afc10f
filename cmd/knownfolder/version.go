// Version command for the knownfolder CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/knownfolders/pkg/knownfolders"
)

const modulePath = "github.com/mesh-intelligence/knownfolders"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the knownfolder version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "knownfolder v%s\nmodule: %s\n", knownfolders.Version, modulePath)
			return nil
		},
	}
}
