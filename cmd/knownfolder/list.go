// List command for the knownfolder CLI.
package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/knownfolders/pkg/knownfolders"
)

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every known folder and its GUID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			folders := knownfolders.Folders()

			if flags.jsonMode {
				entries := make([]listEntry, 0, len(folders))
				for _, f := range folders {
					entries = append(entries, listEntry{Folder: f.String(), ID: f.ID().String()})
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(entries)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, f := range folders {
				fmt.Fprintf(w, "%s\t%s\n", f, f.ID())
			}
			return w.Flush()
		},
	}
}

// listEntry is the JSON output shape of one list row.
type listEntry struct {
	Folder string `json:"folder"`
	ID     string `json:"id"`
}
