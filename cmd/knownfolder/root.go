// Root command for the knownfolder CLI.
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/knownfolders/pkg/knownfolders"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values shared by subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
}

// newRootCmd creates the top-level "knownfolder" command with global
// flags and all subcommands registered.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "knownfolder",
		Short: "Resolve Windows known folder locations",
		Long: "Knownfolder prints the on-disk location of Windows well-known\n" +
			"folders (the user profile, Downloads, roaming application data)\n" +
			"through the Known Folders API.",
		Version:       knownfolders.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newResolveCmd(flags))
	root.AddCommand(newListCmd(flags))
	root.AddCommand(newVersionCmd())

	return root
}

// exitCode maps an error returned by command execution to a process
// exit code: user mistakes and absent folders exit 1, a platform
// without the Known Folders API exits 2.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, knownfolders.ErrUnsupported):
		return exitSysError
	default:
		return exitUserError
	}
}
