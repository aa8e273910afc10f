// Resolve command for the knownfolder CLI.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/knownfolders/pkg/knownfolders"
)

func newResolveCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [FOLDER]",
		Short: "Print the path of a known folder",
		Long: "Resolve prints the absolute path of the named known folder for\n" +
			"the current user. With no argument it resolves the default folder\n" +
			"from config.yaml (Profile out of the box).",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.configDir)
			if err != nil {
				return err
			}

			name := cfg.GetString(cfgKeyFolder)
			if len(args) == 1 {
				name = args[0]
			}

			folder, err := knownfolders.Parse(name)
			if err != nil {
				return err
			}

			path, err := knownfolders.Path(folder)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", folder, err)
			}

			if jsonOutput(cmd, flags, cfg) {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(resolveResult{
					Folder: folder.String(),
					ID:     folder.ID().String(),
					Path:   path,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

// resolveResult is the JSON output shape of the resolve command.
type resolveResult struct {
	Folder string `json:"folder"`
	ID     string `json:"id"`
	Path   string `json:"path"`
}

// jsonOutput reports whether output should be JSON: the --json flag
// when given, otherwise the config.yaml default.
func jsonOutput(cmd *cobra.Command, flags *rootFlags, cfg *viper.Viper) bool {
	if cmd.Flags().Changed("json") {
		return flags.jsonMode
	}
	return cfg.GetBool(cfgKeyJSON)
}
