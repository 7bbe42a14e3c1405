package cli

import (
	"fmt"

	"github.com/arcade-hub/arcadehub/internal/branding"
	"github.com/arcade-hub/arcadehub/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write ` + branding.DisplayName() + ` settings stored at ~/` + branding.HomeDir() + `/config.yaml.

Keys:
  ` + config.KeyGamesDir + `         directory holding game folders (default games)
  ` + config.KeyImagesDir + `        directory holding thumbnails (default images)
  ` + config.KeyRegistryFile + `     registry script (default js/main.js)
  ` + config.KeyAuthor + `       author written into new registry entries
  ` + config.KeyProposalsDir + `   directory for idea proposals (default proposals)
  ` + config.KeyNodeConstraint + `  Node.js version required by the JS suite`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
