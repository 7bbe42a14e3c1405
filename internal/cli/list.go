package cli

import (
	"fmt"

	"github.com/arcade-hub/arcadehub/internal/config"
	"github.com/arcade-hub/arcadehub/internal/registry"
	"github.com/arcade-hub/arcadehub/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the games in the site registry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := registry.NewPatcher(siteFs, site().RegistryFile, config.Get(config.KeyAuthor), logger)
		ids, err := p.List()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(ids) == 0 {
			ui.Info(out, "No games registered in %s", p.Path)
			return nil
		}
		for _, id := range ids {
			fmt.Fprintln(out, id)
		}
		return nil
	},
}
