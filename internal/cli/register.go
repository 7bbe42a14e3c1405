package cli

import (
	"fmt"

	"github.com/arcade-hub/arcadehub/internal/config"
	"github.com/arcade-hub/arcadehub/internal/game"
	"github.com/arcade-hub/arcadehub/internal/registry"
	"github.com/arcade-hub/arcadehub/internal/ui"
	"github.com/spf13/cobra"
)

var registerTags []string

func init() {
	registerCmd.Flags().StringSliceVar(&registerTags, "tags", nil, "Tags for the game (space or comma separated, must come last)")
	rootCmd.AddCommand(registerCmd)
}

var registerCmd = &cobra.Command{
	Use:   "register <game_id> <title> <description> <category> [--tags t1 t2 ...]",
	Short: "Add a game to the site registry",
	Long: `Insert a new entry at the front of the GAMES array in the site's registry
file (js/main.js by default). Everything else in the file is left untouched.

Categories: ` + game.CategoryList() + `

Examples:
  arcadehub register snake "Snake" "Eat apples, grow longer." arcade --tags retro classic
  arcadehub register snake "Snake" "Eat apples, grow longer." arcade --tags retro,classic`,
	Args: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("tags") {
			return cobra.MinimumNArgs(4)(cmd, args)
		}
		return cobra.ExactArgs(4)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := game.ParseCategory(args[3])
		if err != nil {
			return err
		}

		// "--tags a b c" leaves b and c as trailing positional arguments.
		tags := append(append([]string{}, registerTags...), args[4:]...)
		desc := game.Descriptor{
			ID:          args[0],
			Title:       args[1],
			Description: args[2],
			Category:    category,
			Tags:        game.NormalizeTags(tags),
		}

		p := registry.NewPatcher(siteFs, site().RegistryFile, config.Get(config.KeyAuthor), logger)
		p.Now = now
		if _, err := p.Register(desc); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		ui.Success(out, "Game '%s' registered successfully in %s", desc.Title, p.Path)
		fmt.Fprintf(out, "  thumbnail: %s\n", desc.ThumbnailPath())
		fmt.Fprintf(out, "  path:      %s\n", desc.ContentPath())
		return nil
	},
}
