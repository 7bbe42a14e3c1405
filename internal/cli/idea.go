package cli

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/arcade-hub/arcadehub/internal/game"
	"github.com/arcade-hub/arcadehub/internal/idea"
	"github.com/arcade-hub/arcadehub/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	ideaCategory   string
	ideaComplexity string
	ideaOutput     string
	ideaPrint      bool
)

// ideaRand is the concept picker's random source; nil uses the global one.
var ideaRand *rand.Rand

var complexityChoices = []string{"simple", "medium", "complex"}

func init() {
	ideaCmd.Flags().StringVar(&ideaCategory, "category", "", "Game category ("+game.CategoryList()+")")
	ideaCmd.Flags().StringVar(&ideaComplexity, "complexity", "", "Game complexity (simple, medium, complex)")
	ideaCmd.Flags().StringVarP(&ideaOutput, "output", "o", "", "Output filename (defaults to a timestamp)")
	ideaCmd.Flags().BoolVarP(&ideaPrint, "print", "p", false, "Print the proposal to the console")
	rootCmd.AddCommand(ideaCmd)
}

var ideaCmd = &cobra.Command{
	Use:   "idea",
	Short: "Draft a game proposal",
	Long: `Pick a game concept from the built-in table and write it as a markdown
proposal under the proposals directory. When no concept matches the requested
category and complexity, one is picked from the whole table.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if ideaCategory != "" {
			if _, err := game.ParseCategory(ideaCategory); err != nil {
				return err
			}
		}
		if ideaComplexity != "" && !slices.Contains(complexityChoices, ideaComplexity) {
			return fmt.Errorf("invalid complexity %q: must be one of simple, medium, complex", ideaComplexity)
		}

		concept, err := idea.Generate(ideaCategory, ideaComplexity, ideaRand)
		if err != nil {
			return err
		}
		logger.Debug("picked concept",
			zap.String("title", concept.Title),
			zap.String("category", concept.Category),
			zap.String("difficulty", concept.Difficulty))

		proposal, err := idea.Format(concept)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if ideaPrint {
			fmt.Fprintln(out, proposal)
		}

		path, err := idea.Save(siteFs, site().ProposalsDir, ideaOutput, proposal, now())
		if err != nil {
			return err
		}
		ui.Success(out, "Game proposal saved to: %s", path)
		fmt.Fprintln(out, "\nNOTE: Concepts come from a fixed built-in table. Future versions will generate more creative and detailed game ideas.")
		return nil
	},
}
