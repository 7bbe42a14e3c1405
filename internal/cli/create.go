package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/arcade-hub/arcadehub/internal/game"
	"github.com/arcade-hub/arcadehub/internal/scaffold"
	"github.com/arcade-hub/arcadehub/internal/ui"
	"github.com/spf13/cobra"
)

var createInteractive bool

func init() {
	createCmd.Flags().BoolVarP(&createInteractive, "interactive", "i", false, "Prompt for any missing argument")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <game_id> <title> <category>",
	Short: "Create a new game scaffold",
	Long: `Create games/<game_id>/ with index.html, game.js and style.css filled in
from built-in templates, and make sure the shared images/ directory exists.

Categories: ` + game.CategoryList() + `

Examples:
  arcadehub create snake "Snake" arcade
  arcadehub create -i`,
	Args: func(cmd *cobra.Command, args []string) error {
		if createInteractive {
			return cobra.MaximumNArgs(3)(cmd, args)
		}
		return cobra.ExactArgs(3)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		answers := createAnswers{}
		fields := []*string{&answers.ID, &answers.Title, &answers.Category}
		for i, a := range args {
			*fields[i] = a
		}
		if createInteractive {
			if err := askCreate(&answers); err != nil {
				return err
			}
		}

		s := site()
		gen := scaffold.NewGenerator(siteFs, s.GamesDir, s.ImagesDir, logger)
		result, err := gen.Create(scaffold.NewScaffoldData(answers.ID, answers.Title, answers.Category, now()))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		ui.Success(out, "Game scaffold created successfully in %s", result.OutputDir)
		for _, f := range result.Files {
			fmt.Fprintf(out, "  %s\n", f)
		}
		for _, w := range result.Warnings {
			ui.Warning(out, "%s", w)
		}

		fmt.Fprintln(out, "\nNext steps:")
		fmt.Fprintln(out, "  1. Edit game.js to add your game logic")
		fmt.Fprintf(out, "  2. Run 'arcadehub register %s ...' to list it on the site\n", answers.ID)
		return nil
	},
}

type createAnswers struct {
	ID       string
	Title    string
	Category string
}

// askCreate prompts for the fields still empty in a. Replaced in tests.
var askCreate = func(a *createAnswers) error {
	var qs []*survey.Question
	if a.ID == "" {
		qs = append(qs, &survey.Question{
			Name:     "id",
			Prompt:   &survey.Input{Message: "Game id (directory name):"},
			Validate: survey.ComposeValidators(survey.Required, validateID),
		})
	}
	if a.Title == "" {
		qs = append(qs, &survey.Question{
			Name:     "title",
			Prompt:   &survey.Input{Message: "Title:"},
			Validate: survey.Required,
		})
	}
	if a.Category == "" {
		options := make([]string, len(game.Categories))
		for i, c := range game.Categories {
			options[i] = string(c)
		}
		qs = append(qs, &survey.Question{
			Name:   "category",
			Prompt: &survey.Select{Message: "Category:", Options: options},
		})
	}
	if len(qs) == 0 {
		return nil
	}

	resp := struct {
		ID       string `survey:"id"`
		Title    string `survey:"title"`
		Category string `survey:"category"`
	}{}
	if err := survey.Ask(qs, &resp); err != nil {
		return fmt.Errorf("prompting for game details: %w", err)
	}
	if resp.ID != "" {
		a.ID = resp.ID
	}
	if resp.Title != "" {
		a.Title = resp.Title
	}
	if resp.Category != "" {
		a.Category = resp.Category
	}
	return nil
}

func validateID(ans interface{}) error {
	s, _ := ans.(string)
	return game.ValidateID(s)
}
