package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tabletop-inventory/internal/orchestrators/character"
)

func newCreateCmd(a *app) *cobra.Command {
	var (
		gameSystem string
		level      int
		notes      string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create and save a new character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := checkInput(characterFields{Name: &args[0], Level: &level}); err != nil {
				return err
			}

			created, err := a.manager.CreateCharacter(ctx, &character.CreateCharacterInput{
				Name:       args[0],
				GameSystem: gameSystem,
			})
			if err != nil {
				return err
			}
			c := created.Character

			update := &character.UpdateCharacterInput{ID: c.ID}
			if cmd.Flags().Changed("level") {
				update.Level = &level
			}
			if notes != "" {
				update.Notes = &notes
			}
			if _, err := a.manager.UpdateCharacter(ctx, update); err != nil {
				return err
			}

			if err := a.save(ctx, c.ID); err != nil {
				return err
			}

			a.printf("Created %s (%s)\n", c.Name, c.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&gameSystem, "system", "", "game system (env TABLETOP_DEFAULT_GAME_SYSTEM)")
	cmd.Flags().IntVar(&level, "level", 1, "starting level")
	cmd.Flags().StringVar(&notes, "notes", "", "free-text notes")

	return cmd
}
