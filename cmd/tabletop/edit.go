package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tabletop-inventory/internal/orchestrators/character"
)

func newEditCmd(a *app) *cobra.Command {
	var (
		name        string
		gameSystem  string
		level       int
		notes       string
		appendNotes string
	)

	cmd := &cobra.Command{
		Use:   "edit CHARACTER",
		Short: "Change a character's name, game system, level or notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := a.resolve(ctx, args[0])
			if err != nil {
				return err
			}
			got, err := a.manager.GetCharacter(ctx, &character.GetCharacterInput{ID: id})
			if err != nil {
				return err
			}
			c := got.Character

			flags := cmd.Flags()
			update := &character.UpdateCharacterInput{ID: id}
			var fields characterFields
			if flags.Changed("name") {
				update.Name = &name
				fields.Name = &name
			}
			if flags.Changed("system") {
				update.GameSystem = &gameSystem
			}
			if flags.Changed("level") {
				update.Level = &level
				fields.Level = &level
			}
			switch {
			case flags.Changed("notes"):
				update.Notes = &notes
			case flags.Changed("append-notes"):
				combined := appendNotes
				if c.Notes != "" {
					combined = c.Notes + "\n" + appendNotes
				}
				update.Notes = &combined
			}

			if err := checkInput(fields); err != nil {
				return err
			}
			if _, err := a.manager.UpdateCharacter(ctx, update); err != nil {
				return err
			}
			if err := a.save(ctx, id); err != nil {
				return err
			}

			a.printf("Updated %s\n", characterName(c))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&gameSystem, "system", "", "new game system")
	cmd.Flags().IntVar(&level, "level", 1, "new level")
	cmd.Flags().StringVar(&notes, "notes", "", "replace the notes")
	cmd.Flags().StringVar(&appendNotes, "append-notes", "", "add a line to the notes")
	cmd.MarkFlagsMutuallyExclusive("notes", "append-notes")

	return cmd
}
