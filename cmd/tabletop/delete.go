package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tabletop-inventory/internal/orchestrators/character"
)

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete CHARACTER",
		Short: "Delete a character and its file",
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
			name := characterName(got.Character)

			if _, err := a.manager.DeleteCharacter(ctx, &character.DeleteCharacterInput{ID: id}); err != nil {
				return err
			}

			a.printf("Deleted %s (%s)\n", name, id)
			return nil
		},
	}
}
