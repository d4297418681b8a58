package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tabletop-inventory/internal/display"
	"github.com/KirkDiggler/tabletop-inventory/internal/orchestrators/character"
)

func newShowCmd(a *app) *cobra.Command {
	var byRarity bool

	cmd := &cobra.Command{
		Use:   "show CHARACTER",
		Short: "Show a character sheet",
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
			summary, err := a.manager.GetSummary(ctx, &character.GetSummaryInput{ID: id})
			if err != nil {
				return err
			}

			c := got.Character
			if byRarity {
				sorted := *c
				sorted.Inventory = c.InventoryByRarity()
				c = &sorted
			}

			a.printf("%s", display.Sheet(c, string(summary.Summary.Status), a.cfg.WrapWidth))
			return nil
		},
	}

	cmd.Flags().BoolVar(&byRarity, "by-rarity", false, "list the rarest items first")

	return cmd
}
