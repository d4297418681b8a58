package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tabletop-inventory/internal/display"
	"github.com/KirkDiggler/tabletop-inventory/internal/orchestrators/character"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved characters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			listed, err := a.manager.ListCharacters(ctx, &character.ListCharactersInput{})
			if err != nil {
				return err
			}

			if len(listed.Characters) == 0 {
				a.printf("No characters in %s\n", a.cfg.SaveDir)
			}
			for _, c := range listed.Characters {
				summary, err := a.manager.GetSummary(ctx, &character.GetSummaryInput{ID: c.ID})
				if err != nil {
					return err
				}
				a.printf("%s\n", display.Row(c, string(summary.Summary.Status)))
			}

			if n := len(a.loaded.Skipped); n > 0 {
				a.printf("\n%d file(s) could not be read; run 'tabletop verify' for details\n", n)
			}
			return nil
		},
	}
}
