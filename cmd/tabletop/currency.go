package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tabletop-inventory/internal/display"
	"github.com/KirkDiggler/tabletop-inventory/internal/entities"
	"github.com/KirkDiggler/tabletop-inventory/internal/errors"
	"github.com/KirkDiggler/tabletop-inventory/internal/orchestrators/character"
)

func newCurrencyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency",
		Short: "Set or convert a character's coins",
	}

	cmd.AddCommand(newCurrencySetCmd(a), newCurrencyConvertCmd(a))

	return cmd
}

func newCurrencySetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set CHARACTER DENOMINATION AMOUNT",
		Short: "Set the number of coins of one denomination",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			if err := checkInput(coinFields{Amount: amount, Denomination: args[1]}); err != nil {
				return err
			}
			denomination, _ := entities.ParseDenomination(args[1])

			id, err := a.resolve(ctx, args[0])
			if err != nil {
				return err
			}

			out, err := a.manager.SetCurrency(ctx, &character.SetCurrencyInput{
				CharacterID:  id,
				Denomination: denomination,
				Amount:       amount,
			})
			if err != nil {
				return err
			}
			if err := a.save(ctx, id); err != nil {
				return err
			}

			a.printf("%s\n", out.Currency)
			return nil
		},
	}
}

func newCurrencyConvertCmd(a *app) *cobra.Command {
	var (
		apply  bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "convert CHARACTER AMOUNT FROM TO",
		Short: "Show or apply a conversion between denominations",
		Long: `Show what AMOUNT coins of FROM are worth in TO. With --apply the coins are
moved; only whole coins are credited and any remainder is lost.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			for _, d := range args[2:] {
				if err := checkInput(coinFields{Amount: amount, Denomination: d}); err != nil {
					return err
				}
			}
			from, _ := entities.ParseDenomination(args[2])
			to, _ := entities.ParseDenomination(args[3])

			id, err := a.resolve(ctx, args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("strict") {
				strict = a.cfg.StrictCurrency
			}

			out, err := a.manager.ConvertCurrency(ctx, &character.ConvertCurrencyInput{
				CharacterID: id,
				Amount:      amount,
				From:        from,
				To:          to,
				Apply:       apply,
				Strict:      strict,
			})
			if err != nil {
				return err
			}

			a.printf("%d %s = %s %s\n", amount, from, out.Result.String(), to)
			if !out.Applied {
				return nil
			}

			if err := a.save(ctx, id); err != nil {
				return err
			}
			a.printf("%s credited %d. Now %s\n", display.Capitalize(string(to)), out.Credited, out.Currency)
			return nil
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "move the coins")
	cmd.Flags().BoolVar(&strict, "strict", false, "refuse to leave FROM negative (env TABLETOP_STRICT_CURRENCY)")

	return cmd
}

func parseAmount(s string) (int, error) {
	amount, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.InvalidArgumentf("amount %q is not a whole number", s)
	}
	return amount, nil
}
