package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tabletop-inventory/internal/display"
	"github.com/KirkDiggler/tabletop-inventory/internal/entities"
	"github.com/KirkDiggler/tabletop-inventory/internal/errors"
	"github.com/KirkDiggler/tabletop-inventory/internal/orchestrators/character"
)

func newAddItemCmd(a *app) *cobra.Command {
	var (
		description string
		quantity    int
		weight      float64
		value       float64
		rarity      string
		tags        []string
		equipped    bool
	)

	cmd := &cobra.Command{
		Use:   "add-item CHARACTER NAME",
		Short: "Add an item to a character's inventory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := checkInput(itemFields{
				Name:     args[1],
				Quantity: quantity,
				Weight:   weight,
				Value:    value,
				Rarity:   rarity,
			}); err != nil {
				return err
			}

			id, err := a.resolve(ctx, args[0])
			if err != nil {
				return err
			}

			item := entities.NewItem(args[1])
			item.Description = description
			item.Quantity = quantity
			item.Weight = weight
			item.Value = value
			item.Equipped = equipped
			item.Tags = append(item.Tags, tags...)
			if rarity != "" {
				// already validated
				item.Rarity, _ = entities.ParseRarity(rarity)
			}

			added, err := a.manager.AddItem(ctx, &character.AddItemInput{CharacterID: id, Item: item})
			if err != nil {
				return err
			}
			if err := a.save(ctx, id); err != nil {
				return err
			}

			a.printf("Added:\n%s\n", display.ItemLine(added.Item))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "item description")
	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "number of items")
	cmd.Flags().Float64VarP(&weight, "weight", "w", 0, "weight of one item")
	cmd.Flags().Float64VarP(&value, "value", "v", 0, "value of one item")
	cmd.Flags().StringVarP(&rarity, "rarity", "r", "", "common, uncommon, rare, very_rare, legendary or artifact")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "tag, repeatable or comma separated")
	cmd.Flags().BoolVarP(&equipped, "equipped", "e", false, "mark the item as equipped")

	return cmd
}

func newRemoveItemCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-item CHARACTER ITEM_ID",
		Short: "Remove an item from a character's inventory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := a.resolve(ctx, args[0])
			if err != nil {
				return err
			}

			removed, err := a.manager.RemoveItem(ctx, &character.RemoveItemInput{CharacterID: id, ItemID: args[1]})
			if err != nil {
				return err
			}
			if !removed.Removed {
				return errors.NotFoundf("no item %s in that inventory", args[1])
			}
			if err := a.save(ctx, id); err != nil {
				return err
			}

			a.printf("Removed %s\n", removed.Item.Name)
			return nil
		},
	}
}

func newEquipCmd(a *app) *cobra.Command {
	var off bool

	cmd := &cobra.Command{
		Use:   "equip CHARACTER ITEM_ID",
		Short: "Equip or unequip an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := a.resolve(ctx, args[0])
			if err != nil {
				return err
			}

			out, err := a.manager.SetItemEquipped(ctx, &character.SetItemEquippedInput{
				CharacterID: id,
				ItemID:      args[1],
				Equipped:    !off,
			})
			if err != nil {
				return err
			}
			if err := a.save(ctx, id); err != nil {
				return err
			}

			a.printf("%s\n", display.ItemLine(out.Item))
			return nil
		},
	}

	cmd.Flags().BoolVar(&off, "off", false, "unequip instead")

	return cmd
}
