package entities

import "fmt"

// Item is a single inventory entry
type Item struct {
	ID          string
	Name        string
	Description string
	Quantity    int
	Weight      float64
	Value       float64
	Rarity      Rarity
	// Equipped is informational and does not affect totals.
	Equipped bool
	Tags     []string
}

// NewItem returns an item with default quantity, rarity and an empty tag list.
// The ID is left empty; the character manager assigns one when the item is added.
func NewItem(name string) Item {
	return Item{
		Name:     name,
		Quantity: 1,
		Rarity:   RarityCommon,
		Tags:     []string{},
	}
}

// Summary returns a one-line description of the item
func (i Item) Summary() string {
	name := i.Name
	if i.Equipped {
		name += " [E]"
	}
	return fmt.Sprintf("%s - Qty: %d, Value: %.1f, Weight: %.1f, Rarity: %s",
		name, i.Quantity, i.Value, i.Weight, i.Rarity.Label())
}
