package entities

import (
	"slices"
	"time"
)

const (
	// DefaultGameSystem is used when a character is created without one
	DefaultGameSystem = "Generic"
	// DefaultLevel is the level of a newly created character
	DefaultLevel = 1
)

// Character is the aggregate root for one character sheet: inventory, coins and notes
type Character struct {
	ID         string
	Name       string
	GameSystem string
	Level      int
	Inventory  []Item
	Currency   Currency
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewCharacter creates a level 1 character with an empty inventory and no coins
func NewCharacter(id, name, gameSystem string, now time.Time) *Character {
	if gameSystem == "" {
		gameSystem = DefaultGameSystem
	}

	return &Character{
		ID:         id,
		Name:       name,
		GameSystem: gameSystem,
		Level:      DefaultLevel,
		Inventory:  []Item{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// AddItem appends an item to the inventory. Duplicate names are allowed.
func (c *Character) AddItem(item Item, now time.Time) {
	c.Inventory = append(c.Inventory, item)
	c.UpdatedAt = now
}

// RemoveItem removes the item with the given ID. It reports false, without
// touching UpdatedAt, when no item matches.
func (c *Character) RemoveItem(itemID string, now time.Time) (Item, bool) {
	idx := c.itemIndex(itemID)
	if idx < 0 {
		return Item{}, false
	}

	removed := c.Inventory[idx]
	c.Inventory = slices.Delete(c.Inventory, idx, idx+1)
	c.UpdatedAt = now

	return removed, true
}

// FindItem returns the item with the given ID
func (c *Character) FindItem(itemID string) (Item, bool) {
	idx := c.itemIndex(itemID)
	if idx < 0 {
		return Item{}, false
	}
	return c.Inventory[idx], true
}

// SetItemEquipped changes the equipped flag in place
func (c *Character) SetItemEquipped(itemID string, equipped bool) bool {
	idx := c.itemIndex(itemID)
	if idx < 0 {
		return false
	}
	c.Inventory[idx].Equipped = equipped
	return true
}

// Touch marks the character as updated at now
func (c *Character) Touch(now time.Time) {
	c.UpdatedAt = now
}

// TotalWeight sums quantity × weight over the inventory
func (c *Character) TotalWeight() float64 {
	var total float64
	for _, item := range c.Inventory {
		total += float64(item.Quantity) * item.Weight
	}
	return total
}

// TotalValue sums quantity × value over the inventory
func (c *Character) TotalValue() float64 {
	var total float64
	for _, item := range c.Inventory {
		total += float64(item.Quantity) * item.Value
	}
	return total
}

// TotalItems sums item quantities
func (c *Character) TotalItems() int {
	var total int
	for _, item := range c.Inventory {
		total += item.Quantity
	}
	return total
}

// InventoryByRarity returns a copy of the inventory with the rarest items
// first. Items of equal rarity keep their insertion order.
func (c *Character) InventoryByRarity() []Item {
	sorted := slices.Clone(c.Inventory)
	slices.SortStableFunc(sorted, func(a, b Item) int {
		return int(b.Rarity) - int(a.Rarity)
	})
	return sorted
}

func (c *Character) itemIndex(itemID string) int {
	return slices.IndexFunc(c.Inventory, func(item Item) bool {
		return item.ID == itemID
	})
}
