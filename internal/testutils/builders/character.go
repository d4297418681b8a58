// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/tabletop-inventory/internal/entities"
)

// DefaultTime is the timestamp builders use unless told otherwise
var DefaultTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *entities.Character
}

// NewCharacterBuilder creates a new builder with minimal defaults
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: entities.NewCharacter("char-test-123", "Test Character", "", DefaultTime),
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithGameSystem sets the game system
func (b *CharacterBuilder) WithGameSystem(gameSystem string) *CharacterBuilder {
	b.character.GameSystem = gameSystem
	return b
}

// WithLevel sets the level
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = level
	return b
}

// WithNotes sets the notes
func (b *CharacterBuilder) WithNotes(notes string) *CharacterBuilder {
	b.character.Notes = notes
	return b
}

// WithCurrency sets all four denominations
func (b *CharacterBuilder) WithCurrency(platinum, gold, silver, copper int) *CharacterBuilder {
	b.character.Currency = entities.Currency{
		Platinum: platinum,
		Gold:     gold,
		Silver:   silver,
		Copper:   copper,
	}
	return b
}

// WithItems appends items to the inventory without touching timestamps
func (b *CharacterBuilder) WithItems(items ...entities.Item) *CharacterBuilder {
	b.character.Inventory = append(b.character.Inventory, items...)
	return b
}

// WithTimestamps sets CreatedAt and UpdatedAt
func (b *CharacterBuilder) WithTimestamps(createdAt, updatedAt time.Time) *CharacterBuilder {
	b.character.CreatedAt = createdAt
	b.character.UpdatedAt = updatedAt
	return b
}

// AsAdventurer builds a character with a typical starting kit and purse
func (b *CharacterBuilder) AsAdventurer() *CharacterBuilder {
	return b.
		WithName("Thorin Oakenshield").
		WithGameSystem("D&D 5e").
		WithLevel(3).
		WithCurrency(0, 15, 4, 20).
		WithItems(
			NewItemBuilder().WithID("item-sword").WithName("Longsword").
				WithWeight(3).WithValue(15).AsEquipped().WithTags("weapon").Build(),
			NewItemBuilder().WithID("item-rations").WithName("Rations").
				WithQuantity(5).WithWeight(2).WithValue(0.5).Build(),
			NewItemBuilder().WithID("item-amulet").WithName("Amulet of Health").
				WithRarity(entities.RarityRare).WithValue(4000).WithTags("magic", "attuned").Build(),
		)
}

// Build returns the constructed Character
func (b *CharacterBuilder) Build() *entities.Character {
	return b.character
}

// ItemBuilder provides a fluent interface for building test Item instances
type ItemBuilder struct {
	item entities.Item
}

// NewItemBuilder creates a new builder with entities.NewItem defaults
func NewItemBuilder() *ItemBuilder {
	item := entities.NewItem("Test Item")
	item.ID = "item-test-123"
	return &ItemBuilder{item: item}
}

// WithID sets the item ID
func (b *ItemBuilder) WithID(id string) *ItemBuilder {
	b.item.ID = id
	return b
}

// WithName sets the item name
func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.item.Name = name
	return b
}

// WithDescription sets the description
func (b *ItemBuilder) WithDescription(description string) *ItemBuilder {
	b.item.Description = description
	return b
}

// WithQuantity sets the quantity
func (b *ItemBuilder) WithQuantity(quantity int) *ItemBuilder {
	b.item.Quantity = quantity
	return b
}

// WithWeight sets the weight of one unit
func (b *ItemBuilder) WithWeight(weight float64) *ItemBuilder {
	b.item.Weight = weight
	return b
}

// WithValue sets the value of one unit
func (b *ItemBuilder) WithValue(value float64) *ItemBuilder {
	b.item.Value = value
	return b
}

// WithRarity sets the rarity
func (b *ItemBuilder) WithRarity(rarity entities.Rarity) *ItemBuilder {
	b.item.Rarity = rarity
	return b
}

// WithTags replaces the tags
func (b *ItemBuilder) WithTags(tags ...string) *ItemBuilder {
	b.item.Tags = append([]string{}, tags...)
	return b
}

// AsEquipped marks the item as equipped
func (b *ItemBuilder) AsEquipped() *ItemBuilder {
	b.item.Equipped = true
	return b
}

// Build returns the constructed Item
func (b *ItemBuilder) Build() entities.Item {
	return b.item
}
