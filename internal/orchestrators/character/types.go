package character

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/KirkDiggler/tabletop-inventory/internal/entities"
)

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/tabletop-inventory/internal/orchestrators/character Service

// Service defines the character manager interface
type Service interface {
	// Character lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Persistence
	SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error)
	LoadCharacter(ctx context.Context, input *LoadCharacterInput) (*LoadCharacterOutput, error)
	LoadAllCharacters(ctx context.Context, input *LoadAllCharactersInput) (*LoadAllCharactersOutput, error)

	// Inventory management
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)
	SetItemEquipped(ctx context.Context, input *SetItemEquippedInput) (*SetItemEquippedOutput, error)

	// Currency
	SetCurrency(ctx context.Context, input *SetCurrencyInput) (*SetCurrencyOutput, error)
	ConvertCurrency(ctx context.Context, input *ConvertCurrencyInput) (*ConvertCurrencyOutput, error)

	GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error)
}

// CreateCharacterInput contains the request to create a character
type CreateCharacterInput struct {
	Name string
	// GameSystem falls back to the configured default when empty
	GameSystem string
}

// CreateCharacterOutput contains the created character
type CreateCharacterOutput struct {
	Character *entities.Character
}

// GetCharacterInput contains the request to get a character
type GetCharacterInput struct {
	ID string
}

// GetCharacterOutput contains the character
type GetCharacterOutput struct {
	Character *entities.Character
}

// ListCharactersInput contains the request to list characters
type ListCharactersInput struct{}

// ListCharactersOutput contains every registered character sorted by name
type ListCharactersOutput struct {
	Characters []*entities.Character
}

// UpdateCharacterInput contains metadata edits. Nil fields are left unchanged.
type UpdateCharacterInput struct {
	ID         string
	Name       *string
	GameSystem *string
	Level      *int
	Notes      *string
}

// UpdateCharacterOutput contains the updated character
type UpdateCharacterOutput struct {
	Character *entities.Character
}

// DeleteCharacterInput contains the request to delete a character
type DeleteCharacterInput struct {
	ID string
}

// DeleteCharacterOutput reports whether the character was registered
type DeleteCharacterOutput struct {
	Existed bool
}

// SaveCharacterInput contains the request to save a character
type SaveCharacterInput struct {
	ID string
}

// SaveCharacterOutput contains the saved character and where it was written
type SaveCharacterOutput struct {
	Character *entities.Character
	Path      string
}

// LoadCharacterInput contains the path of a character document
type LoadCharacterInput struct {
	Path string
}

// LoadCharacterOutput contains the loaded and registered character
type LoadCharacterOutput struct {
	Character *entities.Character
}

// LoadAllCharactersInput contains the request to load the save directory
type LoadAllCharactersInput struct{}

// SkippedFile is a document that could not be loaded
type SkippedFile struct {
	Path string
	Err  error
}

// LoadAllCharactersOutput contains the loaded characters in directory order
type LoadAllCharactersOutput struct {
	Characters []*entities.Character
	Skipped    []SkippedFile
}

// AddItemInput contains the item to add. An empty Item.ID is replaced with a
// generated one.
type AddItemInput struct {
	CharacterID string
	Item        entities.Item
}

// AddItemOutput contains the item as stored
type AddItemOutput struct {
	Item entities.Item
}

// RemoveItemInput contains the request to remove an item
type RemoveItemInput struct {
	CharacterID string
	ItemID      string
}

// RemoveItemOutput reports the removed item. Removed is false when no item matched.
type RemoveItemOutput struct {
	Item    entities.Item
	Removed bool
}

// SetItemEquippedInput contains the request to equip or unequip an item
type SetItemEquippedInput struct {
	CharacterID string
	ItemID      string
	Equipped    bool
}

// SetItemEquippedOutput contains the updated item
type SetItemEquippedOutput struct {
	Item entities.Item
}

// SetCurrencyInput contains the request to set one denomination's balance
type SetCurrencyInput struct {
	CharacterID  string
	Denomination entities.Denomination
	Amount       int
}

// SetCurrencyOutput contains the resulting coins
type SetCurrencyOutput struct {
	Currency entities.Currency
}

// ConvertCurrencyInput contains a conversion request
type ConvertCurrencyInput struct {
	CharacterID string
	Amount      int
	From        entities.Denomination
	To          entities.Denomination
	// Apply moves coins; otherwise the conversion is only computed
	Apply bool
	// Strict rejects an applied conversion that would leave From negative
	Strict bool
}

// ConvertCurrencyOutput contains the conversion result
type ConvertCurrencyOutput struct {
	Result   decimal.Decimal
	Credited int
	Applied  bool
	Currency entities.Currency
}

// GetSummaryInput contains the request for a character summary
type GetSummaryInput struct {
	ID string
}

// Summary contains the derived totals for a character
type Summary struct {
	CharacterID string
	Name        string
	TotalItems  int
	TotalWeight float64
	TotalValue  float64
	TotalCopper int
	Status      Status
}

// GetSummaryOutput contains the character summary
type GetSummaryOutput struct {
	Summary *Summary
}
