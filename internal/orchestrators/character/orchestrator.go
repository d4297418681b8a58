// Package character implements the character manager: the registry of known
// characters and their inventory, currency and persistence operations
package character

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	goerrors "github.com/pixil98/go-errors"

	"github.com/KirkDiggler/tabletop-inventory/internal/entities"
	"github.com/KirkDiggler/tabletop-inventory/internal/errors"
	"github.com/KirkDiggler/tabletop-inventory/internal/pkg/clock"
	"github.com/KirkDiggler/tabletop-inventory/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/tabletop-inventory/internal/repositories/character"
	"github.com/KirkDiggler/tabletop-inventory/internal/repositories/registry"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	Registry      registry.Registry
	CharacterRepo characterrepo.Repository
	Clock         clock.Clock
	IDGenerator   idgen.Generator

	// DefaultGameSystem is used by CreateCharacter when none is given.
	// Defaults to entities.DefaultGameSystem.
	DefaultGameSystem string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	registry          registry.Registry
	characterRepo     characterrepo.Repository
	clock             clock.Clock
	idGen             idgen.Generator
	defaultGameSystem string
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	defaultGameSystem := cfg.DefaultGameSystem
	if defaultGameSystem == "" {
		defaultGameSystem = entities.DefaultGameSystem
	}

	return &Orchestrator{
		registry:          cfg.Registry,
		characterRepo:     cfg.CharacterRepo,
		clock:             cfg.Clock,
		idGen:             cfg.IDGenerator,
		defaultGameSystem: defaultGameSystem,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// Character lifecycle

// CreateCharacter registers a new, unsaved character
func (o *Orchestrator) CreateCharacter(_ context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	gameSystem := input.GameSystem
	if gameSystem == "" {
		gameSystem = o.defaultGameSystem
	}

	c := entities.NewCharacter(o.idGen.Generate(), input.Name, gameSystem, o.clock.Now())
	o.registry.Put(c)

	slog.Debug("created character", "character_id", c.ID, "name", c.Name)

	return &CreateCharacterOutput{Character: c}, nil
}

// GetCharacter retrieves a registered character
func (o *Orchestrator) GetCharacter(_ context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	c, err := o.lookup(input.ID)
	if err != nil {
		return nil, err
	}

	return &GetCharacterOutput{Character: c}, nil
}

// ListCharacters returns every registered character sorted by name, then ID
func (o *Orchestrator) ListCharacters(_ context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	return &ListCharactersOutput{Characters: o.registry.List()}, nil
}

// UpdateCharacter edits metadata in place. UpdatedAt is left alone until the next save.
func (o *Orchestrator) UpdateCharacter(_ context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	c, err := o.lookup(input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.GameSystem != nil {
		c.GameSystem = *input.GameSystem
	}
	if input.Level != nil {
		c.Level = *input.Level
	}
	if input.Notes != nil {
		c.Notes = *input.Notes
	}

	return &UpdateCharacterOutput{Character: c}, nil
}

// DeleteCharacter forgets a character and removes its file if there is one
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDRequired)
	}

	// The file goes first so a failed removal leaves the character registered
	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.ID}); err != nil {
		slog.Error("failed to delete character file", "character_id", input.ID, "error", err)
		return nil, errors.Wrapf(err, "failed to delete character %s", input.ID)
	}

	return &DeleteCharacterOutput{Existed: o.registry.Delete(input.ID)}, nil
}

// Persistence

// SaveCharacter refreshes UpdatedAt and writes the character to its file
func (o *Orchestrator) SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	c, err := o.lookup(input.ID)
	if err != nil {
		return nil, err
	}

	c.Touch(o.clock.Now())

	out, err := o.characterRepo.Save(ctx, characterrepo.SaveInput{Character: c})
	if err != nil {
		slog.Error("failed to save character", "character_id", c.ID, "error", err)
		return nil, errors.Wrapf(err, "failed to save character %s", c.ID)
	}

	o.registry.MarkSaved(c.ID, out.Data)

	slog.Debug("saved character", "character_id", c.ID, "path", out.Path)

	return &SaveCharacterOutput{Character: c, Path: out.Path}, nil
}

// LoadCharacter reads a character document and registers it, replacing any
// character with the same ID
func (o *Orchestrator) LoadCharacter(ctx context.Context, input *LoadCharacterInput) (*LoadCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	c, err := o.load(ctx, input.Path)
	if err != nil {
		slog.Warn("failed to load character", "path", input.Path, "error", err)
		return nil, err
	}

	return &LoadCharacterOutput{Character: c}, nil
}

// LoadAllCharacters loads every document in the save directory. Documents
// that fail to load are skipped and reported in the output.
func (o *Orchestrator) LoadAllCharacters(ctx context.Context, input *LoadAllCharactersInput) (*LoadAllCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	listed, err := o.characterRepo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list character files")
	}

	out := &LoadAllCharactersOutput{
		Characters: make([]*entities.Character, 0, len(listed.Paths)),
	}
	el := goerrors.NewErrorList()
	for _, path := range listed.Paths {
		c, err := o.load(ctx, path)
		if err != nil {
			out.Skipped = append(out.Skipped, SkippedFile{Path: path, Err: err})
			el.Add(fmt.Errorf("%s: %w", path, err))
			continue
		}
		out.Characters = append(out.Characters, c)
	}

	if err := el.Err(); err != nil {
		slog.Warn("skipped character files", "count", len(out.Skipped), "error", err)
	}

	return out, nil
}

// Inventory management

// AddItem appends an item to a character's inventory
func (o *Orchestrator) AddItem(_ context.Context, input *AddItemInput) (*AddItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	c, err := o.lookup(input.CharacterID)
	if err != nil {
		return nil, err
	}

	item := input.Item
	if item.ID == "" {
		item.ID = o.idGen.Generate()
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}

	c.AddItem(item, o.clock.Now())

	return &AddItemOutput{Item: item}, nil
}

// RemoveItem removes an item by ID. A missing item is reported, not an error.
func (o *Orchestrator) RemoveItem(_ context.Context, input *RemoveItemInput) (*RemoveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	c, err := o.lookup(input.CharacterID)
	if err != nil {
		return nil, err
	}

	item, removed := c.RemoveItem(input.ItemID, o.clock.Now())

	return &RemoveItemOutput{Item: item, Removed: removed}, nil
}

// SetItemEquipped equips or unequips an item
func (o *Orchestrator) SetItemEquipped(_ context.Context, input *SetItemEquippedInput) (*SetItemEquippedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDRequired)
	}

	c, err := o.lookup(input.CharacterID)
	if err != nil {
		return nil, err
	}

	if !c.SetItemEquipped(input.ItemID, input.Equipped) {
		return nil, errors.NotFoundf("item %s not found", input.ItemID).
			WithMeta("character_id", c.ID)
	}

	item, _ := c.FindItem(input.ItemID)
	return &SetItemEquippedOutput{Item: item}, nil
}

// Currency

// SetCurrency replaces the balance of one denomination
func (o *Orchestrator) SetCurrency(_ context.Context, input *SetCurrencyInput) (*SetCurrencyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	vb := errors.NewValidationBuilder()
	if !input.Denomination.IsValid() {
		vb.InvalidField("Denomination", fmt.Sprintf("unknown denomination %q", input.Denomination))
	}
	if input.Amount < 0 {
		vb.Field("Amount", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	c, err := o.lookup(input.CharacterID)
	if err != nil {
		return nil, err
	}

	if err := c.Currency.SetBalance(input.Denomination, input.Amount); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to set currency")
	}

	return &SetCurrencyOutput{Currency: c.Currency}, nil
}

// ConvertCurrency computes, and optionally applies, a conversion between
// denominations. Applied conversions credit only whole coins.
func (o *Orchestrator) ConvertCurrency(_ context.Context, input *ConvertCurrencyInput) (*ConvertCurrencyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	vb := errors.NewValidationBuilder()
	if !input.From.IsValid() {
		vb.InvalidField("From", fmt.Sprintf("unknown denomination %q", input.From))
	}
	if !input.To.IsValid() {
		vb.InvalidField("To", fmt.Sprintf("unknown denomination %q", input.To))
	}
	if input.Amount < 0 {
		vb.Field("Amount", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	c, err := o.lookup(input.CharacterID)
	if err != nil {
		return nil, err
	}

	if !input.Apply {
		result, err := c.Currency.Convert(input.Amount, input.From, input.To)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to convert currency")
		}
		return &ConvertCurrencyOutput{
			Result:   result,
			Credited: int(result.IntPart()),
			Currency: c.Currency,
		}, nil
	}

	if input.Strict && c.Currency.Balance(input.From) < input.Amount {
		return nil, errors.FailedPreconditionf("insufficient %s: have %d, need %d",
			input.From, c.Currency.Balance(input.From), input.Amount).
			WithMeta("character_id", c.ID)
	}

	conversion, err := c.Currency.ApplyConversion(input.Amount, input.From, input.To)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to convert currency")
	}

	return &ConvertCurrencyOutput{
		Result:   conversion.Result,
		Credited: conversion.Credited,
		Applied:  true,
		Currency: c.Currency,
	}, nil
}

// GetSummary returns derived totals and the persistence status of a character
func (o *Orchestrator) GetSummary(_ context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	c, err := o.lookup(input.ID)
	if err != nil {
		return nil, err
	}

	status, err := o.status(c)
	if err != nil {
		return nil, err
	}

	return &GetSummaryOutput{
		Summary: &Summary{
			CharacterID: c.ID,
			Name:        c.Name,
			TotalItems:  c.TotalItems(),
			TotalWeight: c.TotalWeight(),
			TotalValue:  c.TotalValue(),
			TotalCopper: c.Currency.TotalInCopper(),
			Status:      status,
		},
	}, nil
}

// Helper methods

func (o *Orchestrator) lookup(id string) (*entities.Character, error) {
	if id == "" {
		return nil, errors.InvalidArgument(errCharacterIDRequired)
	}

	c, ok := o.registry.Get(id)
	if !ok {
		return nil, errors.NotFoundf("character %s not found", id).
			WithMeta("character_id", id)
	}
	return c, nil
}

func (o *Orchestrator) load(ctx context.Context, path string) (*entities.Character, error) {
	out, err := o.characterRepo.Load(ctx, characterrepo.LoadInput{Path: path})
	if err != nil {
		return nil, err
	}
	c := out.Character

	// The snapshot is taken before any missing IDs are filled in, so a
	// character that needed new IDs reports as modified until saved.
	snapshot, err := characterrepo.Encode(c)
	if err != nil {
		return nil, err
	}

	if c.ID == "" {
		c.ID = o.idGen.Generate()
	}
	for i := range c.Inventory {
		if c.Inventory[i].ID == "" {
			c.Inventory[i].ID = o.idGen.Generate()
		}
	}

	o.registry.Put(c)
	o.registry.MarkSaved(c.ID, snapshot)

	return c, nil
}

func (o *Orchestrator) status(c *entities.Character) (Status, error) {
	snapshot, ok := o.registry.Snapshot(c.ID)
	if !ok {
		return StatusUnsaved, nil
	}

	current, err := characterrepo.Encode(c)
	if err != nil {
		return "", err
	}
	if bytes.Equal(current, snapshot) {
		return StatusSaved, nil
	}
	return StatusModified, nil
}
