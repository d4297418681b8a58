// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/tabletop-inventory/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/tabletop-inventory/internal/entities"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Save writes the full character document, replacing any previous version
	// Returns errors.InvalidArgument for a nil character or an ID unusable as a file name
	// Returns errors.Internal for encoding or storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load reads and reconstructs a character document from a path
	// Returns errors.InvalidArgument for an empty path
	// Returns errors.NotFound if the document doesn't exist
	// Returns errors.DataLoss if the document is malformed or incomplete
	// Returns errors.Internal for storage failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Delete removes the document for a character ID if present
	// Returns errors.InvalidArgument for an ID unusable as a file name
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns the paths of all character documents
	// Returns errors.NotFound if the storage location doesn't exist
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// SaveInput defines the input for saving a character
type SaveInput struct {
	Character *entities.Character
}

// SaveOutput defines the output for saving a character
type SaveOutput struct {
	Path string
	// Data is the exact document that was written
	Data []byte
}

// LoadInput defines the input for loading a character
type LoadInput struct {
	Path string
}

// LoadOutput defines the output for loading a character
type LoadOutput struct {
	Character *entities.Character
}

// DeleteInput defines the input for deleting a character document
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character document
type DeleteOutput struct {
	// Deleted is false when there was no document to remove
	Deleted bool
}

// ListInput defines the input for listing character documents
type ListInput struct{}

// ListOutput defines the output for listing character documents
type ListOutput struct {
	Paths []string
}
