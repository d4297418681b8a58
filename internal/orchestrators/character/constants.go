package character

// Status describes how a registered character relates to its file on disk
type Status string

// Persistence statuses
const (
	// StatusUnsaved means the character has never been saved or loaded
	StatusUnsaved Status = "UNSAVED"
	// StatusSaved means the character matches the document last saved or loaded
	StatusSaved Status = "SAVED"
	// StatusModified means the character changed since it was last saved or loaded
	StatusModified Status = "MODIFIED"
)

// Error messages
const (
	errInputRequired       = "input is required"
	errCharacterIDRequired = "character ID is required"
	errItemIDRequired      = "item ID is required"
)
