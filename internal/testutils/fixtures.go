package testutils

import (
	"os"
	"path/filepath"
	"testing"
)

// Character documents for loading tests
const (
	// LegacyCharacterJSON is a document with naive timestamps, as older saves have
	LegacyCharacterJSON = `{
  "id": "legacy01",
  "name": "Old Timer",
  "game_system": "D&D 5e",
  "level": 4,
  "inventory": [
    {
      "id": "",
      "name": "Rope",
      "description": "50 feet, hempen",
      "quantity": 1,
      "weight": 10.0,
      "value": 1.0,
      "rarity": "COMMON",
      "equipped": false,
      "tags": []
    }
  ],
  "currency": {"platinum": 0, "gold": 12, "silver": 3, "copper": 7},
  "notes": "",
  "created_at": "2024-03-01T10:15:30.123456",
  "updated_at": "2024-03-02T08:00:00"
}`

	// CorruptCharacterJSON is truncated mid-document
	CorruptCharacterJSON = `{"id": "broken", "name": "Bro`

	// IncompleteCharacterJSON is valid JSON missing the currency block
	IncompleteCharacterJSON = `{
  "id": "partial",
  "name": "Half Saved",
  "game_system": "Generic",
  "level": 1,
  "inventory": [],
  "notes": "",
  "created_at": "2024-01-01T00:00:00Z",
  "updated_at": "2024-01-01T00:00:00Z"
}`
)

// WriteCharacterFile writes a document into dir and returns its path
func WriteCharacterFile(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
