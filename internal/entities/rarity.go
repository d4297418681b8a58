package entities

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rarity classifies an item by scarcity. The zero value is RarityCommon.
// Values are ordered, so rarities compare with < and >. Persisted documents
// use the symbolic name, never the ordinal.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityVeryRare
	RarityLegendary
	RarityArtifact
)

var rarityNames = [...]string{
	RarityCommon:    "COMMON",
	RarityUncommon:  "UNCOMMON",
	RarityRare:      "RARE",
	RarityVeryRare:  "VERY_RARE",
	RarityLegendary: "LEGENDARY",
	RarityArtifact:  "ARTIFACT",
}

// AllRarities returns every rarity in ascending order of scarcity
func AllRarities() []Rarity {
	return []Rarity{
		RarityCommon,
		RarityUncommon,
		RarityRare,
		RarityVeryRare,
		RarityLegendary,
		RarityArtifact,
	}
}

// IsValid checks if the rarity is one of the defined values
func (r Rarity) IsValid() bool {
	return r >= RarityCommon && r <= RarityArtifact
}

// String returns the symbolic name, e.g. "VERY_RARE"
func (r Rarity) String() string {
	if !r.IsValid() {
		return fmt.Sprintf("Rarity(%d)", int(r))
	}
	return rarityNames[r]
}

// Label returns a display name, e.g. "Very Rare"
func (r Rarity) Label() string {
	words := strings.ReplaceAll(strings.ToLower(r.String()), "_", " ")
	return cases.Title(language.English).String(words)
}

// ParseRarity converts a symbolic name to a Rarity. Matching ignores case and
// accepts spaces or dashes in place of underscores.
func ParseRarity(s string) (Rarity, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.NewReplacer(" ", "_", "-", "_").Replace(name)
	for _, r := range AllRarities() {
		if rarityNames[r] == name {
			return r, nil
		}
	}
	return RarityCommon, fmt.Errorf("unknown rarity: %q", s)
}

// MarshalText encodes the rarity by its symbolic name
func (r Rarity) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("invalid rarity: %d", int(r))
	}
	return []byte(rarityNames[r]), nil
}

// UnmarshalText decodes a symbolic name, as accepted by ParseRarity
func (r *Rarity) UnmarshalText(text []byte) error {
	parsed, err := ParseRarity(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
