package character

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KirkDiggler/tabletop-inventory/internal/entities"
	"github.com/KirkDiggler/tabletop-inventory/internal/errors"
)

// legacyTimestampLayout matches ISO-8601 timestamps without a zone offset, as
// written by earlier versions of the tool. Those are read as UTC.
const legacyTimestampLayout = "2006-01-02T15:04:05.999999999"

type characterDocument struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	GameSystem string           `json:"game_system"`
	Level      int              `json:"level"`
	Inventory  []itemDocument   `json:"inventory"`
	Currency   currencyDocument `json:"currency"`
	Notes      string           `json:"notes"`
	CreatedAt  string           `json:"created_at"`
	UpdatedAt  string           `json:"updated_at"`
}

type itemDocument struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Weight      float64         `json:"weight"`
	Value       float64         `json:"value"`
	Rarity      entities.Rarity `json:"rarity"`
	Equipped    bool            `json:"equipped"`
	Tags        []string        `json:"tags"`
}

type currencyDocument struct {
	Platinum int `json:"platinum"`
	Gold     int `json:"gold"`
	Silver   int `json:"silver"`
	Copper   int `json:"copper"`
}

// Encode renders a character as an indented JSON document
func Encode(c *entities.Character) ([]byte, error) {
	if c == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}

	doc := characterDocument{
		ID:         c.ID,
		Name:       c.Name,
		GameSystem: c.GameSystem,
		Level:      c.Level,
		Inventory:  make([]itemDocument, 0, len(c.Inventory)),
		Currency: currencyDocument{
			Platinum: c.Currency.Platinum,
			Gold:     c.Currency.Gold,
			Silver:   c.Currency.Silver,
			Copper:   c.Currency.Copper,
		},
		Notes:     c.Notes,
		CreatedAt: formatTimestamp(c.CreatedAt),
		UpdatedAt: formatTimestamp(c.UpdatedAt),
	}

	for _, item := range c.Inventory {
		tags := item.Tags
		if tags == nil {
			tags = []string{}
		}
		doc.Inventory = append(doc.Inventory, itemDocument{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Quantity:    item.Quantity,
			Weight:      item.Weight,
			Value:       item.Value,
			Rarity:      item.Rarity,
			Equipped:    item.Equipped,
			Tags:        tags,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode character %s", c.ID)
	}

	return data, nil
}

// Decode reconstructs a character from a JSON document. Every key is required;
// a missing or mistyped key is reported as errors.DataLoss rather than
// silently defaulted.
func Decode(data []byte) (*entities.Character, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "character document is not valid JSON")
	}
	if root == nil {
		return nil, errors.DataLossf("character document is %s, not an object", bytes.TrimSpace(data))
	}

	vb := errors.NewValidationBuilder()
	doc := fieldReader{fields: root, vb: vb}

	c := &entities.Character{}
	doc.read("id", &c.ID)
	doc.read("name", &c.Name)
	doc.read("game_system", &c.GameSystem)
	doc.read("level", &c.Level)
	doc.read("notes", &c.Notes)
	c.CreatedAt = doc.readTimestamp("created_at")
	c.UpdatedAt = doc.readTimestamp("updated_at")

	var inventory []map[string]json.RawMessage
	doc.read("inventory", &inventory)
	c.Inventory = make([]entities.Item, 0, len(inventory))
	for i, fields := range inventory {
		c.Inventory = append(c.Inventory, decodeItem(fieldReader{
			fields: fields,
			vb:     vb,
			prefix: fmt.Sprintf("inventory[%d].", i),
		}))
	}

	var currency map[string]json.RawMessage
	if doc.read("currency", &currency) {
		cr := fieldReader{fields: currency, vb: vb, prefix: "currency."}
		cr.read("platinum", &c.Currency.Platinum)
		cr.read("gold", &c.Currency.Gold)
		cr.read("silver", &c.Currency.Silver)
		cr.read("copper", &c.Currency.Copper)
	}

	if err := vb.Build(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "character document is incomplete")
	}

	return c, nil
}

func decodeItem(r fieldReader) entities.Item {
	var item entities.Item
	r.read("id", &item.ID)
	r.read("name", &item.Name)
	r.read("description", &item.Description)
	r.read("quantity", &item.Quantity)
	r.read("weight", &item.Weight)
	r.read("value", &item.Value)
	r.read("rarity", &item.Rarity)
	r.read("equipped", &item.Equipped)
	r.read("tags", &item.Tags)
	if item.Tags == nil {
		item.Tags = []string{}
	}
	return item
}

// fieldReader pulls required keys out of a decoded JSON object, recording
// every problem instead of stopping at the first one
type fieldReader struct {
	fields map[string]json.RawMessage
	vb     *errors.ValidationBuilder
	prefix string
}

func (r fieldReader) read(key string, out any) bool {
	raw, ok := r.fields[key]
	if !ok {
		r.vb.RequiredField(r.prefix + key)
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		r.vb.InvalidField(r.prefix+key, err.Error())
		return false
	}
	return true
}

func (r fieldReader) readTimestamp(key string) time.Time {
	var s string
	if !r.read(key, &s) {
		return time.Time{}
	}
	t, err := parseTimestamp(s)
	if err != nil {
		r.vb.InvalidField(r.prefix+key, err.Error())
		return time.Time{}
	}
	return t
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(legacyTimestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("not an ISO-8601 timestamp: %q", s)
	}
	return t.UTC(), nil
}
