package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/muesli/reflow/padding"

	"github.com/KirkDiggler/tabletop-inventory/internal/entities"
)

const (
	idWidth   = 12
	nameWidth = 24
	timeFmt   = "2006-01-02 15:04"
)

// Sheet renders a full character sheet. status is the persistence status shown
// next to the name; an empty status is omitted.
func Sheet(c *entities.Character, status string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	var b strings.Builder

	title := fmt.Sprintf("%s (%s, level %d)", c.Name, c.GameSystem, c.Level)
	if status != "" {
		title += fmt.Sprintf("  [%s]", status)
	}
	b.WriteString(title + "\n")
	fmt.Fprintf(&b, "ID: %s\n", c.ID)
	fmt.Fprintf(&b, "Created: %s  Updated: %s\n", formatTime(c.CreatedAt), formatTime(c.UpdatedAt))
	fmt.Fprintf(&b, "Currency: %s (%d cp total)\n", c.Currency, c.Currency.TotalInCopper())

	fmt.Fprintf(&b, "\nInventory: %d items, weight %.1f, value %.1f\n",
		c.TotalItems(), c.TotalWeight(), c.TotalValue())
	if len(c.Inventory) == 0 {
		b.WriteString("  (empty)\n")
	}
	for _, item := range c.Inventory {
		b.WriteString(ItemLine(item) + "\n")
		if item.Description != "" {
			b.WriteString(Block(item.Description, width, 6) + "\n")
		}
		if len(item.Tags) > 0 {
			b.WriteString(Block("tags: "+strings.Join(item.Tags, ", "), width, 6) + "\n")
		}
	}

	if c.Notes != "" {
		b.WriteString("\nNotes:\n")
		b.WriteString(Block(c.Notes, width, 2) + "\n")
	}

	return b.String()
}

// ItemLine renders one inventory entry with its ID so it can be referenced later
func ItemLine(item entities.Item) string {
	return "  " + padID(item.ID) + "  " + item.Summary()
}

// Row renders a one-line listing entry for a character
func Row(c *entities.Character, status string) string {
	return strings.TrimRight(fmt.Sprintf("%s  %s  %-10s  lvl %-3d  %3d items  %s",
		padID(c.ID),
		Column(c.Name, nameWidth),
		status,
		c.Level,
		c.TotalItems(),
		c.GameSystem,
	), " ")
}

// padID aligns short IDs but never cuts one, since users type them back in
func padID(id string) string {
	return padding.String(id, idWidth)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(timeFmt)
}
