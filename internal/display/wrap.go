// Package display formats characters as plain text for the terminal
package display

import (
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// DefaultWidth is the wrap width used when none is configured
const DefaultWidth = 80

const ellipsis = "…"

// Wrap word-wraps text to width, preserving ANSI escape sequences.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	return wordwrap.String(text, width)
}

// Block wraps text to fit width once indented by margin spaces, then indents every line.
func Block(text string, width, margin int) string {
	if text == "" {
		return ""
	}
	inner := width - margin
	if inner < 10 {
		inner = 10
	}
	return indent.String(Wrap(text, inner), uint(margin))
}

// Column truncates or pads s to exactly width cells.
func Column(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return padding.String(truncate.StringWithTail(s, uint(width), ellipsis), uint(width))
}

// Capitalize returns s with its first character uppercased.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
