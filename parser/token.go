package parser

import (
	"fmt"
	"strconv"
)

// Token represents a single token in a message template.
type Token interface {
	// Render returns the string representation of the token using the
	// provided positional arguments.
	Render(args []any) string
}

// TextToken represents literal text in a message template.
type TextToken struct {
	// Text is the literal text content.
	Text string
}

// Render returns the literal text.
func (t *TextToken) Render(args []any) string {
	return t.Text
}

// PlaceholderToken represents a positional placeholder in a message template.
type PlaceholderToken struct {
	// Index is the argument position this placeholder consumes. For bare
	// "{}" placeholders the index is assigned at parse time, in order of
	// appearance.
	Index int

	// Format specifies the format hint, if any.
	Format string
}

// Render returns the string representation of the placeholder's argument.
// An index with no matching argument renders as the literal placeholder.
func (p *PlaceholderToken) Render(args []any) string {
	if p.Index < 0 || p.Index >= len(args) {
		return p.literal()
	}
	return formatValue(args[p.Index], p.Format)
}

// literal reconstructs the placeholder's source text.
func (p *PlaceholderToken) literal() string {
	if p.Format != "" {
		return "{" + strconv.Itoa(p.Index) + ":" + p.Format + "}"
	}
	return "{" + strconv.Itoa(p.Index) + "}"
}

// formatValue formats a value according to a placeholder format hint.
// Supported hints map onto fmt verbs: d, b, o, x, X, e, and f with an
// optional precision (f2 renders with two decimal places). An empty hint
// uses default string conversion.
func formatValue(value any, format string) string {
	if value == nil {
		return "<nil>"
	}
	switch format {
	case "":
		return fmt.Sprintf("%v", value)
	case "d":
		return fmt.Sprintf("%d", value)
	case "b":
		return fmt.Sprintf("%b", value)
	case "o":
		return fmt.Sprintf("%o", value)
	case "x":
		return fmt.Sprintf("%x", value)
	case "X":
		return fmt.Sprintf("%X", value)
	case "e":
		return fmt.Sprintf("%e", value)
	case "q":
		return fmt.Sprintf("%q", value)
	default:
		if format[0] == 'f' {
			if len(format) == 1 {
				return fmt.Sprintf("%f", value)
			}
			if prec, err := strconv.Atoi(format[1:]); err == nil {
				return fmt.Sprintf("%.*f", prec, value)
			}
		}
		// Unknown hint, fall back to default conversion.
		return fmt.Sprintf("%v", value)
	}
}
