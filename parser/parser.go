// Package parser implements brace-placeholder message templates.
//
// A template is literal text with placeholders. Each "{}" consumes the next
// argument in order; "{0}", "{1}" address arguments by position explicitly.
// A placeholder may carry a format hint after a colon, e.g. "{:x}" or
// "{0:f2}". Doubled braces "{{" and "}}" render as literal braces.
package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses a message template string into a MessageTemplate.
func Parse(template string) (*MessageTemplate, error) {
	tokens := []Token{}
	auto := 0
	maxIndex := -1
	i := 0
	textStart := 0

	for i < len(template) {
		switch template[i] {
		case '{':
			// Escaped brace.
			if i+1 < len(template) && template[i+1] == '{' {
				if i > textStart {
					tokens = append(tokens, &TextToken{Text: template[textStart:i]})
				}
				tokens = append(tokens, &TextToken{Text: "{"})
				i += 2
				textStart = i
				continue
			}

			end := strings.IndexByte(template[i+1:], '}')
			if end == -1 {
				return nil, fmt.Errorf("unclosed placeholder at offset %d", i)
			}
			end += i + 1

			if i > textStart {
				tokens = append(tokens, &TextToken{Text: template[textStart:i]})
			}

			tok, err := parsePlaceholder(template[i+1:end], &auto)
			if err != nil {
				return nil, fmt.Errorf("invalid placeholder %q at offset %d: %w", template[i:end+1], i, err)
			}
			if tok.Index > maxIndex {
				maxIndex = tok.Index
			}
			tokens = append(tokens, tok)

			i = end + 1
			textStart = i

		case '}':
			// Lone closing braces are only valid when doubled.
			if i+1 < len(template) && template[i+1] == '}' {
				if i > textStart {
					tokens = append(tokens, &TextToken{Text: template[textStart:i]})
				}
				tokens = append(tokens, &TextToken{Text: "}"})
				i += 2
				textStart = i
				continue
			}
			return nil, fmt.Errorf("unmatched '}' at offset %d", i)

		default:
			i++
		}
	}

	if textStart < len(template) {
		tokens = append(tokens, &TextToken{Text: template[textStart:]})
	}

	return &MessageTemplate{
		Raw:      template,
		Tokens:   tokens,
		ArgCount: maxIndex + 1,
	}, nil
}

// parsePlaceholder parses the content between braces. The auto counter
// assigns positions to bare "{}" placeholders in order of appearance.
func parsePlaceholder(content string, auto *int) (*PlaceholderToken, error) {
	index := ""
	format := ""
	if colon := strings.IndexByte(content, ':'); colon != -1 {
		index = content[:colon]
		format = content[colon+1:]
		if format == "" {
			return nil, fmt.Errorf("empty format hint")
		}
	} else {
		index = content
	}

	if index == "" {
		tok := &PlaceholderToken{Index: *auto, Format: format}
		*auto++
		return tok, nil
	}

	n, err := strconv.Atoi(index)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("placeholder index must be a non-negative integer")
	}
	return &PlaceholderToken{Index: n, Format: format}, nil
}
