package parser

import (
	"fmt"
	"strings"
)

// MessageTemplate represents a parsed message template.
type MessageTemplate struct {
	// Raw is the original template string.
	Raw string

	// Tokens are the parsed tokens from the template.
	Tokens []Token

	// ArgCount is the number of arguments the template's placeholders
	// consume.
	ArgCount int
}

// Render generates the final message using the provided positional
// arguments. The rendering is always returned; if the argument count does
// not match the template's placeholders, a non-nil error describes the
// mismatch and any unfilled placeholders appear literally in the result.
func (mt *MessageTemplate) Render(args []any) (string, error) {
	var sb strings.Builder
	for _, token := range mt.Tokens {
		sb.WriteString(token.Render(args))
	}

	if len(args) != mt.ArgCount {
		return sb.String(), &ArgCountError{Template: mt.Raw, Want: mt.ArgCount, Got: len(args)}
	}
	return sb.String(), nil
}

// ArgCountError reports a placeholder/argument count mismatch.
type ArgCountError struct {
	Template string
	Want     int
	Got      int
}

func (e *ArgCountError) Error() string {
	return fmt.Sprintf("template %q takes %d argument(s), got %d", e.Template, e.Want, e.Got)
}

// Validate checks that a template parses and that its placeholders match
// the given argument count.
func Validate(template string, argCount int) error {
	tmpl, err := ParseCached(template)
	if err != nil {
		return err
	}
	if argCount != tmpl.ArgCount {
		return &ArgCountError{Template: template, Want: tmpl.ArgCount, Got: argCount}
	}
	return nil
}
