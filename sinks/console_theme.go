package sinks

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/mfbean/guilog/core"
)

// Color represents an ANSI color code.
type Color string

const (
	ColorReset Color = "\033[0m"
	ColorBold  Color = "\033[1m"
	ColorDim   Color = "\033[2m"

	// Foreground colors
	ColorBlack   Color = "\033[30m"
	ColorRed     Color = "\033[31m"
	ColorGreen   Color = "\033[32m"
	ColorYellow  Color = "\033[33m"
	ColorBlue    Color = "\033[34m"
	ColorMagenta Color = "\033[35m"
	ColorCyan    Color = "\033[36m"
	ColorWhite   Color = "\033[37m"

	// Bright foreground colors
	ColorBrightBlack   Color = "\033[90m"
	ColorBrightRed     Color = "\033[91m"
	ColorBrightGreen   Color = "\033[92m"
	ColorBrightYellow  Color = "\033[93m"
	ColorBrightBlue    Color = "\033[94m"
	ColorBrightMagenta Color = "\033[95m"
	ColorBrightCyan    Color = "\033[96m"
	ColorBrightWhite   Color = "\033[97m"
)

// Theme defines the colors and formatting for console output.
type Theme struct {
	// Level colors
	TraceColor Color
	InfoColor  Color
	WarnColor  Color
	FailColor  Color

	// Formatting
	TimestampFormat string
}

// DefaultTheme returns the default console theme.
func DefaultTheme() *Theme {
	return &Theme{
		TraceColor: ColorWhite,
		InfoColor:  ColorBrightGreen,
		WarnColor:  ColorBrightYellow,
		FailColor:  ColorBrightRed,

		TimestampFormat: "2006-01-02 15:04:05.000",
	}
}

// NoColorTheme returns a theme without any colors.
func NoColorTheme() *Theme {
	return &Theme{
		TraceColor: "",
		InfoColor:  "",
		WarnColor:  "",
		FailColor:  "",

		TimestampFormat: "2006-01-02 15:04:05.000",
	}
}

// LevelColor returns the color assigned to a level.
func (t *Theme) LevelColor(level core.Level) Color {
	switch level {
	case core.TraceLevel:
		return t.TraceColor
	case core.InfoLevel:
		return t.InfoColor
	case core.WarnLevel:
		return t.WarnColor
	case core.FailLevel:
		return t.FailColor
	default:
		return ""
	}
}

// colorize wraps text in a color code followed by a reset.
func colorize(text string, color Color, useColor bool) string {
	if !useColor || color == "" {
		return text
	}
	return string(color) + text + string(ColorReset)
}

// shouldUseColor determines if color output should be used for a writer.
func shouldUseColor(w io.Writer) bool {
	// Check GUILOG_FORCE_COLOR first
	if forceColor := os.Getenv("GUILOG_FORCE_COLOR"); forceColor != "" {
		switch strings.ToLower(forceColor) {
		case "none", "0", "false", "off":
			return false
		case "1", "true", "on":
			return true
		}
	}

	// Check if NO_COLOR env var is set
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	// Color only makes sense when writing to a terminal.
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
