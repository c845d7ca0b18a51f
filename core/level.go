package core

import (
	"fmt"
	"strings"
)

// Level specifies the severity of a log event.
type Level int

const (
	// TraceLevel is the most detailed logging level.
	TraceLevel Level = iota

	// InfoLevel is for informational messages.
	InfoLevel

	// WarnLevel is for warnings.
	WarnLevel

	// FailLevel is for failures.
	FailLevel
)

// String returns the short display name of the level.
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRC"
	case InfoLevel:
		return "INF"
	case WarnLevel:
		return "WRN"
	case FailLevel:
		return "FAIL"
	default:
		return "UNK"
	}
}

// ParseLevel converts a level name to a Level.
// It accepts both short display names and full names, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "trc":
		return TraceLevel, nil
	case "info", "inf":
		return InfoLevel, nil
	case "warn", "warning", "wrn":
		return WarnLevel, nil
	case "fail", "failure":
		return FailLevel, nil
	default:
		return TraceLevel, fmt.Errorf("unknown level: %q", s)
	}
}
