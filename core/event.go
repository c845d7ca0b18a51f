package core

import "time"

// SystemError is an operating-system error code captured alongside a log
// event, with its human-readable translation.
type SystemError struct {
	// Code is the platform error code.
	Code uint32

	// Message is the translated description of Code.
	Message string
}

// LogEvent represents a single log event.
type LogEvent struct {
	// Timestamp is when the event occurred, in local time.
	Timestamp time.Time

	// Level is the severity of the event.
	Level Level

	// MessageTemplate is the original message template with placeholders.
	MessageTemplate string

	// Args are the positional arguments for the template's placeholders.
	Args []any

	// SystemError is the OS error captured at emission, if any.
	SystemError *SystemError
}
