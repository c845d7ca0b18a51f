package sinks

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mfbean/guilog/core"
)

func testEvent(level core.Level, template string, args ...any) *core.LogEvent {
	return &core.LogEvent{
		Timestamp:       time.Date(2025, 3, 14, 15, 9, 26, 535000000, time.Local),
		Level:           level,
		MessageTemplate: template,
		Args:            args,
	}
}

func TestConsoleSinkAppLine(t *testing.T) {
	buf := &bytes.Buffer{}
	sink := NewConsoleSinkWithWriter(buf)

	sink.Emit(testEvent(core.InfoLevel, "loaded {} files", 3))

	got := buf.String()
	if !strings.HasPrefix(got, "[APP] [2025-03-14 15:09:26.535]: ") {
		t.Errorf("unexpected header: %q", got)
	}
	if !strings.Contains(got, "loaded 3 files.") {
		t.Errorf("expected rendered message with terminator, got %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("expected exactly one line, got %q", got)
	}
}

func TestConsoleSinkLevelColors(t *testing.T) {
	t.Setenv("GUILOG_FORCE_COLOR", "on")

	theme := DefaultTheme()
	tests := []struct {
		level core.Level
		color Color
	}{
		{core.TraceLevel, theme.TraceColor},
		{core.InfoLevel, theme.InfoColor},
		{core.WarnLevel, theme.WarnColor},
		{core.FailLevel, theme.FailColor},
	}

	for _, tt := range tests {
		buf := &bytes.Buffer{}
		sink := NewConsoleSinkWithWriter(buf)

		sink.Emit(testEvent(tt.level, "colored"))

		got := buf.String()
		if !strings.HasPrefix(got, string(tt.color)) {
			t.Errorf("level %v: expected prefix %q, got %q", tt.level, tt.color, got)
		}
		if !strings.Contains(got, string(ColorReset)) {
			t.Errorf("level %v: expected reset terminator in %q", tt.level, got)
		}

		// No other level's color may appear.
		for _, other := range tests {
			if other.color != tt.color && strings.Contains(got, string(other.color)) {
				t.Errorf("level %v: found foreign color %q in %q", tt.level, other.color, got)
			}
		}
	}
}

func TestConsoleSinkNoColorForNonTerminal(t *testing.T) {
	buf := &bytes.Buffer{}
	sink := NewConsoleSinkWithWriter(buf)

	sink.Emit(testEvent(core.FailLevel, "plain"))

	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("expected no escape sequences, got %q", buf.String())
	}
}

func TestConsoleSinkSystemErrorLine(t *testing.T) {
	buf := &bytes.Buffer{}
	sink := NewConsoleSinkWithWriter(buf)

	event := testEvent(core.FailLevel, "boom {}", 42)
	event.SystemError = &core.SystemError{Code: 5, Message: "Access is denied"}
	sink.Emit(event)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "boom 42.") {
		t.Errorf("unexpected app line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "[SYS] [") {
		t.Errorf("unexpected system line: %q", lines[1])
	}
	if !strings.Contains(lines[1], "Access is denied") {
		t.Errorf("system line must carry the translated text: %q", lines[1])
	}
}

func TestConsoleSinkNoSystemErrorLineWhenAbsent(t *testing.T) {
	buf := &bytes.Buffer{}
	sink := NewConsoleSinkWithWriter(buf)

	sink.Emit(testEvent(core.FailLevel, "boom"))

	if strings.Contains(buf.String(), "[SYS]") {
		t.Errorf("no system line expected, got %q", buf.String())
	}
}

func TestConsoleSinkMismatchKeptVisible(t *testing.T) {
	buf := &bytes.Buffer{}
	sink := NewConsoleSinkWithWriter(buf)

	sink.Emit(testEvent(core.InfoLevel, "want {} and {}", 1))

	got := buf.String()
	if !strings.Contains(got, "{1}") {
		t.Errorf("unfilled placeholder must stay visible, got %q", got)
	}
}

func TestConsoleSinkCustomLayout(t *testing.T) {
	buf := &bytes.Buffer{}
	sink, err := NewConsoleSinkWithLayout(buf, "{{Level}} | {{Message}}", DefaultSysLayout)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sink.Emit(testEvent(core.WarnLevel, "careful"))

	if got := strings.TrimRight(buf.String(), "\n"); got != "WRN | careful" {
		t.Errorf("got %q", got)
	}
}

func TestMemorySink(t *testing.T) {
	sink := NewMemorySink()

	event := testEvent(core.InfoLevel, "copied {}", "yes")
	sink.Emit(event)
	event.Args[0] = "mutated"

	events := sink.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Args[0] != "yes" {
		t.Error("memory sink must store copies")
	}

	msgs := sink.Messages()
	if len(msgs) != 1 || msgs[0] != "copied yes" {
		t.Errorf("Messages() = %v", msgs)
	}

	sink.Clear()
	if len(sink.Events()) != 0 {
		t.Error("Clear must drop all events")
	}
}
