package guilog

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/mfbean/guilog/core"
	"github.com/mfbean/guilog/sinks"
	"github.com/mfbean/guilog/syserr"
)

func newTestLogger(opts ...Option) (*Logger, *sinks.MemorySink, syserr.Source) {
	mem := sinks.NewMemorySink()
	src := syserr.NewStoredSource()
	opts = append(opts, WithSink(mem), WithErrorSource(src))
	return New(opts...), mem, src
}

func TestLoggerLevels(t *testing.T) {
	logger, mem, _ := newTestLogger()
	logger.SetMinimumLevel(core.WarnLevel)

	logger.Trace("trace message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Fail("fail message")

	events := mem.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	expected := []core.Level{core.WarnLevel, core.FailLevel}
	for i, event := range events {
		if event.Level != expected[i] {
			t.Errorf("event %d: level %v, want %v", i, event.Level, expected[i])
		}
	}
}

func TestLoggerDefaultThresholdShowsEverything(t *testing.T) {
	logger, mem, _ := newTestLogger()

	levels := []core.Level{core.TraceLevel, core.InfoLevel, core.WarnLevel, core.FailLevel, core.InfoLevel}
	for _, level := range levels {
		logger.Write(level, "at {}", level.String())
	}

	events := mem.Events()
	if len(events) != len(levels) {
		t.Fatalf("expected %d events, got %d", len(levels), len(events))
	}
	// Emission order matches call order.
	for i, event := range events {
		if event.Level != levels[i] {
			t.Errorf("event %d: level %v, want %v", i, event.Level, levels[i])
		}
	}
}

func TestSetMinimumLevelTakesEffectImmediately(t *testing.T) {
	logger, mem, _ := newTestLogger()

	logger.SetMinimumLevel(core.FailLevel)
	logger.Warn("dropped")
	logger.SetMinimumLevel(core.TraceLevel)
	logger.Warn("kept")

	msgs := mem.Messages()
	if len(msgs) != 1 || msgs[0] != "kept" {
		t.Errorf("got %v", msgs)
	}
}

func TestSetMinimumLevelIdempotent(t *testing.T) {
	logger, mem, _ := newTestLogger()

	logger.SetMinimumLevel(core.WarnLevel)
	logger.SetMinimumLevel(core.WarnLevel)

	if logger.MinimumLevel() != core.WarnLevel {
		t.Errorf("MinimumLevel() = %v", logger.MinimumLevel())
	}

	logger.Info("dropped")
	logger.Warn("kept")
	if len(mem.Events()) != 1 {
		t.Errorf("expected 1 event, got %d", len(mem.Events()))
	}
}

func TestMinimumLevelRoundTrip(t *testing.T) {
	logger, _, _ := newTestLogger()

	for _, level := range []core.Level{core.TraceLevel, core.InfoLevel, core.WarnLevel, core.FailLevel} {
		logger.SetMinimumLevel(level)
		if got := logger.MinimumLevel(); got != level {
			t.Errorf("MinimumLevel() = %v, want %v", got, level)
		}
	}
}

func TestIsEnabled(t *testing.T) {
	logger, _, _ := newTestLogger(WithMinimumLevel(core.InfoLevel))

	if logger.IsEnabled(core.TraceLevel) {
		t.Error("trace must be filtered")
	}
	if !logger.IsEnabled(core.InfoLevel) {
		t.Error("info must pass")
	}
	if !logger.IsEnabled(core.FailLevel) {
		t.Error("fail must pass")
	}
}

func TestSystemErrorAttachedAndCleared(t *testing.T) {
	logger, mem, src := newTestLogger()

	src.Set(5)
	logger.Fail("boom {}", 42)
	logger.Fail("again")

	events := mem.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	if events[0].SystemError == nil {
		t.Fatal("first event must carry the system error")
	}
	if events[0].SystemError.Code != 5 {
		t.Errorf("code = %d, want 5", events[0].SystemError.Code)
	}
	if events[0].SystemError.Message == "" {
		t.Error("translation must be non-empty")
	}

	if events[1].SystemError != nil {
		t.Error("consumed error must not repeat on the next call")
	}
}

func TestSystemErrorDeduplicated(t *testing.T) {
	logger, mem, src := newTestLogger()

	src.Set(5)
	logger.Fail("first")
	src.Set(5)
	logger.Fail("same code again")
	src.Set(7)
	logger.Fail("new code")

	events := mem.Events()
	if events[0].SystemError == nil {
		t.Error("first occurrence must be shown")
	}
	if events[1].SystemError != nil {
		t.Error("identical consecutive code must not be shown twice")
	}
	if events[2].SystemError == nil || events[2].SystemError.Code != 7 {
		t.Error("a different code must always be shown")
	}
}

func TestFilteredCallConsumesSystemError(t *testing.T) {
	logger, mem, src := newTestLogger(WithMinimumLevel(core.WarnLevel))

	src.Set(5)
	logger.Trace("filtered")
	logger.Fail("visible")

	events := mem.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].SystemError != nil {
		t.Error("error consumed by a filtered call must not surface later")
	}
}

func TestCaptureError(t *testing.T) {
	logger, mem, _ := newTestLogger()

	logger.CaptureError(nil)
	logger.Info("no error")

	logger.SetLastError(13)
	logger.Info("with error")

	events := mem.Events()
	if events[0].SystemError != nil {
		t.Error("nil error must not set a pending code")
	}
	if events[1].SystemError == nil || events[1].SystemError.Code != 13 {
		t.Error("explicit code must surface on the next event")
	}
}

func TestEndToEndWarnThreshold(t *testing.T) {
	buf := &bytes.Buffer{}
	src := syserr.NewStoredSource()
	logger := New(
		WithMinimumLevel(core.WarnLevel),
		WithSink(sinks.NewConsoleSinkWithWriter(buf)),
		WithErrorSource(src),
	)

	logger.Trace("x")
	if buf.Len() != 0 {
		t.Fatalf("filtered call must produce no output, got %q", buf.String())
	}

	src.Set(5)
	logger.Fail("boom {}", 42)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected app + system lines, got %q", out)
	}
	if !strings.Contains(lines[0], "[APP]") || !strings.Contains(lines[0], "boom 42.") {
		t.Errorf("unexpected app line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "[SYS]") {
		t.Errorf("unexpected system line: %q", lines[1])
	}
}

func TestConcurrentWritesDoNotInterleave(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(
		WithSink(sinks.NewConsoleSinkWithWriter(buf)),
		WithErrorSource(syserr.NewStoredSource()),
	)

	const goroutines = 8
	const perGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				logger.Info("worker {} iteration {}", id, i)
			}
		}(g)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != goroutines*perGoroutine {
		t.Fatalf("expected %d lines, got %d", goroutines*perGoroutine, len(lines))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "[APP] [") || !strings.Contains(line, "worker ") {
			t.Errorf("malformed line: %q", line)
		}
	}
}

func TestConcurrentThresholdChanges(t *testing.T) {
	logger, _, _ := newTestLogger()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			logger.SetMinimumLevel(core.Level(i % 4))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			logger.Info("message {}", i)
		}
	}()
	wg.Wait()
}

func TestCloseClosesSinks(t *testing.T) {
	closed := false
	logger := New(
		WithSink(closerSink{onClose: func() { closed = true }}),
		WithErrorSource(syserr.NewStoredSource()),
	)

	if err := logger.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !closed {
		t.Error("Close must close sinks")
	}
}

type closerSink struct {
	onClose func()
}

func (c closerSink) Emit(event *core.LogEvent) {}

func (c closerSink) Close() error {
	c.onClose()
	return nil
}
