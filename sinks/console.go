package sinks

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/valyala/fasttemplate"

	"github.com/mfbean/guilog/console"
	"github.com/mfbean/guilog/core"
	"github.com/mfbean/guilog/parser"
	"github.com/mfbean/guilog/selflog"
)

// Output line layouts. Application messages carry the [APP] tag; translated
// system errors follow on their own [SYS] line.
const (
	DefaultAppLayout = "[APP] [{{Timestamp}}]: {{Message}}."
	DefaultSysLayout = "[SYS] [{{Timestamp}}]: {{Message}}"
)

// ConsoleSink writes log events to the console.
type ConsoleSink struct {
	mu       sync.Mutex
	output   io.Writer
	session  *console.Session
	theme    *Theme
	useColor bool
	appLine  *fasttemplate.Template
	sysLine  *fasttemplate.Template
}

// NewConsoleSink creates a console sink bound to the process's console
// session, acquiring the session (and, for windowless processes, the console
// itself) on first use.
func NewConsoleSink(opts ...console.Option) *ConsoleSink {
	session := console.Acquire(opts...)
	return &ConsoleSink{
		output:   session.Writer(),
		session:  session,
		theme:    DefaultTheme(),
		useColor: session.ColorCapable(),
		appLine:  mustLayout(DefaultAppLayout),
		sysLine:  mustLayout(DefaultSysLayout),
	}
}

// NewConsoleSinkWithWriter creates a console sink with a custom writer. No
// console session is acquired.
func NewConsoleSinkWithWriter(w io.Writer) *ConsoleSink {
	return &ConsoleSink{
		output:   w,
		theme:    DefaultTheme(),
		useColor: shouldUseColor(w),
		appLine:  mustLayout(DefaultAppLayout),
		sysLine:  mustLayout(DefaultSysLayout),
	}
}

// NewConsoleSinkWithLayout creates a console sink with custom output-line
// layouts. Layout tags are {{Timestamp}}, {{Level}} and {{Message}}.
func NewConsoleSinkWithLayout(w io.Writer, appLayout, sysLayout string) (*ConsoleSink, error) {
	app, err := fasttemplate.NewTemplate(appLayout, "{{", "}}")
	if err != nil {
		return nil, fmt.Errorf("invalid application line layout: %w", err)
	}
	sys, err := fasttemplate.NewTemplate(sysLayout, "{{", "}}")
	if err != nil {
		return nil, fmt.Errorf("invalid system line layout: %w", err)
	}
	return &ConsoleSink{
		output:   w,
		theme:    DefaultTheme(),
		useColor: shouldUseColor(w),
		appLine:  app,
		sysLine:  sys,
	}, nil
}

func mustLayout(layout string) *fasttemplate.Template {
	return fasttemplate.New(layout, "{{", "}}")
}

// SetTheme updates the console theme.
func (cs *ConsoleSink) SetTheme(theme *Theme) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.theme = theme
}

// SetUseColor enables or disables color output.
func (cs *ConsoleSink) SetUseColor(useColor bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.useColor = useColor
}

// Emit writes the log event to the console. The application line and any
// system error line are written inside one critical section, so lines from
// concurrent events never interleave.
func (cs *ConsoleSink) Emit(event *core.LogEvent) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	line := cs.appLine.ExecuteString(map[string]any{
		"Timestamp": event.Timestamp.Format(cs.theme.TimestampFormat),
		"Level":     event.Level.String(),
		"Message":   cs.renderMessage(event),
	})
	line = colorize(line, cs.theme.LevelColor(event.Level), cs.useColor)

	if _, err := fmt.Fprintln(cs.output, line); err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[console] write failed: %v", err)
		}
		return
	}

	if event.SystemError != nil {
		sysLine := cs.sysLine.ExecuteString(map[string]any{
			"Timestamp": time.Now().Format(cs.theme.TimestampFormat),
			"Level":     event.Level.String(),
			"Message":   event.SystemError.Message,
		})
		if _, err := fmt.Fprintln(cs.output, sysLine); err != nil {
			if selflog.IsEnabled() {
				selflog.Printf("[console] write failed: %v", err)
			}
		}
	}
}

// renderMessage substitutes the event's arguments into its template.
// Argument mismatches render their placeholders literally and are reported
// through selflog; they are never silently dropped.
func (cs *ConsoleSink) renderMessage(event *core.LogEvent) string {
	tmpl, err := parser.ParseCached(event.MessageTemplate)
	if err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[console] template parse failed: %v", err)
		}
		return event.MessageTemplate
	}

	message, err := tmpl.Render(event.Args)
	if err != nil && selflog.IsEnabled() {
		selflog.Printf("[console] %v", err)
	}
	return message
}

// Close releases the console session if this sink owns one.
func (cs *ConsoleSink) Close() error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if cs.session != nil {
		return cs.session.Close()
	}
	return nil
}
