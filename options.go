package guilog

import (
	"github.com/mfbean/guilog/console"
	"github.com/mfbean/guilog/core"
	"github.com/mfbean/guilog/sinks"
	"github.com/mfbean/guilog/syserr"
)

// config holds the configuration for building a logger.
type config struct {
	minimumLevel core.Level
	levelSwitch  *LevelSwitch
	sinks        []core.Sink
	errSource    syserr.Source
}

// Option is a functional option for configuring a logger.
type Option func(*config)

// WithMinimumLevel sets the minimum log level.
func WithMinimumLevel(level core.Level) Option {
	return func(c *config) {
		c.minimumLevel = level
	}
}

// WithLevelSwitch enables dynamic level control using the specified level
// switch. When a level switch is provided, it takes precedence over the
// static minimum level.
func WithLevelSwitch(levelSwitch *LevelSwitch) Option {
	return func(c *config) {
		c.levelSwitch = levelSwitch
	}
}

// WithSink adds a sink to the logger.
func WithSink(sink core.Sink) Option {
	return func(c *config) {
		c.sinks = append(c.sinks, sink)
	}
}

// WithConsole adds a console sink bound to the process's console session,
// acquiring the session on logger construction. Console options (such as
// console.WithNotifier) are honored only by the first acquisition in the
// process.
func WithConsole(opts ...console.Option) Option {
	return func(c *config) {
		c.sinks = append(c.sinks, sinks.NewConsoleSink(opts...))
	}
}

// WithErrorSource replaces the platform system-error source.
func WithErrorSource(source syserr.Source) Option {
	return func(c *config) {
		c.errSource = source
	}
}
