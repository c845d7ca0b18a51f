package guilog

import (
	"sync/atomic"

	"github.com/mfbean/guilog/core"
)

// LevelSwitch provides thread-safe, runtime control of the minimum log
// level. It enables dynamic adjustment of logging levels without restarting
// the application.
type LevelSwitch struct {
	// level is stored as int32 to enable atomic operations
	level int32
}

// NewLevelSwitch creates a new level switch with the specified initial level.
func NewLevelSwitch(initial core.Level) *LevelSwitch {
	ls := &LevelSwitch{}
	ls.SetLevel(initial)
	return ls
}

// Level returns the current minimum log level.
func (ls *LevelSwitch) Level() core.Level {
	return core.Level(atomic.LoadInt32(&ls.level))
}

// SetLevel updates the minimum log level.
// This operation is thread-safe and takes effect immediately.
func (ls *LevelSwitch) SetLevel(level core.Level) {
	atomic.StoreInt32(&ls.level, int32(level))
}

// IsEnabled returns true if the specified level would be processed
// with the current minimum level setting.
func (ls *LevelSwitch) IsEnabled(level core.Level) bool {
	return level >= ls.Level()
}

// Trace sets the minimum level to Trace.
func (ls *LevelSwitch) Trace() *LevelSwitch {
	ls.SetLevel(core.TraceLevel)
	return ls
}

// Info sets the minimum level to Info.
func (ls *LevelSwitch) Info() *LevelSwitch {
	ls.SetLevel(core.InfoLevel)
	return ls
}

// Warn sets the minimum level to Warn.
func (ls *LevelSwitch) Warn() *LevelSwitch {
	ls.SetLevel(core.WarnLevel)
	return ls
}

// Fail sets the minimum level to Fail.
func (ls *LevelSwitch) Fail() *LevelSwitch {
	ls.SetLevel(core.FailLevel)
	return ls
}
