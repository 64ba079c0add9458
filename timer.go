// FILE: tinylog-go/tinylog/timer.go

package tinylog

import (
	"sync/atomic"
	"time"
)

// ScopeTimer measures a code region's duration and emits one message when
// End runs. Pair it with defer so every exit path is covered:
//
//	defer logger.Scope("loading-assets").End()
type ScopeTimer struct {
	logger *Logger
	level  int64
	name   string
	file   string
	line   int
	fn     string
	start  time.Time
	ended  atomic.Bool
}

// Scope starts a timer that reports at debug level, capturing the call site.
func (l *Logger) Scope(name string) *ScopeTimer {
	return l.newScope(LevelDebug, name)
}

// ScopeAt starts a timer that reports at the given level.
func (l *Logger) ScopeAt(level int64, name string) *ScopeTimer {
	return l.newScope(level, name)
}

func (l *Logger) newScope(level int64, name string) *ScopeTimer {
	file, line, fn := callSite(3)
	return &ScopeTimer{
		logger: l,
		level:  level,
		name:   name,
		file:   file,
		line:   line,
		fn:     fn,
		start:  time.Now(),
	}
}

// End logs "<name> took <N>us" with the elapsed microseconds since the
// timer was created. It runs at most once; further calls are no-ops, and
// a failing sink never propagates back to the timed scope.
func (t *ScopeTimer) End() {
	if !t.ended.CompareAndSwap(false, true) {
		return
	}
	elapsed := time.Since(t.start).Microseconds()
	t.logger.Log(t.level, t.file, t.line, t.fn, t.name, " took ", elapsed, "us")
}
