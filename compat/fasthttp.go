// FILE: tinylog-go/tinylog/compat/fasthttp.go

package compat

import (
	"fmt"
	"strings"

	"github.com/tinylog-go/tinylog"
)

// FastHTTPAdapter wraps tinylog.Logger to implement the fasthttp.Logger
// interface (a single printf-style method).
type FastHTTPAdapter struct {
	logger        *tinylog.Logger
	defaultLevel  int64
	levelDetector func(string) int64 // Function to detect log level from message
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *tinylog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  tinylog.LevelInfo,
		levelDetector: DetectLogLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the level used when detection finds no match
func WithDefaultLevel(level int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom level detection function
func WithLevelDetector(detector func(string) int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements the fasthttp.Logger interface. The message text is
// inspected to pick a level, since fasthttp reports everything through
// this one method.
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected >= tinylog.LevelTrace {
			level = detected
		}
	}

	file, line, fn := callSite(2)
	a.logger.Log(level, file, line, fn, msg)
}

// DetectLogLevel inspects common fasthttp message patterns to infer a
// severity. Unrecognized messages report -1 so the default level applies.
func DetectLogLevel(msg string) int64 {
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "panic"), strings.Contains(lower, "fatal"):
		return tinylog.LevelCritical
	case strings.Contains(lower, "error"), strings.Contains(lower, "failed"):
		return tinylog.LevelError
	case strings.Contains(lower, "warn"), strings.Contains(lower, "timeout"),
		strings.Contains(lower, "connection cannot be served"):
		return tinylog.LevelWarn
	case strings.Contains(lower, "debug"):
		return tinylog.LevelDebug
	default:
		return -1
	}
}
