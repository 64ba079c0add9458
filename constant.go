// FILE: tinylog-go/tinylog/constant.go

package tinylog

import (
	"time"
)

// Log level constants, ordered by severity. A message is dispatched when
// its level is at or above the configured threshold; LevelOff as a
// threshold suppresses everything.
const (
	LevelTrace int64 = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
)

const (
	// DefaultMaxBytes is the rotation threshold used by the convenience
	// constructors when no explicit value is configured.
	DefaultMaxBytes int64 = 5 * 1024 * 1024
	// DefaultMaxFiles is the retained file count (primary plus backups).
	DefaultMaxFiles = 3
	// DefaultBufferSize is the async queue capacity when none is set.
	DefaultBufferSize int64 = 1024
)

// Timers
const (
	// Minimum wait time used while polling for the consumer to exit
	minWaitTime = 10 * time.Millisecond
	// Deadline for Stop/Shutdown when the caller passes no timeout
	defaultStopTimeout = time.Second
)
