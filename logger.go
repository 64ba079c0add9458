// FILE: tinylog-go/tinylog/logger.go

package tinylog

import (
	"path/filepath"
	"sync"
	"sync/atomic"
)

// Logger owns the registered sinks and the level threshold and routes
// accepted messages to every sink in insertion order. Logging never
// returns an error and never panics into the host application.
type Logger struct {
	mu    sync.Mutex // guards sinks; registration and dispatch are mutually exclusive
	sinks []Sink

	level atomic.Int64
	utc   atomic.Bool

	// Default-file-path components, used only by AddDefaultFileSink
	pathMu    sync.Mutex
	directory string
	baseName  string
	extension string

	// Async mode state
	bufferSize      atomic.Int64
	started         atomic.Bool
	shutdownCalled  atomic.Bool
	processorExited atomic.Bool
	activeQueue     atomic.Value // stores chan Message
	droppedLogs     atomic.Uint64
}

// NewLogger creates a Logger with no sinks, an info threshold, and local
// time display. Sinks and configuration are applied through the setters.
func NewLogger() *Logger {
	l := &Logger{
		directory: "logs",
		baseName:  "tinylog",
		extension: ".log",
	}
	l.level.Store(LevelInfo)
	l.bufferSize.Store(DefaultBufferSize)
	l.processorExited.Store(true)

	// A pre-closed channel keeps the queue loadable before Start
	initial := make(chan Message)
	close(initial)
	l.activeQueue.Store(initial)

	return l
}

// SetLevel atomically updates the level threshold. Safe to call
// concurrently with logging from any goroutine.
func (l *Logger) SetLevel(level int64) {
	l.level.Store(level)
}

// GetLevel returns the current level threshold.
func (l *Logger) GetLevel() int64 {
	return l.level.Load()
}

// SetUTC selects UTC or local time display for sinks created afterwards.
func (l *Logger) SetUTC(utc bool) {
	l.utc.Store(utc)
}

// SetDirectory sets the directory used for convenience file sinks.
func (l *Logger) SetDirectory(dir string) {
	l.pathMu.Lock()
	defer l.pathMu.Unlock()
	l.directory = dir
}

// SetBaseName sets the base file name used for convenience file sinks.
func (l *Logger) SetBaseName(name string) {
	l.pathMu.Lock()
	defer l.pathMu.Unlock()
	l.baseName = name
}

// SetExtension sets the file extension used for convenience file sinks.
// The extension is normalized to begin with a dot; an empty extension
// falls back to ".log" rather than being rejected.
func (l *Logger) SetExtension(ext string) {
	l.pathMu.Lock()
	defer l.pathMu.Unlock()
	l.extension = sanitizeExtension(ext)
}

// SetBufferSize adjusts the async queue capacity used by the next Start.
func (l *Logger) SetBufferSize(size int64) {
	if size <= 0 {
		size = DefaultBufferSize
	}
	l.bufferSize.Store(size)
}

// DefaultLogPath synthesizes directory + basename + extension.
func (l *Logger) DefaultLogPath() string {
	l.pathMu.Lock()
	defer l.pathMu.Unlock()
	return filepath.Join(l.directory, l.baseName+l.extension)
}

// AddSink appends a sink to the owned collection. Insertion order defines
// fan-out order; sinks are never removed once added.
func (l *Logger) AddSink(s Sink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinks = append(l.sinks, s)
}

// AddConsoleSink registers a console sink built with the logger's current
// UTC setting.
func (l *Logger) AddConsoleSink(color bool) {
	l.AddSink(NewConsoleSink(color, l.utc.Load()))
}

// AddFileSink registers a rotating file sink at an explicit path.
func (l *Logger) AddFileSink(path string, maxBytes int64, maxFiles int) {
	l.AddSink(NewFileSink(path, maxBytes, maxFiles, l.utc.Load()))
}

// AddDefaultFileSink registers a rotating file sink at DefaultLogPath().
func (l *Logger) AddDefaultFileSink(maxBytes int64, maxFiles int) {
	l.AddSink(NewFileSink(l.DefaultLogPath(), maxBytes, maxFiles, l.utc.Load()))
}

// Log is the single entry point every call-site wrapper funnels through.
// The threshold check runs before any payload rendering, so rejected calls
// allocate nothing. Accepted messages are dispatched synchronously, or
// enqueued when async mode is running.
func (l *Logger) Log(level int64, file string, line int, fn string, args ...any) {
	if level < l.level.Load() {
		return
	}
	m := newMessage(level, file, line, fn, args)
	if l.started.Load() {
		l.sendMessage(m)
		return
	}
	l.dispatch(m)
}

// Trace logs a message at trace level, capturing the call site.
func (l *Logger) Trace(args ...any) {
	l.logAt(LevelTrace, 3, args...)
}

// Debug logs a message at debug level, capturing the call site.
func (l *Logger) Debug(args ...any) {
	l.logAt(LevelDebug, 3, args...)
}

// Info logs a message at info level, capturing the call site.
func (l *Logger) Info(args ...any) {
	l.logAt(LevelInfo, 3, args...)
}

// Warn logs a message at warn level, capturing the call site.
func (l *Logger) Warn(args ...any) {
	l.logAt(LevelWarn, 3, args...)
}

// Error logs a message at error level, capturing the call site.
func (l *Logger) Error(args ...any) {
	l.logAt(LevelError, 3, args...)
}

// Critical logs a message at critical level, capturing the call site.
func (l *Logger) Critical(args ...any) {
	l.logAt(LevelCritical, 3, args...)
}

// logAt rejects below-threshold calls before paying for runtime.Caller,
// then funnels into Log with the captured source location.
func (l *Logger) logAt(level int64, skip int, args ...any) {
	if level < l.level.Load() {
		return
	}
	file, line, fn := callSite(skip)
	l.Log(level, file, line, fn, args...)
}

// dispatch fans the message out to every sink in insertion order under the
// sink lock. A sink that panics does not stop delivery to the sinks after
// it, and no error propagates to the producer.
func (l *Logger) dispatch(m Message) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.sinks {
		writeSink(s, m)
	}
}

// writeSink isolates one sink write so a misbehaving sink cannot take the
// dispatch loop down with it.
func writeSink(s Sink, m Message) {
	defer func() {
		_ = recover()
	}()
	s.Write(m)
}
