// --- File: default.go ---

package tinylog

import (
	"time"
)

// Process-wide default instance for package-level functions. Applications
// that prefer explicit wiring should construct their own Logger and pass
// it around; the default exists for configure-once, log-anywhere use.
var defaultLogger = NewLogger()

// Default returns the package-level logger instance.
func Default() *Logger {
	return defaultLogger
}

// SetLevel atomically updates the default logger's threshold.
func SetLevel(level int64) {
	defaultLogger.SetLevel(level)
}

// GetLevel returns the default logger's threshold.
func GetLevel() int64 {
	return defaultLogger.GetLevel()
}

// SetUTC selects UTC or local display for the default logger.
func SetUTC(utc bool) {
	defaultLogger.SetUTC(utc)
}

// SetDirectory sets the default logger's convenience-sink directory.
func SetDirectory(dir string) {
	defaultLogger.SetDirectory(dir)
}

// SetBaseName sets the default logger's convenience-sink base name.
func SetBaseName(name string) {
	defaultLogger.SetBaseName(name)
}

// SetExtension sets the default logger's convenience-sink extension.
func SetExtension(ext string) {
	defaultLogger.SetExtension(ext)
}

// AddSink registers a sink on the default logger.
func AddSink(s Sink) {
	defaultLogger.AddSink(s)
}

// AddConsoleSink registers a console sink on the default logger.
func AddConsoleSink(color bool) {
	defaultLogger.AddConsoleSink(color)
}

// AddFileSink registers a rotating file sink on the default logger.
func AddFileSink(path string, maxBytes int64, maxFiles int) {
	defaultLogger.AddFileSink(path, maxBytes, maxFiles)
}

// AddDefaultFileSink registers a file sink at the synthesized default path.
func AddDefaultFileSink(maxBytes int64, maxFiles int) {
	defaultLogger.AddDefaultFileSink(maxBytes, maxFiles)
}

// Start switches the default logger to asynchronous mode.
func Start() {
	defaultLogger.Start()
}

// Shutdown drains the default logger and releases its file handles.
func Shutdown(timeout ...time.Duration) error {
	return defaultLogger.Shutdown(timeout...)
}

// Trace logs a message at trace level
func Trace(args ...any) {
	defaultLogger.logAt(LevelTrace, 3, args...)
}

// Debug logs a message at debug level
func Debug(args ...any) {
	defaultLogger.logAt(LevelDebug, 3, args...)
}

// Info logs a message at info level
func Info(args ...any) {
	defaultLogger.logAt(LevelInfo, 3, args...)
}

// Warn logs a message at warning level
func Warn(args ...any) {
	defaultLogger.logAt(LevelWarn, 3, args...)
}

// Error logs a message at error level
func Error(args ...any) {
	defaultLogger.logAt(LevelError, 3, args...)
}

// Critical logs a message at critical level
func Critical(args ...any) {
	defaultLogger.logAt(LevelCritical, 3, args...)
}

// Scope starts a debug-level scope timer on the default logger.
func Scope(name string) *ScopeTimer {
	return defaultLogger.newScope(LevelDebug, name)
}
