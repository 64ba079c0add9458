// FILE: tinylog-go/tinylog/utility.go

package tinylog

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// callSite reports the file, line, and trimmed function name skip frames
// up the stack. Capture failure degrades diagnostic quality, not
// correctness.
func callSite(skip int) (string, int, string) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", 0, "(unknown)"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return file, line, "(unknown)"
	}
	return file, line, trimFuncName(fn.Name())
}

// trimFuncName strips the package path from a fully qualified function
// name, e.g. "github.com/x/y.(*T).Method" -> "(*T).Method".
func trimFuncName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// goroutineID extracts the numeric goroutine id from the runtime stack
// header ("goroutine 123 [running]:"). The runtime exposes no cheaper
// portable identity for the executing goroutine.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// sanitizeExtension normalizes a file extension to begin with a dot. An
// empty extension falls back to ".log" rather than being rejected.
func sanitizeExtension(ext string) string {
	if ext == "" {
		return ".log"
	}
	if strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "tinylog: ") {
		format = "tinylog: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// parseKeyValue splits a "key=value" override string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// ParseLevel converts a level name to its numeric constant.
func ParseLevel(levelStr string) (int64, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "critical", "crit":
		return LevelCritical, nil
	case "off":
		return LevelOff, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use trace, debug, info, warn, error, critical, off)", levelStr)
	}
}
