package compat

import (
	"runtime"
	"strings"
)

// callSite reports the caller's file, line, and trimmed function name so
// adapter output points at the framework call site rather than the adapter.
func callSite(skip int) (string, int, string) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", 0, "(unknown)"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return file, line, "(unknown)"
	}

	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return file, line, name
}
