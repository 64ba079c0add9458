// FILE: tinylog-go/tinylog/format.go

package tinylog

import (
	"path/filepath"
	"strconv"
)

// timeLayout is the human timestamp layout shared by console and file output.
const timeLayout = "2006-01-02 15:04:05"

// ANSI escape sequences keyed by level
const (
	colorReset    = "\x1b[0m"
	colorTrace    = "\x1b[90m"    // dim
	colorDebug    = "\x1b[36m"    // cyan
	colorInfo     = "\x1b[37m"    // default foreground
	colorWarn     = "\x1b[33m"    // yellow
	colorError    = "\x1b[31m"    // red
	colorCritical = "\x1b[41;97m" // inverse/bold
)

// levelToString converts level constants to their display names. Values
// outside the known range fall back to "OFF" rather than failing.
func levelToString(level int64) string {
	switch level {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRIT"
	default:
		return "OFF"
	}
}

// levelColor returns the ANSI escape used to colorize a full line.
func levelColor(level int64) string {
	switch level {
	case LevelTrace:
		return colorTrace
	case LevelDebug:
		return colorDebug
	case LevelInfo:
		return colorInfo
	case LevelWarn:
		return colorWarn
	case LevelError:
		return colorError
	case LevelCritical:
		return colorCritical
	default:
		return colorReset
	}
}

// FormatLine renders one message as a single display line:
//
//	LOC 2025-09-15 22:13:31 [DEBUG] (tid:12) main.go:24 main | message...
//
// The function is deterministic and side-effect free, and never fails for
// any valid Message. Colorization only wraps the line in escape bytes; the
// textual content is unchanged.
func FormatLine(m Message, utc bool, colorize bool) string {
	buf := make([]byte, 0, 96+len(m.Text))

	if colorize {
		buf = append(buf, levelColor(m.Level)...)
	}

	if utc {
		buf = append(buf, "UTC "...)
		buf = m.Wall.UTC().AppendFormat(buf, timeLayout)
	} else {
		buf = append(buf, "LOC "...)
		buf = m.Wall.Local().AppendFormat(buf, timeLayout)
	}

	buf = append(buf, " ["...)
	buf = append(buf, levelToString(m.Level)...)
	buf = append(buf, "] (tid:"...)
	buf = strconv.AppendUint(buf, m.TID, 10)
	buf = append(buf, ") "...)
	buf = append(buf, filepath.Base(m.File)...)
	buf = append(buf, ':')
	buf = strconv.AppendInt(buf, int64(m.Line), 10)
	buf = append(buf, ' ')
	buf = append(buf, m.Func...)
	buf = append(buf, " | "...)
	buf = append(buf, m.Text...)

	if colorize {
		buf = append(buf, colorReset...)
	}
	return string(buf)
}
