// FILE: tinylog-go/tinylog/message.go

package tinylog

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// procStart anchors the monotonic timestamp carried by every Message.
var procStart = time.Now()

// Message describes one log event. It is immutable after construction and
// may be copied freely between the producer and the sink fan-out path.
type Message struct {
	Level int64
	Mono  int64     // nanoseconds since process start, monotonic
	Wall  time.Time // wall clock, displayed at second resolution
	TID   uint64    // identity of the emitting goroutine
	File  string
	Line  int
	Func  string
	Text  string // payload, rendered once at construction time
}

// newMessage captures both timestamps and the goroutine identity and
// renders the payload before the message enters the dispatch path.
func newMessage(level int64, file string, line int, fn string, args []any) Message {
	return Message{
		Level: level,
		Mono:  time.Since(procStart).Nanoseconds(),
		Wall:  time.Now(),
		TID:   goroutineID(),
		File:  file,
		Line:  line,
		Func:  fn,
		Text:  cat(args),
	}
}

// cat concatenates the variadic payload arguments in order using each
// argument's textual representation. No separators are inserted between
// arguments; callers control spacing.
func cat(args []any) string {
	buf := make([]byte, 0, 64)
	for _, arg := range args {
		buf = appendValue(buf, arg)
	}
	return string(buf)
}

// appendValue converts a single value to text. Floats render fixed-point
// with 6-decimal precision.
func appendValue(buf []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return append(buf, val...)
	case []byte:
		return append(buf, val...)
	case int:
		return strconv.AppendInt(buf, int64(val), 10)
	case int32:
		return strconv.AppendInt(buf, int64(val), 10)
	case int64:
		return strconv.AppendInt(buf, val, 10)
	case uint:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint32:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(buf, val, 10)
	case float32:
		return strconv.AppendFloat(buf, float64(val), 'f', 6, 32)
	case float64:
		return strconv.AppendFloat(buf, val, 'f', 6, 64)
	case bool:
		return strconv.AppendBool(buf, val)
	case nil:
		return append(buf, "nil"...)
	case time.Time:
		return val.AppendFormat(buf, timeLayout)
	case time.Duration:
		return append(buf, val.String()...)
	case error:
		return append(buf, val.Error()...)
	case fmt.Stringer:
		return append(buf, val.String()...)
	default:
		// Structs, maps, pointers, and the rest go through spew for a
		// compact, deterministic dump.
		var b bytes.Buffer
		dumper := &spew.ConfigState{
			Indent:                  " ",
			MaxDepth:                10,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		}
		dumper.Fdump(&b, val)
		return append(buf, bytes.TrimSpace(b.Bytes())...)
	}
}
