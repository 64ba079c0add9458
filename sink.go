// FILE: tinylog-go/tinylog/sink.go

package tinylog

import (
	"io"
	"os"
)

// Sink is a registered output destination for formatted log lines. Write
// returns nothing: delivery is best-effort and a failing sink must never
// surface an error to, or crash, the producer.
type Sink interface {
	Write(m Message)
}

// ConsoleSink writes formatted lines to a terminal stream. Output is
// unbuffered so short-lived processes never lose trailing lines.
type ConsoleSink struct {
	out   io.Writer
	color bool
	utc   bool
}

// NewConsoleSink creates a console sink targeting standard output.
func NewConsoleSink(color bool, utc bool) *ConsoleSink {
	return &ConsoleSink{
		out:   os.Stdout,
		color: color,
		utc:   utc,
	}
}

// Write formats the message with the sink's own color and timezone
// settings and emits one newline-terminated line.
func (s *ConsoleSink) Write(m Message) {
	line := FormatLine(m, s.utc, s.color)
	_, _ = s.out.Write(append([]byte(line), '\n'))
}
