// FILE: tinylog-go/tinylog/format_test.go

package tinylog

import (
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches the escape sequences emitted by colorization
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// testMessage builds a fixed message for formatter tests
func testMessage(level int64) Message {
	return Message{
		Level: level,
		Mono:  12345,
		Wall:  time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC),
		TID:   7,
		File:  "/src/app/main.go",
		Line:  24,
		Func:  "main",
		Text:  "hello 123",
	}
}

// TestFormatLineLayout verifies the single-line wire format
func TestFormatLineLayout(t *testing.T) {
	line := FormatLine(testMessage(LevelDebug), true, false)

	assert.Equal(t, "UTC 2024-01-02 15:04:05 [DEBUG] (tid:7) main.go:24 main | hello 123", line)
}

// TestFormatLineLocal verifies the local-timezone tag and rendering
func TestFormatLineLocal(t *testing.T) {
	m := testMessage(LevelInfo)
	line := FormatLine(m, false, false)

	assert.Contains(t, line, "LOC ")
	assert.Contains(t, line, m.Wall.Local().Format(timeLayout))
	assert.NotContains(t, line, "UTC")
}

// TestFormatLineDeterministic checks byte-identical output across repeated calls
func TestFormatLineDeterministic(t *testing.T) {
	m := testMessage(LevelWarn)

	for _, colorize := range []bool{false, true} {
		first := FormatLine(m, true, colorize)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, FormatLine(m, true, colorize))
		}
	}
}

// TestColorizeOnlyAddsEscapes verifies that stripping ANSI escapes from
// colorized output yields the plain output
func TestColorizeOnlyAddsEscapes(t *testing.T) {
	levels := []int64{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelCritical, 42}

	for _, level := range levels {
		m := testMessage(level)
		plain := FormatLine(m, true, false)
		colored := FormatLine(m, true, true)

		assert.NotEqual(t, plain, colored)
		assert.Equal(t, plain, ansiPattern.ReplaceAllString(colored, ""))
	}
}

// TestLevelToString verifies level display names, including the OFF fallback
func TestLevelToString(t *testing.T) {
	tests := []struct {
		level    int64
		expected string
	}{
		{LevelTrace, "TRACE"},
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelCritical, "CRIT"},
		{LevelOff, "OFF"},
		{999, "OFF"},
		{-1, "OFF"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, levelToString(tt.level))
		})
	}
}

type stringerValue struct{}

func (stringerValue) String() string { return "stringered" }

// TestCat verifies payload concatenation semantics
func TestCat(t *testing.T) {
	t.Run("arguments concatenated in order without separators", func(t *testing.T) {
		assert.Equal(t, "hello 123", cat([]any{"hello ", 123}))
		assert.Equal(t, "a1b2", cat([]any{"a", 1, "b", 2}))
	})

	t.Run("floats render fixed-point with 6 decimals", func(t *testing.T) {
		assert.Equal(t, "1.500000", cat([]any{1.5}))
		assert.Equal(t, "0.333333", cat([]any{float64(1) / 3}))
		assert.Equal(t, "2.000000", cat([]any{float32(2)}))
	})

	t.Run("common scalar types", func(t *testing.T) {
		assert.Equal(t, "true", cat([]any{true}))
		assert.Equal(t, "nil", cat([]any{nil}))
		assert.Equal(t, "-42", cat([]any{int64(-42)}))
		assert.Equal(t, "42", cat([]any{uint(42)}))
	})

	t.Run("error and stringer", func(t *testing.T) {
		assert.Equal(t, "boom", cat([]any{errors.New("boom")}))
		assert.Equal(t, "stringered", cat([]any{stringerValue{}}))
	})

	t.Run("duration", func(t *testing.T) {
		assert.Equal(t, "50ms", cat([]any{50 * time.Millisecond}))
	})

	t.Run("compound types do not panic", func(t *testing.T) {
		out := cat([]any{struct{ A int }{A: 3}})
		assert.Contains(t, out, "3")
	})
}

// TestFormatLineNeverEmpty ensures formatting succeeds for arbitrary messages
func TestFormatLineNeverEmpty(t *testing.T) {
	var zero Message
	line := FormatLine(zero, true, false)

	require.NotEmpty(t, line)
	assert.Contains(t, line, "[TRACE]")
}

// TestLineFormatRegex checks the documented wire format end to end
func TestLineFormatRegex(t *testing.T) {
	lineRe := regexp.MustCompile(`^(UTC|LOC) \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \[[A-Z]+\] \(tid:\d+\) \S+:\d+ \S+ \| .*$`)

	for _, utc := range []bool{true, false} {
		line := FormatLine(testMessage(LevelError), utc, false)
		assert.True(t, lineRe.MatchString(line), fmt.Sprintf("line %q does not match wire format", line))
	}
}
