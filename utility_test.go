// FILE: tinylog-go/tinylog/utility_test.go

package tinylog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]int64{
		"trace":    LevelTrace,
		"debug":    LevelDebug,
		"info":     LevelInfo,
		"warn":     LevelWarn,
		"error":    LevelError,
		"critical": LevelCritical,
		"crit":     LevelCritical,
		"off":      LevelOff,
		"  INFO  ": LevelInfo, // case and whitespace insensitive
	}
	for input, want := range cases {
		got, err := ParseLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
	_, err = ParseLevel("")
	assert.Error(t, err)
}

func TestParseKeyValue(t *testing.T) {
	key, value, err := parseKeyValue("directory=/var/log")
	require.NoError(t, err)
	assert.Equal(t, "directory", key)
	assert.Equal(t, "/var/log", value)

	// Value may contain '='
	key, value, err = parseKeyValue("name=a=b")
	require.NoError(t, err)
	assert.Equal(t, "name", key)
	assert.Equal(t, "a=b", value)

	// Empty value is allowed
	_, value, err = parseKeyValue("extension=")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	_, _, err = parseKeyValue("no separator")
	assert.Error(t, err)
	_, _, err = parseKeyValue("=value")
	assert.Error(t, err)
}

func TestSanitizeExtension(t *testing.T) {
	assert.Equal(t, ".log", sanitizeExtension(""))
	assert.Equal(t, ".log", sanitizeExtension("log"))
	assert.Equal(t, ".log", sanitizeExtension(".log"))
	assert.Equal(t, ".txt", sanitizeExtension("txt"))
}

func TestTrimFuncName(t *testing.T) {
	assert.Equal(t, "(*Logger).Info", trimFuncName("github.com/tinylog-go/tinylog.(*Logger).Info"))
	assert.Equal(t, "main", trimFuncName("main.main"))
	assert.Equal(t, "helper", trimFuncName("pkg.helper"))
}

func TestGoroutineID(t *testing.T) {
	id := goroutineID()
	assert.Greater(t, id, uint64(0))

	// Another goroutine reports a different id
	other := make(chan uint64, 1)
	go func() { other <- goroutineID() }()
	assert.NotEqual(t, id, <-other)
}

func TestCombineErrors(t *testing.T) {
	e1 := fmtErrorf("first")
	e2 := fmtErrorf("second")

	assert.Nil(t, combineErrors(nil, nil))
	assert.Equal(t, e1, combineErrors(e1, nil))
	assert.Equal(t, e2, combineErrors(nil, e2))

	combined := combineErrors(e1, e2)
	require.Error(t, combined)
	assert.Contains(t, combined.Error(), "first")
	assert.Contains(t, combined.Error(), "second")
}

func TestFmtErrorfPrefix(t *testing.T) {
	assert.Equal(t, "tinylog: boom", fmtErrorf("boom").Error())
	// No double prefixing
	assert.Equal(t, "tinylog: boom", fmtErrorf("tinylog: boom").Error())
}
