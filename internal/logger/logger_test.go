package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)
	prev := GetLevel()
	defer SetLevel(prev)

	SetLevel(WARN)
	Info("hidden message")
	Warn("visible message", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden message")
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "visible message 3")
	assert.Contains(t, out, "logger_test.go:")
	// not a terminal, so no ANSI codes
	assert.NotContains(t, out, "\033[")
}

func TestObjectsAreRenderedAsJSON(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Info("club", map[string]int{"reputation": 88}, errors.New("boom"))
	out := buf.String()
	assert.Contains(t, out, "[Object of type map[string]int]")
	assert.Contains(t, out, `"reputation": 88`)
	assert.Contains(t, out, "boom")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   DEBUG,
		"":        INFO,
		"Warning": WARN,
		"ERROR":   ERROR,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("chatty")
	assert.Error(t, err)
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	SetLogFile(path)
	require.NoError(t, SetLogOutput('f'))
	Error("written to file")
	require.NoError(t, Close())
	defer SetOutput(os.Stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "written to file"))

	assert.Error(t, SetLogOutput('x'))
}
