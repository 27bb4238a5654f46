package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer, level Level) *Logger {
	l := New(Options{Output: buf, Level: level})
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return l
}

func decode(t *testing.T, line string) LogEntry {
	t.Helper()
	var e LogEntry
	require.NoError(t, json.Unmarshal([]byte(line), &e))
	return e
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", LevelDebug, true},
		{" INFO ", LevelInfo, true},
		{"warning", LevelWarn, true},
		{"Error", LevelError, true},
		{"verbose", LevelInfo, false},
	}
	for _, c := range cases {
		got, ok := ParseLevel(c.in)
		assert.Equal(t, c.want, got, c.in)
		assert.Equal(t, c.ok, ok, c.in)
	}
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelWarn)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	e := decode(t, lines[0])
	assert.Equal(t, "WARN", e.Level)
	assert.Equal(t, "shown", e.Message)
	assert.Equal(t, "2024-01-02T03:04:05Z", e.Timestamp)
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelDebug).WithRunID("r-1").With(Component("runner"))

	l.Debug("section done", Section("loops"), Err(errors.New("boom")))

	e := decode(t, strings.TrimSpace(buf.String()))
	assert.Equal(t, "r-1", e.Fields[RunIDKey])
	assert.Equal(t, "runner", e.Fields["component"])
	assert.Equal(t, "loops", e.Fields["section"])
	assert.Equal(t, "boom", e.Fields["error"])
}

func TestLogger_WithDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newTestLogger(&buf, LevelInfo)
	_ = parent.With(String("k", "v"))

	parent.Info("plain")

	e := decode(t, strings.TrimSpace(buf.String()))
	assert.Empty(t, e.Fields)
}

func TestNop(t *testing.T) {
	l := Nop()
	assert.False(t, l.Enabled(LevelError))
	l.Error("nothing")
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelInfo)

	ctx := WithContext(context.Background(), l)

	assert.Same(t, l, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
}
