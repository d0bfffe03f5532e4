package log

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormat_FieldsAndOrphanKey(t *testing.T) {
	ts := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	line := Format(ts, LevelInfo, CatData, "loaded", "name", "streams", "rows")
	require.Equal(t, "2026-01-02T15:04:05 [INFO] [data] loaded name=streams rows=<missing>\n", line)
}

func TestLevels_RespectMinimum(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, LevelWarn)
	defer Reset()

	Debug(CatUI, "hidden")
	Info(CatUI, "hidden")
	Warn(CatUI, "shown")
	ErrorErr(CatUI, "failed", errors.New("boom"))

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "[WARN] [ui] shown")
	require.Contains(t, out, "error=boom")
}

func TestSetEnabled_SilencesOutput(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, LevelDebug)
	defer Reset()

	SetEnabled(false)
	Error(CatTable, "nope")
	require.Empty(t, buf.String())

	SetEnabled(true)
	Error(CatTable, "yes")
	require.Contains(t, buf.String(), "yes")
}

func TestUninitialized_IsNoop(t *testing.T) {
	Reset()
	Info(CatConfig, "nothing happens")
	require.Nil(t, NewListener(context.Background()))
}

func TestListener_ReceivesEntries(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, LevelDebug)
	defer Reset()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	l := NewListener(ctx)
	require.NotNil(t, l)

	Info(CatCache, "hit", "key", "streams")
	ev, ok := l.Next()().(Entry)
	require.True(t, ok)
	require.Contains(t, ev.Payload, "hit key=streams")
}
