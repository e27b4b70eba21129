package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestJSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, slog.LevelInfo).WithOp("psp2p")
	l.LogDecode(context.Background(), "P.mtx", 3, 4, 5, time.Millisecond, nil)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "matrix loaded", rec["msg"])
	assert.Equal(t, "psp2p", rec["op"])
	assert.Equal(t, "P.mtx", rec["uri"])
	assert.EqualValues(t, 5, rec["nnz"])
}

func TestVerifyLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf, slog.LevelInfo)

	l.LogVerify(context.Background(), true, 20, time.Second, nil)
	assert.Contains(t, buf.String(), "identity holds")

	buf.Reset()
	l.LogVerify(context.Background(), false, 20, time.Second, nil)
	assert.Contains(t, buf.String(), "level=WARN")

	buf.Reset()
	l.LogMultiply(context.Background(), "PS", 0, 0, errors.New("boom"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "boom")
}

func TestNoop(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	l.LogStore(context.Background(), "x", 1, nil) // must not panic

	assert.NotNil(t, NewLogger(nil).Logger)
}
