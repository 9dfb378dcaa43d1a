package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSample = errors.New("some error")

func captured(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	logTestWriter = buf
	t.Cleanup(func() {
		logTestWriter = nil
		_ = Init(LogLevelError, "stderr", nil)
	})
	require.NoError(t, Init(level, logTestWriterName, nil))
	return buf
}

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		out = append(out, m)
	}
	return out
}

func TestInfowFields(t *testing.T) {
	buf := captured(t, LogLevelDebug)

	Infow("exchange finished", "curve", 3, "secret", "16")
	Debugf("generator %s", "(0, 10)")

	got := lines(t, buf)
	require.Len(t, got, 2)
	assert.Equal(t, "info", got[0]["level"])
	assert.Equal(t, "exchange finished", got[0]["message"])
	assert.Equal(t, float64(3), got[0]["curve"])
	assert.Equal(t, "16", got[0]["secret"])
	assert.Equal(t, "generator (0, 10)", got[1]["message"])
}

func TestLevelFilters(t *testing.T) {
	buf := captured(t, LogLevelWarn)

	Debugw("hidden")
	Infof("hidden %d", 1)
	Warnw("shown")
	Error(errSample)

	got := lines(t, buf)
	require.Len(t, got, 2)
	assert.Equal(t, "warn", got[0]["level"])
	assert.Equal(t, "some error", got[1]["error"])
	assert.Equal(t, "warn", Level())
}

func TestErrorOutputGetsOnlyErrors(t *testing.T) {
	logTestWriter = io.Discard
	t.Cleanup(func() { _ = Init(LogLevelError, "stderr", nil) })

	errBuf := new(bytes.Buffer)
	require.NoError(t, Init(LogLevelDebug, logTestWriterName, errBuf))

	Infow("not copied")
	Errorw(errSample, "copied")

	got := lines(t, errBuf)
	require.Len(t, got, 1)
	assert.Equal(t, "copied", got[0]["message"])
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	t.Cleanup(func() { _ = Init(LogLevelError, "stderr", nil) })
	assert.Error(t, Init("verbose", "stderr", nil))
}

func TestCheckInvalidChars(t *testing.T) {
	t.Cleanup(func() {
		panicOnInvalidChars = false
		_ = Init(LogLevelError, "stderr", nil)
	})
	logTestWriter = io.Discard
	v := []byte{'h', 'e', 'l', 'l', 'o', 0xff, 'w', 'o', 'r', 'l', 'd'}

	panicOnInvalidChars = false
	require.NoError(t, Init(LogLevelDebug, logTestWriterName, nil))
	assert.NotPanics(t, func() { Debugf("%s", v) })

	panicOnInvalidChars = true
	require.NoError(t, Init(LogLevelDebug, logTestWriterName, nil))
	assert.Panics(t, func() { Debugf("%s", v) })
}
