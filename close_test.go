package enumkit

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCloser struct {
	err   error
	calls int
}

func (c *countingCloser) Close() error {
	c.calls++
	return c.err
}

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestCloseWithLog_NilCloser(t *testing.T) {
	logger, buf := newBufferLogger()

	CloseWithLog(nil, logger, "catalog file")
	assert.Empty(t, buf.String())
}

func TestCloseWithLog_Success(t *testing.T) {
	logger, buf := newBufferLogger()
	c := &countingCloser{}

	CloseWithLog(c, logger, "catalog file")

	assert.Equal(t, 1, c.calls)
	assert.Empty(t, buf.String())
}

func TestCloseWithLog_Error(t *testing.T) {
	logger, buf := newBufferLogger()
	c := &countingCloser{err: errors.New("device busy")}

	func() {
		defer CloseWithLog(c, logger, "catalog file")
	}()

	assert.Equal(t, 1, c.calls)
	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "failed to close resource")
	assert.Contains(t, out, "catalog file")
	assert.Contains(t, out, "device busy")
}

func TestCloseWithLog_NilLogger(t *testing.T) {
	c := &countingCloser{err: errors.New("boom")}

	require.NotPanics(t, func() {
		CloseWithLog(c, nil, "catalog file")
	})
	assert.Equal(t, 1, c.calls)
}

func TestCloseWithLog_File(t *testing.T) {
	logger, buf := newBufferLogger()

	f, err := os.Create(filepath.Join(t.TempDir(), "enums.yaml"))
	require.NoError(t, err)

	CloseWithLog(f, logger, "catalog file")
	assert.Empty(t, buf.String())

	// closing twice reports the second failure
	CloseWithLog(f, logger, "catalog file")
	assert.Contains(t, buf.String(), "failed to close resource")
}
