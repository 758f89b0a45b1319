package loggy

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTerminalPlainBuffer(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}), "a buffer has no file descriptor")
}

func TestIsTerminalRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, isTerminal(f), "a regular file has a descriptor but is not a terminal")
}

type panicFdWriter struct{ bytes.Buffer }

func (panicFdWriter) Fd() uintptr { panic("no descriptor available") }

func TestIsTerminalSwallowsProbePanic(t *testing.T) {
	assert.False(t, isTerminal(&panicFdWriter{}))
}

func TestFlushBufferedWriter(t *testing.T) {
	var backing bytes.Buffer
	bw := bufio.NewWriter(&backing)
	_, err := bw.WriteString("queued")
	require.NoError(t, err)
	require.Empty(t, backing.String())

	require.NoError(t, flush(bw))
	assert.Equal(t, "queued", backing.String())
}

func TestFlushPlainWriterIsNoOp(t *testing.T) {
	assert.NoError(t, flush(&bytes.Buffer{}))
}

type valueFlushWriter struct {
	bytes.Buffer
	flushed int
}

func (w *valueFlushWriter) Flush() { w.flushed++ }

func TestFlushSupportsErrorlessFlushers(t *testing.T) {
	w := &valueFlushWriter{}
	require.NoError(t, flush(w))
	assert.Equal(t, 1, w.flushed)
}

func TestFlushReportsError(t *testing.T) {
	flushErr := errors.New("device gone")
	assert.ErrorIs(t, flush(&errFlushWriter{err: flushErr}), flushErr)
}
