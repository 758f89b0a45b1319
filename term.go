package loggy

import (
	"io"

	"golang.org/x/term"
)

// fdWriter is the subset of *os.File needed to probe a writer for
// terminal interactivity.
type fdWriter interface {
	Fd() uintptr
}

// isTerminal reports whether w writes to an interactive terminal.
// Writers without a file descriptor, and probes that fail, count as
// non-interactive.
func isTerminal(w io.Writer) (interactive bool) {
	defer func() {
		if recover() != nil {
			interactive = false
		}
	}()
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// flush forces any in-process buffering in w to the underlying sink.
// os.File writes are unbuffered, so only writers that expose a Flush
// method (bufio.Writer and friends) have anything to do here.
func flush(w io.Writer) error {
	switch f := w.(type) {
	case interface{ Flush() error }:
		return f.Flush()
	case interface{ Flush() }:
		f.Flush()
	}
	return nil
}
