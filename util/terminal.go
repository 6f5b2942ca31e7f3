package util

import (
	"io"

	"golang.org/x/term"
)

// fdWriter is implemented by *os.File
type fdWriter interface {
	Fd() uintptr
}

// IsTerminal reports whether w is attached to a terminal. Writers which are not backed by a
// file descriptor (buffers, pipes wrapped in other writers) never are.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
