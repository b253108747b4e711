// Package terminal provides terminal detection utilities.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

type fileDescriptor interface {
	Fd() uintptr
}

var isTerminal = term.IsTerminal

// IsInteractive reports whether the process stdin and stdout are both terminals.
func IsInteractive() bool {
	return Interactive(os.Stdin, os.Stdout)
}

// Interactive reports whether in and out are both backed by terminal file
// descriptors. Buffers and pipes are never interactive.
func Interactive(in io.Reader, out io.Writer) bool {
	inFile, ok := in.(fileDescriptor)
	if !ok {
		return false
	}
	outFile, ok := out.(fileDescriptor)
	if !ok {
		return false
	}
	return isTerminal(int(inFile.Fd())) && isTerminal(int(outFile.Fd()))
}
