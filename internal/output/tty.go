package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInteractiveInput reports whether stdin is a terminal.
func IsInteractiveInput() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
