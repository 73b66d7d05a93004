package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal. Non-TTY runs
// skip spinners and other interactive chrome.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
