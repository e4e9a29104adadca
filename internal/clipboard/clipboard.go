// Package clipboard writes plain UTF-8 text to the system clipboard.
package clipboard

import (
	"errors"
	"os/exec"
	"strings"

	atotto "github.com/atotto/clipboard"
)

// Write puts text on the system clipboard
func Write(text string) error {
	return atotto.WriteAll(text)
}

// WriteCommand pipes text on stdin to a user-configured command,
// e.g. "wl-copy", "xclip -selection clipboard" or "pbcopy".
func WriteCommand(cmdline, text string) error {
	parts := strings.Fields(cmdline)
	if len(parts) == 0 {
		return errors.New("clipboard: empty copy command")
	}

	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
