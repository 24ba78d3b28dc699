package app

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// PromptKeyPassword asks for the Apple pass key password on the terminal
// when the key is configured without one. It does nothing when
// stdin is not a terminal, as under cron.
func PromptKeyPassword(key string, password *string, w io.Writer) error {
	if key == "" || *password != "" {
		return nil
	}
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return nil
	}

	if _, err := fmt.Fprint(w, "Apple pass key password: "); err != nil {
		return err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	*password = string(pw)
	wipe(pw)
	return nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
