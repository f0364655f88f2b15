package term

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// HasTTY tells if the standard input and output are attached to a terminal.
func HasTTY() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

// ReadSecret prompts the question on w, and reads the answer from the
// terminal without echoing it.
func ReadSecret(w io.Writer, question string) (string, error) {
	if _, err := fmt.Fprint(w, question); err != nil {
		return "", err
	}
	defer fmt.Fprintln(w)

	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("could not read the secret: %w", err)
	}

	return string(secret), nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
