package utils

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ReadPassword prompts the user for a password without echoing input.
// Returns an error if stdin is not a terminal.
func ReadPassword(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("cannot read password: stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}

	return password, nil
}

// ReadPasswordWithConfirm prompts twice and verifies both entries match.
// Used when encrypting, where a typo would produce an envelope nobody can
// open.
func ReadPasswordWithConfirm(prompt, confirmPrompt string) ([]byte, error) {
	password, err := ReadPassword(prompt)
	if err != nil {
		return nil, err
	}

	confirm, err := ReadPassword(confirmPrompt)
	if err != nil {
		return nil, err
	}

	if !bytes.Equal(password, confirm) {
		return nil, fmt.Errorf("passwords do not match")
	}

	return password, nil
}

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
