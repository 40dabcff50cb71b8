package client

import (
	"bufio"
	"fmt"
	"strings"
)

func (a *App) readLine(prompt string) (string, error) {
	if a.reader == nil {
		a.reader = bufio.NewReader(a.in)
	}

	fmt.Fprint(a.out, prompt)
	line, err := a.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readMasterSecret prompts for the master secret and refuses empty input.
func (a *App) readMasterSecret() (string, error) {
	secret, err := a.readLine("master secret: ")
	if err != nil {
		return "", err
	}
	if secret == "" {
		return "", ErrEmptyMasterInput
	}
	return secret, nil
}

// readNewMasterSecret prompts twice, as done for any new credential.
func (a *App) readNewMasterSecret() (string, error) {
	secret, err := a.readMasterSecret()
	if err != nil {
		return "", err
	}

	confirm, err := a.readLine("repeat master secret: ")
	if err != nil {
		return "", err
	}
	if secret != confirm {
		return "", ErrSecretsDiffer
	}

	return secret, nil
}
