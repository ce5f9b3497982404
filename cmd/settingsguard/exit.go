package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/arthur-debert/settingsguard/pkg/style"
)

// Exit statuses
const (
	ExitOK       = 0
	ExitFindings = 1
	ExitError    = 2
)

// exitError ends the command with a status but no message; the command has
// already printed its findings
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func findings() error {
	return &exitError{code: ExitFindings}
}

// exitCode maps an Execute error to a process exit status, printing real
// errors to stderr
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintln(stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
	return ExitError
}
