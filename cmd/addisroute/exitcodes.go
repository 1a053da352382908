package main

import "errors"

// Exit codes.
const (
	ExitSuccess      = 0 // Success
	ExitError        = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError  = 2 // Configuration error (unreadable or invalid config)
	ExitNoPath       = 3 // Search ran but found no path, or an endpoint is blocked
	ExitUnknownInput = 4 // Unknown location or algorithm
)

// exitError carries an exit code alongside the error that caused it.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// withCode wraps err so run exits with code.
func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// errNoPath is returned after the result has been printed, to set the exit code.
var errNoPath = errors.New("no path")

// exitCode maps an error returned by a command to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitError
}
