// errors.go defines CLI exit codes and the error type that carries them.
//
// The CLIError type lets domain packages signal the desired process exit
// code without importing os or the CLI layer; internal/cli translates it
// at the very top of the program.
package model

import "fmt"

// ExitCode defines standard CLI exit codes. These codes allow scripts and
// CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitConfigError indicates the resolved configuration is invalid.
	// Configuration errors abort the process before any suite runs.
	ExitConfigError ExitCode = 2

	// ExitToolchainNotFound indicates the external scala-cli binary
	// could not be located or started.
	ExitToolchainNotFound ExitCode = 3

	// ExitVerificationFailed indicates at least one fragment in at
	// least one suite failed verification. Reported only after all
	// suites have completed — there is no fail-fast.
	ExitVerificationFailed ExitCode = 4

	// ExitDockerNotRunning indicates the Docker daemon is not
	// accessible. Only relevant when the docker runner is selected.
	ExitDockerNotRunning ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
