package cli

import (
	"errors"

	"github.com/ariel-frischer/claudekit/internal/fetch"
	"github.com/ariel-frischer/claudekit/internal/install"
)

// Exit codes for the claudekit CLI
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a generic failure
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments or configuration
	ExitInvalidArguments = 2

	// ExitMissingDependency indicates neither transport tool is installed
	ExitMissingDependency = 3

	// ExitTransferFailed indicates a file could not be fetched or written
	ExitTransferFailed = 4
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, fetch.ErrNoTransport) {
		return ExitMissingDependency
	}

	var transferErr *install.TransferError
	if errors.As(err, &transferErr) {
		return ExitTransferFailed
	}

	return ExitFailure
}
