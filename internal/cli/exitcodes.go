package cli

import "errors"

// Exit codes for uiguide.
const (
	// ExitSuccess indicates the command ran and, for validation, the document passed.
	ExitSuccess = 0

	// ExitFailure indicates a failed validation, a load failure, or any command error.
	ExitFailure = 1
)

// ErrValidationFailed is returned when the validated document has errors.
// It only selects the exit code; the report already describes the failure.
var ErrValidationFailed = errors.New("guideline validation failed")

// ErrNoCommand is returned when uiguide runs without a subcommand.
// Help has already been printed.
var ErrNoCommand = errors.New("no command given")

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}

// ShouldLog reports whether err needs a log line beyond what was already printed.
func ShouldLog(err error) bool {
	return err != nil && !errors.Is(err, ErrValidationFailed) && !errors.Is(err, ErrNoCommand)
}
