package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// Process exit codes returned by the CLI
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitNoRecord = 3
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode returns the process exit status for a command that failed with this code.
// A canceled prompt is not a failure.
func (c Code) ExitCode() int {
	switch c {
	case CodeOK, CodeCanceled:
		return ExitOK
	case CodeInvalidArgument, CodeOutOfRange:
		return ExitUsage
	case CodeNotFound:
		return ExitNoRecord
	case CodeFailedPrecondition, CodeInternal, CodeUnavailable:
		return ExitFailure
	default:
		return ExitFailure
	}
}
