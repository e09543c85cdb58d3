package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/streak/internal/logger"
)

// InputError marks a failure caused by what the user typed rather than by
// stored data. Input errors are reported and the session continues.
type InputError struct {
	Input string
	Err   error
}

func (e *InputError) Error() string {
	if e.Input == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Input)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError wraps err as an InputError for the given raw input
func NewInputError(input string, err error) error {
	return &InputError{Input: input, Err: err}
}

// IsInputError reports whether err, or anything it wraps, is an InputError
func IsInputError(err error) bool {
	var inputErr *InputError
	return stderrors.As(err, &inputErr)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Report prints a non-fatal error to w. Input errors are logged at warn
// level, everything else at error level.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	if IsInputError(err) {
		logger.Warn("Rejected input", "error", err)
	} else {
		logger.Error("Operation failed", "error", err)
	}
	fmt.Fprintln(w, Format(err))
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
