package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the escape codes used when rendering error messages.
// It keeps this package independent from the UI theme implementation.
type ColorProvider interface {
	Yellow() string
	Reset() string
}

// DefaultColorProvider renders without colors.
type DefaultColorProvider struct{}

// Yellow returns an empty string.
func (DefaultColorProvider) Yellow() string { return "" }

// Reset returns an empty string.
func (DefaultColorProvider) Reset() string { return "" }

// HandleCalculationError prints a status line for err and maps it to an exit code.
//
// Parameters:
//   - err: The error to handle. A nil error yields ExitSuccess.
//   - duration: The elapsed time before the failure, omitted when zero.
//   - out: The writer for the status line.
//   - colors: The color provider; nil means no colors.
//
// Returns:
//   - int: The exit code matching the error class.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}

	msgSuffix := ""
	if duration > 0 {
		msgSuffix = fmt.Sprintf(" after %s%s%s", colors.Yellow(), duration, colors.Reset())
	}

	var mismatch *MismatchError
	var validation ValidationError
	var config ConfigError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "Status: Failure (Timeout). The execution limit was reached%s.\n", msgSuffix)
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sStatus: Canceled%s.%s\n", colors.Yellow(), msgSuffix, colors.Reset())
		return ExitErrorCanceled
	case errors.As(err, &mismatch):
		fmt.Fprintf(out, "Status: Failure (Mismatch). %v\n", mismatch)
		return ExitErrorMismatch
	case errors.As(err, &validation), errors.As(err, &config):
		fmt.Fprintf(out, "Status: Failure (Invalid input). %v\n", err)
		return ExitErrorConfig
	}
	fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
	return ExitErrorGeneric
}
