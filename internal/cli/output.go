package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/calebcase/numerics"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // A value could not be converted
	ExitCommandError = 2 // Bad arguments, unknown type, unreadable input
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. Errors that carry no code
// come from argument handling and are command errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitCommandError
}

// Response is the envelope of json and yaml output.
type Response struct {
	Status string       `json:"status" yaml:"status"`
	Data   any          `json:"data,omitempty" yaml:"data,omitempty"`
	Error  *ErrorDetail `json:"error,omitempty" yaml:"error,omitempty"`
}

// ErrorDetail describes a failed conversion.
type ErrorDetail struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// texter is implemented by results with a human readable rendering.
type texter interface {
	writeText(w io.Writer)
}

// OutputFormatter handles text, json and yaml output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

func (f *OutputFormatter) encode(r Response) error {
	switch f.Format {
	case "json":
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")

		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(f.Writer)
		enc.SetIndent(2)

		err := enc.Encode(r)
		if err != nil {
			return err
		}

		return enc.Close()
	}

	return Error.New("unsupported format %q", f.Format)
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format != "text" {
		return f.encode(Response{Status: "ok", Data: data})
	}

	if t, ok := data.(texter); ok {
		t.writeText(f.Writer)

		return nil
	}

	_, err := fmt.Fprintln(f.Writer, data)

	return err
}

// Fail outputs a conversion error and returns it with the exit code.
func (f *OutputFormatter) Fail(code int, err error) error {
	detail := newErrorDetail(err)

	if f.Format != "text" {
		_ = f.encode(Response{Status: "error", Error: detail})
	} else {
		fmt.Fprintf(f.Writer, "error [%s]: %s\n", detail.Code, detail.Message)
	}

	return WrapExitError(code, detail.Code, err)
}

func newErrorDetail(err error) *ErrorDetail {
	return &ErrorDetail{
		Code:    errorCode(err),
		Message: err.Error(),
	}
}

// errorCode names the kind of a numeric error.
func errorCode(err error) string {
	switch {
	case errors.Is(err, numerics.ErrSyntax):
		return "syntax"
	case errors.Is(err, numerics.ErrInvalidRaw):
		return "invalid_raw"
	case errors.Is(err, numerics.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, numerics.ErrOverflow):
		return "overflow"
	case errors.Is(err, numerics.ErrDivideByZero):
		return "divide_by_zero"
	case errors.Is(err, numerics.ErrTypeMismatch):
		return "type_mismatch"
	}

	return "error"
}
