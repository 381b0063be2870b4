package numerics

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the error class for failures detected by this package.
var Error = errs.Class("numerics")

// Error kinds. Every error returned by the numeric types wraps exactly one of
// these.
var (
	ErrInvalidRaw   = errors.New("invalid raw bit pattern")
	ErrOutOfRange   = errors.New("value out of range")
	ErrOverflow     = errors.New("arithmetic overflow")
	ErrDivideByZero = errors.New("division by zero")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrSyntax       = errors.New("invalid syntax")
)

// Errorf returns a new error of the given kind contained in class.
func Errorf(class *errs.Class, kind error, format string, args ...interface{}) error {
	return class.Wrap(fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)))
}

// SyntaxError reports text that could not be parsed as the named type.
func SyntaxError(class *errs.Class, typ, text string) error {
	return Errorf(class, ErrSyntax, "parsing %q as %s", text, typ)
}
