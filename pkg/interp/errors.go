package interp

import (
	"errors"
	"fmt"
)

// Error kinds. Every *Error unwraps to exactly one of these.
var (
	ErrUnboundName       = errors.New("unbound name")
	ErrArity             = errors.New("arity error")
	ErrType              = errors.New("type error")
	ErrUnspecifiedReturn = errors.New("unspecified return")
	ErrResourceExhausted = errors.New("resource exhausted")
	ErrOverflow          = errors.New("integer overflow")
)

// Error is an evaluation failure. Kind is one of the Err* sentinels above.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
