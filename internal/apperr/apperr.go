package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	// KindTransport covers connection failures and non-2xx responses alike.
	KindTransport       Kind = "transport"
	KindMalformed       Kind = "malformed_response"
	KindNotImplemented  Kind = "not_implemented"
	KindInvalidArgument Kind = "invalid_argument"
)

// Error is the failure surfaced by every outbound call.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Msg: err.Error(), Err: err}
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithOp returns a copy of err tagged with op. Errors that are not *Error
// are wrapped as transport failures.
func WithOp(op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		cp := *appErr
		cp.Op = op
		return &cp
	}
	return Wrap(KindTransport, op, err)
}

// KindOf reports the kind of err, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
