package common

import (
	"fmt"

	"golang.org/x/xerrors"
)

type ErrorCode = uint

// Error is a coded error. Errors derived from the same sentinel with Newf
// or Wrap keep its code, so xerrors.Is matches them against the sentinel.
type Error struct {
	code    string
	message string
	wrapped error
}

func NewError(name string, number ErrorCode, message string) Error {
	return Error{code: fmt.Sprintf("%s-%d", name, number), message: message}
}

func (e Error) MarshalJSON() ([]byte, error) {
	return EncodeJSON(e.jsonMap(), false, false)
}

func (e Error) Error() string {
	b, _ := EncodeJSON(e.jsonMap(), false, false)

	return TerminalLogString(string(b))
}

func (e Error) jsonMap() map[string]string {
	m := map[string]string{
		"code":    e.code,
		"message": e.message,
	}

	if e.wrapped != nil {
		m["cause"] = e.wrapped.Error()
	}

	return m
}

func (e Error) Code() string {
	return e.code
}

func (e Error) Message() string {
	return e.message
}

func (e Error) Newf(format string, args ...interface{}) Error {
	return Error{
		code: e.code,
		message: fmt.Sprintf(
			"%s; %s",
			e.message,
			fmt.Sprintf(format, args...),
		),
		wrapped: e.wrapped,
	}
}

func (e Error) Wrap(err error) Error {
	return Error{code: e.code, message: e.message, wrapped: err}
}

func (e Error) Unwrap() error {
	return e.wrapped
}

func (e Error) Is(target error) bool {
	var t Error
	if !xerrors.As(target, &t) {
		return false
	}

	return e.code == t.code
}

func (e Error) Equal(n error) bool {
	return e.Is(n)
}
