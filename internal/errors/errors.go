// Package errors is the error toolkit used across longlines. Constructors attach stack
// traces via github.com/pkg/errors so that `%+v` prints them in verbose mode, and the
// inspection helpers come from the standard library.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	ErrUnknownKey      = New("unknown setting")
	ErrInvalidValue    = New("invalid value")
	ErrNoInputs        = New("no inputs matched")
	ErrConflictingArgs = New("conflicting arguments")
)

func New(message string) error {
	return pkgerrors.New(message)
}

func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}
