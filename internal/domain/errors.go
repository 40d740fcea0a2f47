package domain

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrNotConfigured means the component lacks data or credentials to run
	ErrNotConfigured = errors.New("not configured")
	// ErrDelegateUnavailable marks failures of an external delegate (LLM, mail provider, remote service)
	ErrDelegateUnavailable = errors.New("delegate unavailable")
	// ErrMalformedDelegateResponse means a delegate answered in an unexpected shape
	ErrMalformedDelegateResponse = errors.New("malformed delegate response")
	// ErrAuthorizationIncomplete means the mail provider handshake did not finish
	ErrAuthorizationIncomplete = errors.New("authorization incomplete")
	ErrNotFound                = errors.New("not found")
	ErrInvalidInput            = errors.New("invalid input")
)

// Invalidf builds an ErrInvalidInput error
func Invalidf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidInput)
}

// DelegateFailure wraps err from an external call and marks it as ErrDelegateUnavailable
func DelegateFailure(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrDelegateUnavailable) {
		return errors.Wrap(err, what)
	}
	return errors.Mark(errors.Wrap(err, what), ErrDelegateUnavailable)
}

// NotConfigured builds an ErrNotConfigured error with a remediation hint
func NotConfigured(msg, hint string) error {
	err := errors.Mark(errors.New(msg), ErrNotConfigured)
	if hint != "" {
		err = errors.WithHint(err, hint)
	}
	return err
}

// Hints returns every hint attached to err
func Hints(err error) []string {
	return errors.GetAllHints(err)
}
