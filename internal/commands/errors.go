package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	codeInvalid  = "LANDING_COMMAND_INVALID"
	codeCanceled = "LANDING_COMMAND_CANCELED"
	codeTimeout  = "LANDING_COMMAND_TIMEOUT"
	codeFailed   = "LANDING_COMMAND_FAILED"
)

// invalidMessage categorizes a message validation failure. Errors already
// carrying a category pass through untouched.
func invalidMessage(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "landing command rejected").
		WithTextCode(codeInvalid)
}

// commandFailed categorizes execution errors. Context cancellation and
// deadline expiry get their own text codes so callers can tell an aborted
// command from a broken one.
func commandFailed(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "landing command canceled").
			WithTextCode(codeCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "landing command timed out").
			WithTextCode(codeTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "landing command failed").
			WithTextCode(codeFailed)
	}
}
