package commands

import (
	"context"
	"errors"

	"github.com/goliatone/go-richtext/internal/editor"
	"github.com/goliatone/go-richtext/internal/model"
	"github.com/goliatone/go-richtext/internal/widgets"
	goerrors "github.com/goliatone/go-errors"
)

const (
	commandValidationCode   = "RICHTEXT_COMMAND_INVALID"
	commandContextCanceled  = "RICHTEXT_COMMAND_CANCELED"
	commandContextTimeout   = "RICHTEXT_COMMAND_TIMEOUT"
	commandContextErrorCode = "RICHTEXT_COMMAND_CONTEXT"
	commandExecuteFailed    = "RICHTEXT_COMMAND_FAILED"
)

// executeCodes maps editor sentinels to text codes hosts can branch on.
// The first match wins.
var executeCodes = []struct {
	target  error
	code    string
	message string
}{
	{editor.ErrCommandDisabled, "RICHTEXT_COMMAND_DISABLED", "editor command disabled at selection"},
	{editor.ErrCommandNotFound, "RICHTEXT_COMMAND_UNKNOWN", "editor command not registered"},
	{widgets.ErrUnknownKind, "RICHTEXT_WIDGET_UNKNOWN", "widget kind not registered"},
	{widgets.ErrInvalidDocument, "RICHTEXT_DOCUMENT_INVALID", "document could not be loaded"},
	{model.ErrInsertNotAllowed, "RICHTEXT_INSERT_REJECTED", "schema rejected widget insertion"},
	{model.ErrInvalidPosition, "RICHTEXT_POSITION_INVALID", "selection position is invalid"},
}

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command validation failed").
		WithTextCode(commandValidationCode)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution cancelled").
			WithTextCode(commandContextCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution deadline exceeded").
			WithTextCode(commandContextTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command context error").
			WithTextCode(commandContextErrorCode)
	}
}

func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	for _, entry := range executeCodes {
		if errors.Is(err, entry.target) {
			return goerrors.Wrap(err, goerrors.CategoryCommand, entry.message).
				WithTextCode(entry.code)
		}
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode(commandExecuteFailed)
}
