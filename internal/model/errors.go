package model

import "errors"

var (
	// ErrOutsideChange is returned when a writer is used after its change scope closed.
	ErrOutsideChange = errors.New("model: writer used outside of a change scope")
	// ErrInvalidPosition reports positions that do not resolve inside the document.
	ErrInvalidPosition = errors.New("model: invalid position")
	// ErrInsertNotAllowed reports an insertion rejected by the schema.
	ErrInsertNotAllowed = errors.New("model: insertion not allowed by schema")
	// ErrAttachedNode reports an attempt to insert a node that already has a parent.
	ErrAttachedNode = errors.New("model: node is already attached")
)
