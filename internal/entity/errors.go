package entity

import "errors"

var (
	// ErrNotFound means the id was well formed but no document matched.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID means the id could not address any document.
	ErrInvalidID = errors.New("invalid id")
)
