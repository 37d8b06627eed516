package service

import "errors"

// ErrItemExists is returned when creating an item whose name is taken.
// The text doubles as the wire error message.
var ErrItemExists = errors.New("Item with this name already exists")

// ValidationError tags request validation failures so handlers can map
// them to a 400 without string matching.
type ValidationError struct {
	err error
}

func (e *ValidationError) Error() string {
	return e.err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.err
}
