package sttp

import "errors"

var (
	// ErrNilRequest is returned when a nil request is sent through a backend.
	ErrNilRequest = errors.New("request cannot be nil")
)
