package rfc

import "errors"

var (
	// ErrInvalidFormat is returned when a string does not have the structure of an RFC.
	ErrInvalidFormat = errors.New("invalid RFC format")
)
