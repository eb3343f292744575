package protocol

import "errors"

var (
	// ErrMalformedMessage happens when a command line has an unknown
	// verb, a wrong number of fields or an invalid field value.
	ErrMalformedMessage = errors.New("malformed message")
)
