package listing

import "errors"

var (
	// ErrMissingInput is returned when the listing path is not a readable file.
	ErrMissingInput = errors.New("listing file is not a valid file or was not found")
	// ErrUnrecognizedFormat is returned for a format outside the supported set.
	ErrUnrecognizedFormat = errors.New("invalid or no listing type specified")
	// ErrInvalidConfig is returned when hostname, scheme or port are invalid.
	ErrInvalidConfig = errors.New("invalid parse configuration")
)
