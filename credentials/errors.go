package credentials

import "errors"

var (
	// ErrNotFound is returned when the credentials file or the requested
	// profile does not exist.
	ErrNotFound = errors.New("credentials: not found")

	// ErrMalformed is returned when the credentials file cannot be parsed
	// or a secret access key is not valid base64.
	ErrMalformed = errors.New("credentials: malformed")

	// ErrHomeDir is returned when the user's home directory cannot be
	// determined and no explicit path was given.
	ErrHomeDir = errors.New("credentials: home directory not found")
)
