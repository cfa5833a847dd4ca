package reqsig

import "errors"

var (
	// ErrInvalidCredentials is returned when the access key pair fails
	// structural validation (empty key id or empty secret).
	ErrInvalidCredentials = errors.New("reqsig: invalid credentials")

	// ErrEncoding is returned when a request descriptor cannot be
	// canonicalized (missing required field or invalid UTF-8).
	ErrEncoding = errors.New("reqsig: request cannot be canonicalized")
)
