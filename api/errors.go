package api

import "errors"

var (
	// ErrInvalidConfig is returned by New when the configuration is
	// unusable (missing credentials, unparseable base URL).
	ErrInvalidConfig = errors.New("api: invalid config")

	// ErrStatus is returned when the service responds with an unexpected
	// HTTP status.
	ErrStatus = errors.New("api: unexpected response status")

	// ErrGraphQL is returned by catalog methods when the response carries
	// GraphQL-level errors.
	ErrGraphQL = errors.New("api: graphql error")

	// ErrUpload is returned when the file upload endpoint rejects the
	// upload.
	ErrUpload = errors.New("api: upload rejected")
)
