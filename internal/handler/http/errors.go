package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing
// the "Authorization" HTTP header. They are logged server-side only;
// the client always receives the same generic 401.
var (
	// ErrEmptyAuthorizationHeader is returned when the incoming request
	// does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is
	// present but does not follow the "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the scheme prefix is present but
	// the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
