package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a registration request
	// fails validation (missing fields, malformed email, short
	// password).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on any login failure caused by
	// the supplied credentials. It deliberately does not distinguish an
	// unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrTokenCreationFailed is returned when signing a new token
	// fails.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
