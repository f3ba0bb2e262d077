package token

import "errors"

// Sentinel errors returned by Codec.Validate. Callers match them with
// [errors.Is]; the HTTP layer collapses all three into a single 401.
var (
	// ErrMalformedToken is returned when the raw string is not a
	// structurally valid JWT, carries unexpected claims, or was issued
	// by a different issuer.
	ErrMalformedToken = errors.New("malformed token")

	// ErrBadSignature is returned when the token's HMAC signature does
	// not verify under the codec's signing key.
	ErrBadSignature = errors.New("bad token signature")

	// ErrTokenExpired is returned when the token's expiry is not
	// strictly in the future.
	ErrTokenExpired = errors.New("token is expired")
)
