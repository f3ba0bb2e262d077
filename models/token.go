package models

import "github.com/golang-jwt/jwt/v5"

// Token wraps an issued or parsed JWT for authentication flows.
//
// SignedString holds the compact serialized form
// (header.payload.signature) ready to be sent in HTTP headers or stored
// client side. Subject is a cached copy of the "sub" claim so callers do
// not have to re-parse the token.
type Token struct {
	// Token is the underlying JWT used for signing and claim
	// inspection. Only the compact string form is meaningful outside
	// the server process, so it is excluded from JSON.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Subject is the username extracted from the "sub" claim.
	Subject string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements fmt.Stringer.
func (t Token) String() string {
	return t.SignedString
}
