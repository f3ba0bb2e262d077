// Package token implements the signed-token codec used by the
// authentication flow. Tokens are HMAC-SHA256 JWTs carrying the
// username in the "sub" claim and a fixed-duration expiry.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mkarev/go-jwt-auth/models"
)

// Codec issues and validates signed tokens. The signing key, issuer and
// token lifetime are fixed at construction time; a Codec is immutable
// and safe for concurrent use.
type Codec struct {
	signKey  []byte
	issuer   string
	duration time.Duration
}

// tokenClaims carries the registered claim set plus the expiry as an
// integer epoch-millisecond value. The standard "exp" claim is a
// fractional-second float on the wire and loses millisecond precision
// through float64 serialization, so the strict expiry comparison runs
// against "expms" instead.
type tokenClaims struct {
	jwt.RegisteredClaims

	// ExpiresAtMillis is the expiry instant in milliseconds since the
	// Unix epoch. Authoritative for the now < exp check.
	ExpiresAtMillis int64 `json:"expms"`
}

// NewCodec constructs a Codec signing with HMAC-SHA256 under signKey.
// Every issued token carries issuer as the "iss" claim and expires
// duration after issuance.
func NewCodec(signKey, issuer string, duration time.Duration) (*Codec, error) {
	if signKey == "" || issuer == "" || duration <= 0 {
		return nil, errors.New("invalid token codec params")
	}

	return &Codec{
		signKey:  []byte(signKey),
		issuer:   issuer,
		duration: duration,
	}, nil
}

// Issue creates a signed token for the given subject (username).
//
// Claims:
//   - Issuer    (iss):   the configured issuer
//   - Subject   (sub):   the username
//   - IssuedAt  (iat):   now
//   - ExpiresAt (exp):   now + configured duration, rounded up to the
//     next whole second so libraries honouring only "exp" never reject
//     a token before its true expiry
//   - expms:             the exact expiry in epoch milliseconds
//
// Instants are truncated to millisecond precision before signing.
func (c *Codec) Issue(subject string, now time.Time) (models.Token, error) {
	if subject == "" {
		return models.Token{}, errors.New("empty subject")
	}

	now = now.Truncate(time.Millisecond)
	expiresAt := now.Add(c.duration)

	claims := &tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(ceilSecond(expiresAt)),
		},
		ExpiresAtMillis: expiresAt.UnixMilli(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(c.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("signing token: %w", err)
	}

	return models.Token{Token: t, SignedString: signed, Subject: subject}, nil
}

// Validate checks raw against the codec's key and returns the subject.
//
// The checks are independent and any single failure rejects the token:
//   - structural well-formedness → ErrMalformedToken
//   - HMAC signature integrity   → ErrBadSignature
//   - now < exp (strict)         → ErrTokenExpired
//
// The expiry comparison runs at millisecond precision against the
// "expms" claim. now is injected by the caller so validation is
// deterministic under test; a token expiring exactly at now is invalid.
func (c *Codec) Validate(raw string, now time.Time) (string, error) {
	now = now.Truncate(time.Millisecond)

	parsed, err := jwt.ParseWithClaims(raw, &tokenClaims{},
		func(t *jwt.Token) (any, error) {
			return c.signKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrBadSignature
		default:
			return "", ErrMalformedToken
		}
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || claims.ExpiresAtMillis <= 0 || claims.Subject == "" {
		return "", ErrMalformedToken
	}

	if !now.Before(time.UnixMilli(claims.ExpiresAtMillis)) {
		return "", ErrTokenExpired
	}

	return claims.Subject, nil
}

// Duration reports the configured token lifetime.
func (c *Codec) Duration() time.Duration {
	return c.duration
}

// ceilSecond rounds t up to the next whole second unless it already is
// one.
func ceilSecond(t time.Time) time.Time {
	floor := t.Truncate(time.Second)
	if floor.Equal(t) {
		return t
	}
	return floor.Add(time.Second)
}
