package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "auth-server"
)

func newTestCodec(t *testing.T, d time.Duration) *Codec {
	t.Helper()
	c, err := NewCodec(testSignKey, testIssuer, d)
	require.NoError(t, err)
	return c
}

func TestNewCodec_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		issuer   string
		duration time.Duration
	}{
		{name: "empty key", key: "", issuer: testIssuer, duration: time.Hour},
		{name: "empty issuer", key: testSignKey, issuer: "", duration: time.Hour},
		{name: "zero duration", key: testSignKey, issuer: testIssuer, duration: 0},
		{name: "negative duration", key: testSignKey, issuer: testIssuer, duration: -time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCodec(tt.key, tt.issuer, tt.duration)
			assert.Error(t, err)
		})
	}
}

func TestIssue_EmptySubject(t *testing.T) {
	c := newTestCodec(t, time.Hour)

	_, err := c.Issue("", time.Now())
	assert.Error(t, err)
}

func TestIssue_ProducesCompactToken(t *testing.T) {
	c := newTestCodec(t, time.Hour)

	tok, err := c.Issue("john", time.Now())
	require.NoError(t, err)

	assert.NotEmpty(t, tok.SignedString)
	assert.Equal(t, "john", tok.Subject)
	assert.Len(t, strings.Split(tok.SignedString, "."), 3)
}

func TestValidate_RoundTrip(t *testing.T) {
	c := newTestCodec(t, time.Hour)
	issuedAt := time.Now()

	tok, err := c.Issue("john", issuedAt)
	require.NoError(t, err)

	// any instant strictly before issuedAt+duration is accepted
	for _, at := range []time.Time{
		issuedAt,
		issuedAt.Add(time.Minute),
		issuedAt.Add(time.Hour - time.Millisecond),
	} {
		subject, err := c.Validate(tok.SignedString, at)
		require.NoError(t, err)
		assert.Equal(t, "john", subject)
	}
}

func TestValidate_RoundTripSubMillisecondInstant(t *testing.T) {
	c := newTestCodec(t, time.Hour)

	// a fixed instant with a fractional-millisecond component; the
	// codec truncates to milliseconds, so exp is .123 past the second
	issuedAt := time.Unix(1_700_000_000, 123_456_789)

	tok, err := c.Issue("john", issuedAt)
	require.NoError(t, err)

	exp := issuedAt.Truncate(time.Millisecond).Add(time.Hour)

	subject, err := c.Validate(tok.SignedString, exp.Add(-time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, "john", subject)

	_, err = c.Validate(tok.SignedString, exp)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidate_ExpiredAtExactBoundary(t *testing.T) {
	c := newTestCodec(t, time.Hour)
	issuedAt := time.Now()

	tok, err := c.Issue("john", issuedAt)
	require.NoError(t, err)

	// expiring exactly "now" is invalid: comparison is strict now < exp
	_, err = c.Validate(tok.SignedString, issuedAt.Add(time.Hour))
	assert.ErrorIs(t, err, ErrTokenExpired)

	_, err = c.Validate(tok.SignedString, issuedAt.Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestDuration(t *testing.T) {
	c := newTestCodec(t, 30*time.Minute)
	assert.Equal(t, 30*time.Minute, c.Duration())
}

func TestValidate_TamperedSignature(t *testing.T) {
	c := newTestCodec(t, time.Hour)

	tok, err := c.Issue("john", time.Now())
	require.NoError(t, err)

	parts := strings.Split(tok.SignedString, ".")
	require.Len(t, parts, 3)

	// flip one character of the signature segment
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = c.Validate(tampered, time.Now())
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestValidate_WrongKey(t *testing.T) {
	c := newTestCodec(t, time.Hour)
	other, err := NewCodec("a-different-key", testIssuer, time.Hour)
	require.NoError(t, err)

	tok, err := other.Issue("john", time.Now())
	require.NoError(t, err)

	_, err = c.Validate(tok.SignedString, time.Now())
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestValidate_Malformed(t *testing.T) {
	c := newTestCodec(t, time.Hour)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d", "not.a.jwt"} {
		_, err := c.Validate(raw, time.Now())
		assert.ErrorIs(t, err, ErrMalformedToken, "raw=%q", raw)
	}
}

func TestValidate_WrongIssuer(t *testing.T) {
	c := newTestCodec(t, time.Hour)
	other, err := NewCodec(testSignKey, "some-other-service", time.Hour)
	require.NoError(t, err)

	tok, err := other.Issue("john", time.Now())
	require.NoError(t, err)

	_, err = c.Validate(tok.SignedString, time.Now())
	assert.ErrorIs(t, err, ErrMalformedToken)
}
