package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/mkarev/go-jwt-auth/internal/logger"
	"github.com/mkarev/go-jwt-auth/internal/utils"
)

// auth is the bearer-token middleware guarding protected routes.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it through the auth service, and on success stores
// the subject username in the request context under
// [utils.UsernameCtxKey] before delegating to the next handler.
//
// Every failure mode (absent header, unparseable header, malformed
// token, bad signature, expired token) is rejected with HTTP 401 and
// the same generic message; the specific cause is only logged. Each
// invocation is independent and stateless.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		subject, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token validation failed")
			utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated identity in the context so that
		// downstream handlers can retrieve it without re-parsing the
		// token.
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the standard form
// "Bearer <token>".
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header does not consist
//     of exactly two space-separated parts or the scheme is not
//     "Bearer".
//   - [ErrEmptyToken] — if the token part is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	if parts[1] == "" {
		return "", ErrEmptyToken
	}

	return parts[1], nil
}
