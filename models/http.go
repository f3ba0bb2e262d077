package models

// RegisterRequest is the JSON body of POST /api/register.
type RegisterRequest struct {
	// Username is the desired unique login identifier. Required.
	Username string `json:"username"`

	// Email is the unique contact address. Required.
	Email string `json:"email"`

	// Password is the plaintext password. It is hashed immediately
	// after validation and never stored or logged.
	Password string `json:"password"`
}

// LoginRequest is the JSON body of POST /api/login.
type LoginRequest struct {
	// Username identifies the account to authenticate.
	Username string `json:"username"`

	// Password is the plaintext password to verify against the stored
	// hash.
	Password string `json:"password"`
}

// TokenResponse is the JSON body returned by a successful login.
type TokenResponse struct {
	// Token is the compact signed JWT the client must replay in the
	// Authorization header of protected requests.
	Token string `json:"token"`
}

// UserResponse is the public projection of a user record. It is the
// JSON body of a successful registration and of GET /api/me; the
// password hash never appears here.
type UserResponse struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ErrorResponse is the uniform JSON error body. Message is always
// generic for credential-related failures to avoid leaking which check
// rejected the request.
type ErrorResponse struct {
	Error string `json:"error"`
}
