package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mkarev/go-jwt-auth/internal/logger"
	"github.com/mkarev/go-jwt-auth/internal/password"
	"github.com/mkarev/go-jwt-auth/internal/store"
	"github.com/mkarev/go-jwt-auth/internal/token"
	"github.com/mkarev/go-jwt-auth/models"
)

// authService is the concrete implementation of AuthService. It wires
// the user repository, the bcrypt hasher, and the token codec together.
// All state is read-only after construction, so the service is safe for
// concurrent use.
type authService struct {
	userRepository store.UserRepository
	hasher         *password.Hasher
	codec          *token.Codec

	minPasswordLength int

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given
// collaborators. minPasswordLength bounds the ValidationError check at
// registration.
func NewAuthService(userRepository store.UserRepository, codec *token.Codec, hasher *password.Hasher, minPasswordLength int, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		hasher:            hasher,
		codec:             codec,
		minPasswordLength: minPasswordLength,
		logger:            logger,
	}
}

// RegisterUser creates a new user account.
//
// The plaintext password is validated, hashed with bcrypt, and
// discarded; only the hash is persisted.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided when a field is missing, the email is
//     malformed, or the password is shorter than the configured
//     minimum.
//   - store.ErrUserAlreadyExists (wrapped) when the username or email
//     is taken.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validateRegistration(req); err != nil {
		log.Error().Str("username", req.Username).Msg("invalid registration data provided")
		return models.User{}, err
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	registered, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			log.Error().Str("username", req.Username).Msg("user already exists")
			return models.User{}, err
		}
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registered, nil
}

// Login authenticates an existing user and issues a token.
//
// It looks the account up by username and verifies the supplied
// password against the stored bcrypt hash. Unknown username and wrong
// password both surface as ErrInvalidCredentials so that a caller
// cannot enumerate accounts.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Password == "" {
		log.Error().Msg("empty credentials provided")
		return models.Token{}, ErrInvalidCredentials
	}

	found, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Error().Str("username", req.Username).Msg("login failed")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := a.hasher.Verify(req.Password, found.PasswordHash); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			log.Error().Str("username", req.Username).Msg("login failed")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", req.Username).Msg("password verification failed")
		return models.Token{}, fmt.Errorf("password verification failed: %w", err)
	}

	issued, err := a.codec.Issue(found.Username, time.Now())
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("token issue failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Debug().
		Str("username", found.Username).
		Dur("token_ttl", a.codec.Duration()).
		Msg("token issued")

	return issued, nil
}

// ParseToken validates a raw token string against the codec and returns
// the subject username. Failures are the codec's typed errors
// (token.ErrMalformedToken, token.ErrBadSignature, token.ErrTokenExpired);
// the HTTP boundary collapses them into a single 401.
func (a *authService) ParseToken(ctx context.Context, raw string) (string, error) {
	return a.codec.Validate(raw, time.Now())
}

// UserInfo returns the account record behind an authenticated username.
func (a *authService) UserInfo(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return found, nil
}

func (a *authService) validateRegistration(req models.RegisterRequest) error {
	switch {
	case req.Username == "":
		return fmt.Errorf("%w: username is required", ErrInvalidDataProvided)
	case req.Email == "" || !strings.Contains(req.Email, "@"):
		return fmt.Errorf("%w: valid email is required", ErrInvalidDataProvided)
	case len(req.Password) < a.minPasswordLength:
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidDataProvided, a.minPasswordLength)
	}

	return nil
}
