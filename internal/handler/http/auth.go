package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkarev/go-jwt-auth/internal/logger"
	"github.com/mkarev/go-jwt-auth/internal/service"
	"github.com/mkarev/go-jwt-auth/internal/store"
	"github.com/mkarev/go-jwt-auth/internal/utils"
	"github.com/mkarev/go-jwt-auth/models"
)

// register handles POST /api/register. On success it responds with 201
// and the created user's public fields; the password hash never leaves
// the server.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registered, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, "invalid data provided", http.StatusBadRequest)
		case errors.Is(err, store.ErrUserAlreadyExists):
			log.Err(err).Msg("user already exists")
			utils.WriteJSONError(w, "user already exists", http.StatusConflict)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, models.UserResponse{
		ID:       registered.ID,
		Username: registered.Username,
		Email:    registered.Email,
	}, http.StatusCreated)
}

// login handles POST /api/login. On success it responds with 200 and
// the issued token; every credential failure maps to a single 401 with
// a generic message.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	issued, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("login rejected")
			utils.WriteJSONError(w, "invalid username or password", http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	log.Debug().Str("username", req.Username).Msg("user successfully logged in")

	utils.WriteJSON(w, models.TokenResponse{Token: issued.SignedString}, http.StatusOK)
}

// me handles GET /api/me. The auth middleware has already validated the
// bearer token and stored the subject in the request context.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated identity in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.UserInfo(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user info lookup failed")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.UserResponse{
		Username: user.Username,
		Email:    user.Email,
	}, http.StatusOK)
}
