package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/white/fluxx-sales/internal/events"
	"github.com/white/fluxx-sales/internal/models"
	"github.com/white/fluxx-sales/internal/services"
	"go.uber.org/zap"
)

type Authenticator interface {
	Register(ctx context.Context, in models.RegisterUserInput) (*models.UserProfile, error)
	Login(ctx context.Context, in models.LoginInput) (*models.LoginResult, error)
}

type AuthHandler struct {
	auth   Authenticator
	audit  *events.AuditPublisher
	logger *zap.Logger
}

func NewAuthHandler(auth Authenticator, audit *events.AuditPublisher, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, audit: audit, logger: logger}
}

// Register godoc
// @Summary Register a user
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body models.RegisterUserInput true "Registration form"
// @Success 201 {object} envelope
// @Failure 400 {object} envelope
// @Failure 409 {object} envelope "Email already in use"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in models.RegisterUserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	profile, err := h.auth.Register(r.Context(), in)
	switch {
	case errors.Is(err, services.ErrMissingFields):
		respondWithError(w, http.StatusBadRequest, "Email and Password are required")
		return
	case errors.Is(err, services.ErrEmailInUse):
		respondWithError(w, http.StatusConflict, "Email already in use")
		return
	case err != nil:
		h.logger.Error("Error registering user", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	h.audit.PublishFromRequest(r, &events.AuditEvent{
		UserID:      profile.ID,
		UserEmail:   profile.Email,
		ReferenceID: profile.ReferenceID,
		Action:      events.ActionUserRegistered,
		Resource:    events.ResourceUser,
		ResourceID:  profile.ID,
		Details:     "user registered",
		Success:     true,
	})
	respondWithData(w, http.StatusCreated, profile)
}

// Login godoc
// @Summary Sign in
// @Description Returns an access token. Unknown email and wrong password produce the same response.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginInput true "Credentials"
// @Success 200 {object} envelope
// @Failure 401 {object} envelope "Invalid email or password"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in models.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := h.auth.Login(r.Context(), in)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.audit.PublishFromRequest(r, &events.AuditEvent{
				UserEmail: in.Email,
				Action:    events.ActionLoginFailed,
				Resource:  events.ResourceAuth,
				Details:   "invalid credentials",
			})
			respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.logger.Error("Error during login", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	h.audit.PublishFromRequest(r, &events.AuditEvent{
		UserID:      result.User.ID,
		UserEmail:   result.User.Email,
		ReferenceID: result.User.ReferenceID,
		Action:      events.ActionLogin,
		Resource:    events.ResourceAuth,
		Details:     "login",
		Success:     true,
	})
	respondWithData(w, http.StatusOK, result)
}
