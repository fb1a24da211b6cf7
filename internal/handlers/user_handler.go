package handlers

import (
	"context"
	"net/http"

	"github.com/white/fluxx-sales/internal/models"
	"github.com/white/fluxx-sales/internal/repositories"
	"go.uber.org/zap"
)

type UserGetter interface {
	GetUser(ctx context.Context, id string) (*models.UserProfile, error)
}

type UserHandler struct {
	users  UserGetter
	logger *zap.Logger
}

func NewUserHandler(users UserGetter, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// GetUser godoc
// @Summary Get a user profile
// @Tags Users
// @Produce json
// @Param id query string true "User ObjectID (hex)"
// @Success 200 {object} envelope
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /api/v1/users [get]
// @Security BearerAuth
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing user ID.")
		return
	}

	profile, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		if repositories.IsNotFound(err) {
			respondWithError(w, http.StatusNotFound, "User not found.")
			return
		}
		h.logger.Error("Error fetching user", zap.String("id", id), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch user.")
		return
	}

	respondWithData(w, http.StatusOK, profile)
}
