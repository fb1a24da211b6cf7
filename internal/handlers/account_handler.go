package handlers

import (
	"context"
	"net/http"

	"github.com/white/fluxx-sales/internal/models"
	"github.com/white/fluxx-sales/internal/repositories"
	"go.uber.org/zap"
)

const (
	msgMissingReference = "Missing reference ID."
	msgNoAccounts       = "No accounts found with the provided reference ID."
)

// AccountLister returns the active accounts owned by a reference id.
type AccountLister interface {
	ListActive(ctx context.Context, referenceID string) ([]models.Account, error)
}

// AccountHandler serves company accounts by owner.
type AccountHandler struct {
	accounts AccountLister
	logger   *zap.Logger
}

func NewAccountHandler(accounts AccountLister, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, logger: logger}
}

// GetAccounts godoc
// @Summary List active accounts
// @Description Returns every account owned by the reference ID whose status is not Inactive.
// @Tags Accounts
// @Produce json
// @Param referenceid query string true "Owner reference ID"
// @Success 200 {object} envelope
// @Failure 400 {object} envelope "Missing reference ID."
// @Failure 404 {object} envelope "No accounts found with the provided reference ID."
// @Failure 500 {object} envelope
// @Router /api/v1/accounts [get]
// @Security BearerAuth
func (h *AccountHandler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	referenceID := r.URL.Query().Get("referenceid")
	if referenceID == "" {
		respondWithError(w, http.StatusBadRequest, msgMissingReference)
		return
	}

	accounts, err := h.accounts.ListActive(r.Context(), referenceID)
	if err != nil {
		if repositories.IsNotFound(err) {
			respondWithError(w, http.StatusNotFound, msgNoAccounts)
			return
		}
		h.logger.Error("Error fetching accounts", zap.String("referenceid", referenceID), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithData(w, http.StatusOK, accounts)
}
