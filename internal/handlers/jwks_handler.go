package handlers

import (
	"net/http"

	"github.com/white/fluxx-sales/internal/utils"
)

type KeySetProvider interface {
	PublicKeys() utils.JWKS
}

// JWKSHandler publishes the token verification keys for other services.
type JWKSHandler struct {
	keys KeySetProvider
}

func NewJWKSHandler(keys KeySetProvider) *JWKSHandler {
	return &JWKSHandler{keys: keys}
}

// GetJWKS godoc
// @Summary Token verification keys
// @Description RS256 public keys as a JWK set. Empty when tokens use a shared secret.
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.JWKS
// @Router /.well-known/jwks.json [get]
func (h *JWKSHandler) GetJWKS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=300")
	respondWithJSON(w, http.StatusOK, h.keys.PublicKeys())
}
