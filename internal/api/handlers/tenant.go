package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/r8r-one/platform/internal/tenant"
)

type TenantHandler struct {
	provider *tenant.Provider
}

func NewTenantHandler(provider *tenant.Provider) *TenantHandler {
	return &TenantHandler{provider: provider}
}

// Get returns the tenant record for an id. The provider always degrades
// to a built-in template, so this only fails on a malformed id.
func (h *TenantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !tenant.IsValidID(id) {
		writeError(w, http.StatusBadRequest, "invalid tenant id")
		return
	}

	writeJSON(w, http.StatusOK, h.provider.Get(r.Context(), id))
}
