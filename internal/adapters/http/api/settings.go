// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/okian/touchline/internal/domain/model"
)

// SettingsHandler handles game settings requests.
type SettingsHandler struct {
	deps Dependencies
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(deps Dependencies) *SettingsHandler {
	return &SettingsHandler{deps: deps}
}

// HandleGet handles GET /settings requests.
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Settings(r.Context()))
}

// HandleUpdate handles PUT /settings requests. The full settings shape
// must be supplied; partial updates start from the current settings on
// the client side.
func (h *SettingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	const op = "api.update_settings"

	var settings model.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	if err := h.deps.UpdateSettings(r.Context(), settings); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Settings(r.Context()))
}
