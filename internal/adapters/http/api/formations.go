// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/okian/touchline/internal/domain/formation"
)

// FormationsHandler handles formation catalog requests.
type FormationsHandler struct{}

// NewFormationsHandler creates a new formations handler.
func NewFormationsHandler() *FormationsHandler {
	return &FormationsHandler{}
}

// formationResponse is the wire shape of one formation layout.
type formationResponse struct {
	Name  string           `json:"name"`
	Slots []formation.Slot `json:"slots"`
}

// HandleList handles GET /formations requests.
func (h *FormationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"formations": formation.Names()})
}

// HandleGet handles GET /formations/{name} requests. Unknown names
// fall back to the default layout so stale clients always render.
func (h *FormationsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if !formation.Known(name) {
		name = formation.DefaultName
	}
	writeJSON(w, http.StatusOK, formationResponse{
		Name:  name,
		Slots: formation.Lookup(name),
	})
}
