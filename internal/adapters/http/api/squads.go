// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
)

// SquadsHandler handles squad lifecycle requests.
type SquadsHandler struct {
	deps Dependencies
}

// NewSquadsHandler creates a new squads handler.
func NewSquadsHandler(deps Dependencies) *SquadsHandler {
	return &SquadsHandler{deps: deps}
}

type createSquadRequest struct {
	Name string `json:"name"`
}

type patchSquadRequest struct {
	Name     *string `json:"name"`
	Favorite *bool   `json:"favorite"`
}

// HandleCreate handles POST /squads requests.
func (h *SquadsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	const op = "api.create_squad"

	var req createSquadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	squad, err := h.deps.CreateSquad(r.Context(), req.Name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSquadResponse(squad))
}

// HandleList handles GET /squads requests.
func (h *SquadsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_squads"

	squads, err := h.deps.ListSquads(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	resp := make([]squadResponse, len(squads))
	for i, s := range squads {
		resp[i] = toSquadResponse(s)
	}
	writeJSON(w, http.StatusOK, map[string][]squadResponse{"squads": resp})
}

// HandleGet handles GET /squads/{id} requests.
func (h *SquadsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	squad, err := h.deps.GetSquad(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSquadResponse(squad))
}

// HandlePatch handles PATCH /squads/{id} requests. A request may carry
// a rename, a favorite flip, or both; favorite=false is ignored since
// favoritism moves by electing another squad.
func (h *SquadsHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	const op = "api.patch_squad"
	id := r.PathValue("id")

	var req patchSquadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	if req.Name == nil && req.Favorite == nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	if req.Name != nil {
		if err := h.deps.RenameSquad(r.Context(), id, *req.Name); err != nil {
			writeDomainError(w, err)
			return
		}
	}
	if req.Favorite != nil && *req.Favorite {
		if err := h.deps.SetFavorite(r.Context(), id); err != nil {
			writeDomainError(w, err)
			return
		}
	}

	squad, err := h.deps.GetSquad(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSquadResponse(squad))
}

// HandleDelete handles DELETE /squads/{id} requests.
func (h *SquadsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.DeleteSquad(r.Context(), r.PathValue("id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
