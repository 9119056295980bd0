// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/okian/touchline/internal/domain/model"
)

// RosterHandler handles roster mutation and budget requests.
type RosterHandler struct {
	deps Dependencies
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(deps Dependencies) *RosterHandler {
	return &RosterHandler{deps: deps}
}

type addPlayerRequest struct {
	PlayerID  int    `json:"player_id"`
	Tier      string `json:"tier"`
	SlotIndex int    `json:"slot_index"`
}

type swapRequest struct {
	FromSlot int `json:"from_slot"`
	ToSlot   int `json:"to_slot"`
}

type changeFormationRequest struct {
	Formation string `json:"formation"`
}

// HandleAddPlayer handles POST /squads/{id}/players requests.
func (h *RosterHandler) HandleAddPlayer(w http.ResponseWriter, r *http.Request) {
	const op = "api.add_player"
	squadID := r.PathValue("id")

	var req addPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	tier := model.Tier(req.Tier)
	if !tier.Valid() {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	entry, err := h.deps.AddPlayer(r.Context(), squadID, req.PlayerID, tier, req.SlotIndex)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// HandleRemoveEntry handles DELETE /squads/{id}/players/{entryID} requests.
func (h *RosterHandler) HandleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	squadID := r.PathValue("id")
	entryID := r.PathValue("entryID")

	if err := h.deps.RemoveEntry(r.Context(), squadID, entryID); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSwap handles POST /squads/{id}/swap requests.
func (h *RosterHandler) HandleSwap(w http.ResponseWriter, r *http.Request) {
	const op = "api.swap_slots"
	squadID := r.PathValue("id")

	var req swapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	if err := h.deps.SwapSlots(r.Context(), squadID, req.FromSlot, req.ToSlot); err != nil {
		writeDomainError(w, err)
		return
	}

	squad, err := h.deps.GetSquad(r.Context(), squadID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSquadResponse(squad))
}

// HandleChangeFormation handles PUT /squads/{id}/formation requests.
func (h *RosterHandler) HandleChangeFormation(w http.ResponseWriter, r *http.Request) {
	const op = "api.change_formation"
	squadID := r.PathValue("id")

	var req changeFormationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	if err := h.deps.ChangeFormation(r.Context(), squadID, req.Formation); err != nil {
		writeDomainError(w, err)
		return
	}

	squad, err := h.deps.GetSquad(r.Context(), squadID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSquadResponse(squad))
}

// HandleBudget handles GET /squads/{id}/budget requests.
func (h *RosterHandler) HandleBudget(w http.ResponseWriter, r *http.Request) {
	summary, err := h.deps.BudgetSummary(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
