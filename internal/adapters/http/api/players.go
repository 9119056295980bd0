// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"

	"github.com/okian/touchline/internal/adapters/players"
	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/pricing"
)

// PlayersHandler handles player catalog requests.
type PlayersHandler struct {
	deps Dependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps Dependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// playerResponse decorates a catalog player with its current price.
type playerResponse struct {
	model.Player
	Cost          int64  `json:"cost"`
	CostFormatted string `json:"cost_formatted"`
}

// playerListResponse is the paginated search result shape.
type playerListResponse struct {
	Players []playerResponse `json:"players"`
	Total   int              `json:"total"`
	Pages   int              `json:"pages"`
}

func (h *PlayersHandler) toResponse(r *http.Request, p model.Player) playerResponse {
	cost := h.deps.Price(r.Context(), p.Overall)
	return playerResponse{
		Player:        p,
		Cost:          cost,
		CostFormatted: pricing.FormatAmount(cost),
	}
}

// HandleSearch handles GET /players requests with filter, sort, and
// pagination query parameters.
func (h *PlayersHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	const op = "api.search_players"

	q := players.Query{
		Search:    r.URL.Query().Get("search"),
		Position:  r.URL.Query().Get("position"),
		League:    r.URL.Query().Get("league"),
		Team:      r.URL.Query().Get("team"),
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
	}

	for param, target := range map[string]*int{
		"min_overall": &q.MinOverall,
		"max_overall": &q.MaxOverall,
		"page":        &q.Page,
		"page_size":   &q.PageSize,
	} {
		raw := r.URL.Query().Get(param)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		*target = n
	}

	result := h.deps.SearchPlayers(r.Context(), q)

	resp := playerListResponse{
		Players: make([]playerResponse, len(result.Players)),
		Total:   result.Total,
		Pages:   result.Pages,
	}
	for i, p := range result.Players {
		resp.Players[i] = h.toResponse(r, p)
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleFilters handles GET /players/filters requests.
func (h *PlayersHandler) HandleFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.PlayerFilters(r.Context()))
}

// HandleGet handles GET /players/{id} requests.
func (h *PlayersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_player"

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	player, err := h.deps.GetPlayer(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toResponse(r, player))
}
