// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/okian/touchline/internal/adapters/players"
	"github.com/okian/touchline/internal/adapters/repository"
	"github.com/okian/touchline/internal/domain/budget"
	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/roster"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Squad lifecycle.
	CreateSquad(ctx context.Context, name string) (model.Squad, error)
	GetSquad(ctx context.Context, id string) (model.Squad, error)
	ListSquads(ctx context.Context) ([]model.Squad, error)
	RenameSquad(ctx context.Context, id, name string) error
	DeleteSquad(ctx context.Context, id string) error
	SetFavorite(ctx context.Context, id string) error

	// Roster mutations.
	AddPlayer(ctx context.Context, squadID string, playerID int, tier model.Tier, slotIndex int) (model.RosterEntry, error)
	RemoveEntry(ctx context.Context, squadID, entryID string) error
	SwapSlots(ctx context.Context, squadID string, fromIndex, toIndex int) error
	ChangeFormation(ctx context.Context, squadID, target string) error

	// Reads.
	BudgetSummary(ctx context.Context, squadID string) (budget.Summary, error)
	SearchPlayers(ctx context.Context, q players.Query) players.Result
	PlayerFilters(ctx context.Context) players.FilterOptions
	GetPlayer(ctx context.Context, id int) (model.Player, error)
	Price(ctx context.Context, rating int) int64

	// Settings singleton.
	Settings(ctx context.Context) model.Settings
	UpdateSettings(ctx context.Context, s model.Settings) error

	// GetStats exposes service statistics for monitoring.
	GetStats(ctx context.Context) map[string]interface{}
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	playersHandler    *PlayersHandler
	formationsHandler *FormationsHandler
	squadsHandler     *SquadsHandler
	rosterHandler     *RosterHandler
	settingsHandler   *SettingsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(deps),
		playersHandler:    NewPlayersHandler(deps),
		formationsHandler: NewFormationsHandler(),
		squadsHandler:     NewSquadsHandler(deps),
		rosterHandler:     NewRosterHandler(deps),
		settingsHandler:   NewSettingsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("GET /players", MetricsMiddleware(s.playersHandler.HandleSearch, "players"))
	mux.HandleFunc("GET /players/filters", MetricsMiddleware(s.playersHandler.HandleFilters, "player_filters"))
	mux.HandleFunc("GET /players/{id}", MetricsMiddleware(s.playersHandler.HandleGet, "player"))

	mux.HandleFunc("GET /formations", MetricsMiddleware(s.formationsHandler.HandleList, "formations"))
	mux.HandleFunc("GET /formations/{name}", MetricsMiddleware(s.formationsHandler.HandleGet, "formation"))

	mux.HandleFunc("POST /squads", MetricsMiddleware(s.squadsHandler.HandleCreate, "squads"))
	mux.HandleFunc("GET /squads", MetricsMiddleware(s.squadsHandler.HandleList, "squads"))
	mux.HandleFunc("GET /squads/{id}", MetricsMiddleware(s.squadsHandler.HandleGet, "squad"))
	mux.HandleFunc("PATCH /squads/{id}", MetricsMiddleware(s.squadsHandler.HandlePatch, "squad"))
	mux.HandleFunc("DELETE /squads/{id}", MetricsMiddleware(s.squadsHandler.HandleDelete, "squad"))

	mux.HandleFunc("POST /squads/{id}/players", MetricsMiddleware(s.rosterHandler.HandleAddPlayer, "squad_players"))
	mux.HandleFunc("DELETE /squads/{id}/players/{entryID}", MetricsMiddleware(s.rosterHandler.HandleRemoveEntry, "squad_players"))
	mux.HandleFunc("POST /squads/{id}/swap", MetricsMiddleware(s.rosterHandler.HandleSwap, "squad_swap"))
	mux.HandleFunc("PUT /squads/{id}/formation", MetricsMiddleware(s.rosterHandler.HandleChangeFormation, "squad_formation"))
	mux.HandleFunc("GET /squads/{id}/budget", MetricsMiddleware(s.rosterHandler.HandleBudget, "squad_budget"))

	mux.HandleFunc("GET /settings", MetricsMiddleware(s.settingsHandler.HandleGet, "settings"))
	mux.HandleFunc("PUT /settings", MetricsMiddleware(s.settingsHandler.HandleUpdate, "settings"))
}

// entryResponse is the wire shape of a roster entry.
type entryResponse struct {
	ID        string     `json:"id"`
	PlayerID  int        `json:"player_id"`
	Tier      model.Tier `json:"tier"`
	SlotIndex int        `json:"slot_index"`
}

// squadResponse is the wire shape of a squad with its roster.
type squadResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Formation string          `json:"formation"`
	Favorite  bool            `json:"favorite"`
	CreatedAt time.Time       `json:"created_at"`
	Entries   []entryResponse `json:"entries"`
}

func toEntryResponse(e model.RosterEntry) entryResponse {
	return entryResponse{
		ID:        e.ID,
		PlayerID:  e.PlayerID,
		Tier:      e.Tier,
		SlotIndex: e.SlotIndex,
	}
}

func toSquadResponse(s model.Squad) squadResponse {
	entries := make([]entryResponse, len(s.Entries))
	for i, e := range s.Entries {
		entries[i] = toEntryResponse(e)
	}
	return squadResponse{
		ID:        s.ID,
		Name:      s.Name,
		Formation: s.Formation,
		Favorite:  s.Favorite,
		CreatedAt: s.CreatedAt,
		Entries:   entries,
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError maps service and store errors onto HTTP statuses.
// Validation rejections travel as 422 with their kind as the code so
// clients can branch without parsing messages.
func writeDomainError(w http.ResponseWriter, err error) {
	var rej *roster.Rejection
	switch {
	case errors.As(err, &rej):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Code:    string(rej.Kind),
			Message: rej.Reason,
		})
	case errors.Is(err, repository.ErrSquadNotFound),
		errors.Is(err, repository.ErrEntryNotFound),
		errors.Is(err, players.ErrPlayerNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, repository.ErrEmptyName),
		errors.Is(err, model.ErrInvalidSettings):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
