// Package players provides the read-only player catalog: reference
// data loaded from an embedded seed, with search and filtering for the
// player browser. The core never mutates a player record.
package players

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/okian/touchline/internal/domain/model"
)

// Pagination defaults.
const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Query narrows and orders a catalog search. Zero values mean "no
// filter"; page numbering starts at 1.
type Query struct {
	Search     string
	Position   string
	League     string
	Team       string
	MinOverall int
	MaxOverall int
	Page       int
	PageSize   int
	SortBy     string // "overall" (default) or "name"
	SortOrder  string // "asc" or "desc" (default)
}

// Result is one page of a catalog search.
type Result struct {
	Players []model.Player `json:"players"`
	Total   int            `json:"total"`
	Pages   int            `json:"pages"`
}

// FilterOptions lists the distinct values available for filtering.
type FilterOptions struct {
	Positions []string `json:"positions"`
	Leagues   []string `json:"leagues"`
}

// Catalog is an immutable in-memory player catalog.
type Catalog struct {
	players []model.Player
	byID    map[int]model.Player
}

// NewCatalog builds a catalog from the embedded seed data. Context is
// accepted first to satisfy the project-wide convention; it is
// reserved for future use (e.g., loading from an external source).
func NewCatalog(_ context.Context) (*Catalog, error) {
	var list []model.Player
	if err := json.Unmarshal(seedJSON, &list); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSeedCorrupt, err)
	}

	byID := make(map[int]model.Player, len(list))
	for _, p := range list {
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate player id %d", ErrSeedCorrupt, p.ID)
		}
		byID[p.ID] = p
	}

	return &Catalog{players: list, byID: byID}, nil
}

// Get returns the player with the given id.
func (c *Catalog) Get(id int) (model.Player, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len returns the number of players in the catalog.
func (c *Catalog) Len() int {
	return len(c.players)
}

// Search filters, sorts, and paginates the catalog.
func (c *Catalog) Search(ctx context.Context, q Query) Result {
	matched := make([]model.Player, 0, len(c.players))
	for _, p := range c.players {
		if matches(p, q) {
			matched = append(matched, p)
		}
	}

	sortPlayers(matched, q.SortBy, q.SortOrder)

	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	page := q.Page
	if page <= 0 {
		page = 1
	}

	total := len(matched)
	pages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= total {
		return Result{Players: []model.Player{}, Total: total, Pages: pages}
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return Result{Players: matched[start:end], Total: total, Pages: pages}
}

// Filters lists the distinct primary positions and leagues, sorted.
func (c *Catalog) Filters(ctx context.Context) FilterOptions {
	positions := make(map[string]bool)
	leagues := make(map[string]bool)
	for _, p := range c.players {
		positions[p.Position] = true
		if p.League != "" {
			leagues[p.League] = true
		}
	}
	return FilterOptions{
		Positions: sortedKeys(positions),
		Leagues:   sortedKeys(leagues),
	}
}

// matches applies every filter in the query. The position filter
// accepts primary or alternative positions; name and team match as
// case-insensitive substrings.
func matches(p model.Player, q Query) bool {
	if q.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Search)) {
		return false
	}
	if q.Position != "" && !playsPosition(p, q.Position) {
		return false
	}
	if q.League != "" && p.League != q.League {
		return false
	}
	if q.Team != "" && !strings.Contains(strings.ToLower(p.Team), strings.ToLower(q.Team)) {
		return false
	}
	if q.MinOverall > 0 && p.Overall < q.MinOverall {
		return false
	}
	if q.MaxOverall > 0 && p.Overall > q.MaxOverall {
		return false
	}
	return true
}

func playsPosition(p model.Player, position string) bool {
	if p.Position == position {
		return true
	}
	for _, alt := range p.AlternativePositions {
		if alt == position {
			return true
		}
	}
	return false
}

// sortPlayers orders by overall (default) or name, descending by
// default, with the player id as a stable final tie-break.
func sortPlayers(list []model.Player, sortBy, sortOrder string) {
	asc := sortOrder == "asc"
	sort.Slice(list, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "name":
			if list[i].Name == list[j].Name {
				return list[i].ID < list[j].ID
			}
			less = list[i].Name < list[j].Name
		default:
			if list[i].Overall == list[j].Overall {
				return list[i].ID < list[j].ID
			}
			less = list[i].Overall < list[j].Overall
		}
		if asc {
			return less
		}
		return !less
	})
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
