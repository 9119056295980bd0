package smoke

import "time"

// Config holds configuration for the smoke run
type Config struct {
	BaseURL   string        // Base URL of the service
	NumSquads int           // Number of squads to build
	Workers   int           // Number of concurrent workers
	Timeout   time.Duration // HTTP request timeout
	LogFile   string        // Log file for run output
	Verbose   bool          // Enable verbose logging
}

// Player mirrors the catalog read shape.
type Player struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Overall  int    `json:"overall"`
	Position string `json:"position"`
	Cost     int64  `json:"cost"`
}

// PlayerPage is one page of a catalog search.
type PlayerPage struct {
	Players []Player `json:"players"`
	Total   int      `json:"total"`
	Pages   int      `json:"pages"`
}

// Squad mirrors the squad read shape.
type Squad struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Formation string  `json:"formation"`
	Favorite  bool    `json:"favorite"`
	Entries   []Entry `json:"entries"`
}

// Entry mirrors the roster entry read shape.
type Entry struct {
	ID        string `json:"id"`
	PlayerID  int    `json:"player_id"`
	Tier      string `json:"tier"`
	SlotIndex int    `json:"slot_index"`
}

// BudgetInfo mirrors one tier of the budget ledger.
type BudgetInfo struct {
	Spent     int64 `json:"spent"`
	Budget    int64 `json:"budget"`
	Remaining int64 `json:"remaining"`
}

// BudgetSummary mirrors the budget ledger read shape.
type BudgetSummary struct {
	FirstXI  BudgetInfo `json:"first_xi"`
	Bench    BudgetInfo `json:"bench"`
	Reserves BudgetInfo `json:"reserves"`
	Total    BudgetInfo `json:"total"`
}

// ErrorBody mirrors the API error shape.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Stats holds smoke run statistics
type Stats struct {
	SquadsBuilt        int
	PlacementsApplied  int
	PlacementsRejected int
	SwapsApplied       int
	FormationChanges   int
	Failures           int
	SquadsVerified     int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}
