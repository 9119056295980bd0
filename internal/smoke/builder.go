package smoke

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/okian/touchline/pkg/logger"
)

// Tier capacities mirrored from the service.
const (
	firstXISlots  = 11
	benchSlots    = 7
	reservesSlots = 5
)

// formationRotation is cycled through when changing formations.
var formationRotation = []string{"4-4-2", "3-5-2", "4-2-3-1", "4-3-3"}

// placement is one planned roster addition.
type placement struct {
	PlayerID  int    `json:"player_id"`
	Tier      string `json:"tier"`
	SlotIndex int    `json:"slot_index"`
}

// loadCatalog pages through the player catalog, cheapest first.
func loadCatalog(ctx context.Context, client *HTTPClient, baseURL string) ([]Player, error) {
	var all []Player
	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/players?sort_by=overall&sort_order=asc&page=%d&page_size=100", baseURL, page)

		var result PlayerPage
		if err := client.getJSON(ctx, url, &result); err != nil {
			return nil, fmt.Errorf("failed to load catalog page %d: %w", page, err)
		}
		all = append(all, result.Players...)
		if page >= result.Pages || len(result.Players) == 0 {
			break
		}
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}
	return all, nil
}

// planLineup assigns the cheapest players to consecutive slots across
// all three tiers. Cheap players keep every placement inside the
// default budgets, so rejections indicate a service defect.
func planLineup(players []Player) []placement {
	plan := make([]placement, 0, firstXISlots+benchSlots+reservesSlots)
	next := 0

	appendTier := func(tier string, slots int) {
		for i := 0; i < slots && next < len(players); i++ {
			plan = append(plan, placement{
				PlayerID:  players[next].ID,
				Tier:      tier,
				SlotIndex: i,
			})
			next++
		}
	}

	appendTier("FIRST_XI", firstXISlots)
	appendTier("BENCH", benchSlots)
	appendTier("RESERVES", reservesSlots)
	return plan
}

// buildSquads creates and fills squads concurrently using a worker pool.
func buildSquads(ctx context.Context, config *Config, plan []placement, stats *Stats) error {
	logger.Get().Info(ctx, "building squads",
		logger.Int("squads", config.NumSquads),
		logger.Int("workers", config.Workers),
		logger.Int("placementsPerSquad", len(plan)))

	client := newHTTPClient(config.Timeout)

	var (
		built    int64
		applied  int64
		rejected int64
		swaps    int64
		changes  int64
		failures int64
	)

	squadChan := make(chan int, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for n := range squadChan {
				select {
				case <-ctx.Done():
					return
				default:
					if err := buildOneSquad(ctx, client, config, n, plan,
						&applied, &rejected, &swaps, &changes); err != nil {
						atomic.AddInt64(&failures, 1)
						if config.Verbose {
							logger.Get().Warn(ctx, "squad build failed",
								logger.Int("squad", n), logger.Error(err))
						}
						continue
					}
					atomic.AddInt64(&built, 1)
				}
			}
		}()
	}

	go func() {
		defer close(squadChan)
		for n := 0; n < config.NumSquads; n++ {
			select {
			case <-ctx.Done():
				return
			case squadChan <- n:
			}
		}
	}()

	wg.Wait()

	stats.SquadsBuilt = int(atomic.LoadInt64(&built))
	stats.PlacementsApplied = int(atomic.LoadInt64(&applied))
	stats.PlacementsRejected = int(atomic.LoadInt64(&rejected))
	stats.SwapsApplied = int(atomic.LoadInt64(&swaps))
	stats.FormationChanges = int(atomic.LoadInt64(&changes))
	stats.Failures = int(atomic.LoadInt64(&failures))

	logger.Get().Info(ctx, "squad building completed",
		logger.Int("built", stats.SquadsBuilt),
		logger.Int("placements", stats.PlacementsApplied),
		logger.Int("rejections", stats.PlacementsRejected),
		logger.Int("failures", stats.Failures))
	return nil
}

// buildOneSquad runs the full mutation cycle for a single squad:
// create, fill every tier, swap two slots, change formation.
func buildOneSquad(
	ctx context.Context,
	client *HTTPClient,
	config *Config,
	n int,
	plan []placement,
	applied, rejected, swaps, changes *int64,
) error {
	squad, err := createSquad(ctx, client, config.BaseURL, fmt.Sprintf("Smoke Squad %03d", n))
	if err != nil {
		return err
	}

	for _, p := range plan {
		ok, err := placePlayer(ctx, client, config.BaseURL, squad.ID, p)
		if err != nil {
			return err
		}
		if ok {
			atomic.AddInt64(applied, 1)
		} else {
			atomic.AddInt64(rejected, 1)
		}
	}

	// Exercise the swap path on two occupied slots.
	if err := swapSlots(ctx, client, config.BaseURL, squad.ID, 0, 1); err != nil {
		return err
	}
	atomic.AddInt64(swaps, 1)

	target := formationRotation[n%len(formationRotation)]
	if err := changeFormation(ctx, client, config.BaseURL, squad.ID, target); err != nil {
		return err
	}
	atomic.AddInt64(changes, 1)
	return nil
}

func createSquad(ctx context.Context, client *HTTPClient, baseURL, name string) (Squad, error) {
	resp, err := client.Do(ctx, http.MethodPost, baseURL+"/squads", map[string]string{"name": name})
	if err != nil {
		return Squad{}, fmt.Errorf("create squad: %w", err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return Squad{}, fmt.Errorf("create squad: %w", err)
	}
	if resp.StatusCode != http.StatusCreated {
		return Squad{}, fmt.Errorf("create squad: status %d: %s", resp.StatusCode, body)
	}

	var squad Squad
	if err := json.Unmarshal(body, &squad); err != nil {
		return Squad{}, fmt.Errorf("create squad: decode: %w", err)
	}
	return squad, nil
}

// placePlayer returns (true, nil) when applied, (false, nil) when the
// service rejected the placement with a validation error.
func placePlayer(ctx context.Context, client *HTTPClient, baseURL, squadID string, p placement) (bool, error) {
	resp, err := client.Do(ctx, http.MethodPost, baseURL+"/squads/"+squadID+"/players", p)
	if err != nil {
		return false, fmt.Errorf("place player: %w", err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return false, fmt.Errorf("place player: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusCreated:
		return true, nil
	case http.StatusUnprocessableEntity:
		return false, nil
	default:
		return false, fmt.Errorf("place player: status %d: %s", resp.StatusCode, body)
	}
}

func swapSlots(ctx context.Context, client *HTTPClient, baseURL, squadID string, from, to int) error {
	resp, err := client.Do(ctx, http.MethodPost, baseURL+"/squads/"+squadID+"/swap", map[string]int{
		"from_slot": from,
		"to_slot":   to,
	})
	if err != nil {
		return fmt.Errorf("swap: %w", err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return fmt.Errorf("swap: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("swap: status %d: %s", resp.StatusCode, body)
	}
	return nil
}

func changeFormation(ctx context.Context, client *HTTPClient, baseURL, squadID, target string) error {
	resp, err := client.Do(ctx, http.MethodPut, baseURL+"/squads/"+squadID+"/formation", map[string]string{
		"formation": target,
	})
	if err != nil {
		return fmt.Errorf("change formation: %w", err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return fmt.Errorf("change formation: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("change formation: status %d: %s", resp.StatusCode, body)
	}
	return nil
}
