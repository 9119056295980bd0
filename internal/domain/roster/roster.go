// Package roster enforces the placement rules for squad mutations:
// slot bounds, cross-tier player uniqueness, slot exclusivity, and
// per-tier budget ceilings. Validation is pure: each function takes a
// full roster snapshot and returns either a mutation plan or a
// structured rejection for the caller to surface.
package roster

import (
	"fmt"
	"sort"

	"github.com/okian/touchline/internal/domain/budget"
	"github.com/okian/touchline/internal/domain/formation"
	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/pricing"
)

// Kind classifies a rejection. All kinds are recoverable, user-facing
// outcomes, never faults.
type Kind string

// Rejection kinds.
const (
	KindInvalidSlotIndex      Kind = "invalid_slot_index"
	KindPlayerAlreadyRostered Kind = "player_already_rostered"
	KindSlotOccupied          Kind = "slot_occupied"
	KindBudgetExceeded        Kind = "budget_exceeded"
	KindEmptySourceSlot       Kind = "empty_source_slot"
	KindUnknownFormation      Kind = "unknown_formation"
)

// Rejection is a structured validation failure: a machine-readable
// kind plus a human-readable reason.
type Rejection struct {
	Kind   Kind
	Reason string
}

// Error implements the error interface so rejections can travel through
// error-shaped plumbing, though callers should branch on Kind.
func (r *Rejection) Error() string {
	return r.Reason
}

func reject(kind Kind, format string, args ...any) *Rejection {
	return &Rejection{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// Move relocates an existing entry to a new slot index within its tier.
type Move struct {
	EntryID   string
	SlotIndex int
}

// Plan is an atomic mutation emitted by validation. The store applies
// removals, moves, inserts, and the formation update as a single
// all-or-nothing step. An inserted entry with an empty ID receives one
// on apply.
type Plan struct {
	Remove       []string
	Move         []Move
	Insert       []model.RosterEntry
	SetFormation string
}

// Empty reports whether the plan mutates nothing.
func (p Plan) Empty() bool {
	return len(p.Remove) == 0 && len(p.Move) == 0 && len(p.Insert) == 0 && p.SetFormation == ""
}

// CheckSnapshot verifies the structural invariants a snapshot must
// already satisfy before any operation: no player twice, no two
// entries on one (tier, slot index) pair. A violation is a defect in
// the calling layer, reported as ErrCorruptSnapshot.
func CheckSnapshot(entries []model.RosterEntry) error {
	players := make(map[int]bool, len(entries))
	slots := make(map[model.Tier]map[int]bool)
	for _, e := range entries {
		if players[e.PlayerID] {
			return fmt.Errorf("%w: player %d appears twice", ErrCorruptSnapshot, e.PlayerID)
		}
		players[e.PlayerID] = true
		if slots[e.Tier] == nil {
			slots[e.Tier] = make(map[int]bool)
		}
		if slots[e.Tier][e.SlotIndex] {
			return fmt.Errorf("%w: duplicate slot %s/%d", ErrCorruptSnapshot, e.Tier, e.SlotIndex)
		}
		slots[e.Tier][e.SlotIndex] = true
	}
	return nil
}

// ValidateAdd checks whether player may be placed at (tier, slotIndex)
// given the current snapshot and settings. On success it returns the
// entry to insert (ID left empty for the store to fill); otherwise a
// rejection stating why.
func ValidateAdd(
	entries []model.RosterEntry,
	lookup budget.PlayerLookup,
	tier model.Tier,
	slotIndex int,
	player model.Player,
	curve model.CostCurve,
	budgets model.TierBudgets,
) (model.RosterEntry, *Rejection) {
	if slotIndex < 0 || slotIndex >= tier.SlotCount() {
		return model.RosterEntry{}, reject(KindInvalidSlotIndex,
			"slot index %d outside %s range [0,%d)", slotIndex, tier, tier.SlotCount())
	}

	for _, e := range entries {
		if e.PlayerID == player.ID {
			return model.RosterEntry{}, reject(KindPlayerAlreadyRostered,
				"player %d is already in the squad", player.ID)
		}
	}

	for _, e := range entries {
		if e.Tier == tier && e.SlotIndex == slotIndex {
			return model.RosterEntry{}, reject(KindSlotOccupied,
				"slot %s/%d is already occupied", tier, slotIndex)
		}
	}

	cost := pricing.Cost(player.Overall, curve)
	spent := budget.TierSpent(entries, tier, lookup, curve)
	ceiling := budgets.Budget(tier)
	if spent+cost > ceiling {
		return model.RosterEntry{}, reject(KindBudgetExceeded,
			"adding %s would exceed the %s budget of %s",
			pricing.FormatAmount(cost), tier, pricing.FormatAmount(ceiling))
	}

	return model.RosterEntry{
		PlayerID:  player.ID,
		Tier:      tier,
		SlotIndex: slotIndex,
	}, nil
}

// Swap exchanges two First-XI slots. Equal indices are a no-op. With
// one occupant the entry moves to the free slot; with two occupants
// both move in one atomic plan; with none the swap is rejected so the
// caller can report an empty source slot. Spend never changes.
func Swap(entries []model.RosterEntry, fromIndex, toIndex int) (Plan, *Rejection) {
	limit := model.TierFirstXI.SlotCount()
	if fromIndex < 0 || fromIndex >= limit || toIndex < 0 || toIndex >= limit {
		return Plan{}, reject(KindInvalidSlotIndex,
			"swap indices %d and %d must be within [0,%d)", fromIndex, toIndex, limit)
	}
	if fromIndex == toIndex {
		return Plan{}, nil
	}

	var from, to *model.RosterEntry
	for i := range entries {
		e := &entries[i]
		if e.Tier != model.TierFirstXI {
			continue
		}
		switch e.SlotIndex {
		case fromIndex:
			from = e
		case toIndex:
			to = e
		}
	}

	switch {
	case from == nil && to == nil:
		return Plan{}, reject(KindEmptySourceSlot, "no player in source slot %d", fromIndex)
	case from != nil && to != nil:
		return Plan{Move: []Move{
			{EntryID: from.ID, SlotIndex: toIndex},
			{EntryID: to.ID, SlotIndex: fromIndex},
		}}, nil
	case from != nil:
		return Plan{Move: []Move{{EntryID: from.ID, SlotIndex: toIndex}}}, nil
	default:
		return Plan{Move: []Move{{EntryID: to.ID, SlotIndex: fromIndex}}}, nil
	}
}

// ChangeFormation plans the switch to a new formation. Without First-XI
// occupants only the formation name changes. Otherwise the occupants
// are reassigned onto the new layout and the plan clears and recreates
// them in one atomic step. Unknown formation names are rejected on
// write so a stored squad never carries a layout the catalog cannot
// render.
func ChangeFormation(entries []model.RosterEntry, lookup budget.PlayerLookup, target string) (Plan, *Rejection) {
	if !formation.Known(target) {
		return Plan{}, reject(KindUnknownFormation, "unknown formation %q", target)
	}

	firstXI := make([]model.RosterEntry, 0, model.FirstXISlots)
	for _, e := range entries {
		if e.Tier == model.TierFirstXI {
			firstXI = append(firstXI, e)
		}
	}
	sortBySlot(firstXI)

	if len(firstXI) == 0 {
		return Plan{SetFormation: target}, nil
	}

	candidates := make([]formation.Candidate, 0, len(firstXI))
	for _, e := range firstXI {
		player, ok := lookup(e.PlayerID)
		if !ok {
			// Unresolvable occupants keep their player id but carry no
			// positional affinity; the fallback score places them.
			player = model.Player{ID: e.PlayerID}
		}
		candidates = append(candidates, formation.Candidate{
			PlayerID:             player.ID,
			Position:             player.Position,
			AlternativePositions: player.AlternativePositions,
		})
	}

	assignments := formation.Assign(candidates, target)

	plan := Plan{SetFormation: target}
	for _, e := range firstXI {
		plan.Remove = append(plan.Remove, e.ID)
		plan.Insert = append(plan.Insert, model.RosterEntry{
			PlayerID:  e.PlayerID,
			Tier:      model.TierFirstXI,
			SlotIndex: assignments[e.PlayerID],
		})
	}
	return plan, nil
}

// sortBySlot orders First-XI entries by slot index so reassignment
// sees a canonical candidate order regardless of storage order.
func sortBySlot(entries []model.RosterEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SlotIndex < entries[j].SlotIndex
	})
}
