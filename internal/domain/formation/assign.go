package formation

import "sort"

// Affinity scores for slotScore, highest to lowest.
const (
	scorePrimary     = 100
	scoreAlternative = 80
	scoreFamily      = 60
	scoreFallback    = 1
)

// positionFamily is the curated adjacency relation between position
// labels. A player whose primary position neighbours a slot label gets
// the family score for it.
var positionFamily = map[string][]string{
	"LB":  {"LWB"},
	"LWB": {"LB"},
	"RB":  {"RWB"},
	"RWB": {"RB"},
	"CDM": {"CM"},
	"CM":  {"CDM", "CAM"},
	"CAM": {"CM", "CF"},
	"LW":  {"LM"},
	"LM":  {"LW"},
	"RW":  {"RM"},
	"RM":  {"RW"},
	"ST":  {"CF"},
	"CF":  {"ST", "CAM"},
}

// Candidate is a First-XI occupant offered to the assignment algorithm.
type Candidate struct {
	PlayerID             int
	Position             string
	AlternativePositions []string
}

// slotScore rates how well a player fits a slot label: exact primary
// match, listed alternative, position-family neighbour, then a minimal
// non-zero fallback so every player can still be placed somewhere.
func slotScore(c Candidate, slotLabel string) int {
	if c.Position == slotLabel {
		return scorePrimary
	}
	for _, alt := range c.AlternativePositions {
		if alt == slotLabel {
			return scoreAlternative
		}
	}
	for _, fam := range positionFamily[c.Position] {
		if fam == slotLabel {
			return scoreFamily
		}
	}
	return scoreFallback
}

// Assign maps each candidate to the best-matching slot in the target
// formation. Every (candidate, slot) pair is scored, the pairs are
// stably sorted by score descending, and the sorted list is walked
// greedily, committing a pair when neither side is taken yet. The
// stable sort keeps ties in encounter order, so the result is
// deterministic for a fixed input order.
//
// Greedy matching is the contract here, not maximum-weight matching:
// it trades global optimality for predictable, fast reassignment.
// Every candidate receives exactly one slot as long as there are at
// least as many slots as candidates.
func Assign(candidates []Candidate, formationName string) map[int]int {
	slots := Lookup(formationName)

	type pair struct {
		playerID  int
		slotIndex int
		score     int
	}
	pairs := make([]pair, 0, len(candidates)*len(slots))
	for _, c := range candidates {
		for i, s := range slots {
			pairs = append(pairs, pair{playerID: c.PlayerID, slotIndex: i, score: slotScore(c, s.Label)})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].score > pairs[j].score
	})

	assignedPlayers := make(map[int]bool, len(candidates))
	assignedSlots := make(map[int]bool, len(slots))
	result := make(map[int]int, len(candidates))

	for _, p := range pairs {
		if assignedPlayers[p.playerID] || assignedSlots[p.slotIndex] {
			continue
		}
		result[p.playerID] = p.slotIndex
		assignedPlayers[p.playerID] = true
		assignedSlots[p.slotIndex] = true
	}

	return result
}
