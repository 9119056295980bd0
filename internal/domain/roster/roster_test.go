package roster_test

import (
	"errors"
	"testing"

	"github.com/okian/touchline/internal/domain/budget"
	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/pricing"
	"github.com/okian/touchline/internal/domain/roster"
	. "github.com/smartystreets/goconvey/convey"
)

var (
	testCurve   = model.CostCurve{Base: 13_723_086, Exponent: 1.23, BaseRating: 76}
	testBudgets = model.TierBudgets{FirstXI: 1_000_000_000, Bench: 400_000_000, Reserves: 100_000_000}
)

func lookupFrom(players ...model.Player) budget.PlayerLookup {
	byID := make(map[int]model.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	return func(id int) (model.Player, bool) {
		p, ok := byID[id]
		return p, ok
	}
}

func TestValidateAdd(t *testing.T) {
	Convey("Given an empty squad", t, func() {
		striker := model.Player{ID: 10, Overall: 88, Position: "ST"}
		lookup := lookupFrom(striker)

		Convey("When adding into a valid free slot", func() {
			entry, rej := roster.ValidateAdd(nil, lookup, model.TierFirstXI, 9, striker, testCurve, testBudgets)

			Convey("Then the add passes and the entry is shaped for insertion", func() {
				So(rej, ShouldBeNil)
				So(entry.PlayerID, ShouldEqual, 10)
				So(entry.Tier, ShouldEqual, model.TierFirstXI)
				So(entry.SlotIndex, ShouldEqual, 9)
				So(entry.ID, ShouldBeEmpty)
			})
		})

		Convey("When the slot index is outside the tier range", func() {
			_, rej := roster.ValidateAdd(nil, lookup, model.TierBench, 7, striker, testCurve, testBudgets)

			Convey("Then the add is rejected with InvalidSlotIndex", func() {
				So(rej, ShouldNotBeNil)
				So(rej.Kind, ShouldEqual, roster.KindInvalidSlotIndex)
			})
		})

		Convey("When the slot index is negative", func() {
			_, rej := roster.ValidateAdd(nil, lookup, model.TierReserves, -1, striker, testCurve, testBudgets)

			So(rej, ShouldNotBeNil)
			So(rej.Kind, ShouldEqual, roster.KindInvalidSlotIndex)
		})
	})

	Convey("Given a squad with existing entries", t, func() {
		striker := model.Player{ID: 10, Overall: 88, Position: "ST"}
		keeper := model.Player{ID: 20, Overall: 82, Position: "GK"}
		lookup := lookupFrom(striker, keeper)
		entries := []model.RosterEntry{
			{ID: "e1", PlayerID: 10, Tier: model.TierFirstXI, SlotIndex: 9},
		}

		Convey("When the player is already rostered in another tier", func() {
			_, rej := roster.ValidateAdd(entries, lookup, model.TierBench, 0, striker, testCurve, testBudgets)

			Convey("Then uniqueness is enforced across tiers", func() {
				So(rej, ShouldNotBeNil)
				So(rej.Kind, ShouldEqual, roster.KindPlayerAlreadyRostered)
			})
		})

		Convey("When the target slot is occupied", func() {
			_, rej := roster.ValidateAdd(entries, lookup, model.TierFirstXI, 9, keeper, testCurve, testBudgets)

			So(rej, ShouldNotBeNil)
			So(rej.Kind, ShouldEqual, roster.KindSlotOccupied)
		})
	})

	Convey("Given a tier with a tight budget", t, func() {
		pricey := model.Player{ID: 30, Overall: 76, Position: "CB"} // costs exactly the curve base
		lookup := lookupFrom(pricey)

		Convey("When the cost would exceed the ceiling", func() {
			tight := model.TierBudgets{FirstXI: 4_000_000, Bench: 4_000_000, Reserves: 4_000_000}
			_, rej := roster.ValidateAdd(nil, lookup, model.TierBench, 0, pricey, testCurve, tight)

			Convey("Then the add is rejected with BudgetExceeded", func() {
				So(rej, ShouldNotBeNil)
				So(rej.Kind, ShouldEqual, roster.KindBudgetExceeded)
			})
		})

		Convey("When the cost lands exactly on the ceiling", func() {
			cost := pricing.Cost(76, testCurve)
			exact := model.TierBudgets{FirstXI: cost, Bench: cost, Reserves: cost}
			_, rej := roster.ValidateAdd(nil, lookup, model.TierBench, 0, pricey, testCurve, exact)

			Convey("Then equality is allowed", func() {
				So(rej, ShouldBeNil)
			})
		})
	})
}

func TestSwap(t *testing.T) {
	Convey("Given a First-XI with slots 3 and 7", t, func() {
		occupied := []model.RosterEntry{
			{ID: "e3", PlayerID: 3, Tier: model.TierFirstXI, SlotIndex: 3},
			{ID: "e7", PlayerID: 7, Tier: model.TierFirstXI, SlotIndex: 7},
			{ID: "b0", PlayerID: 9, Tier: model.TierBench, SlotIndex: 3},
		}

		Convey("When both slots are occupied", func() {
			plan, rej := roster.Swap(occupied, 3, 7)

			Convey("Then both entries move in one atomic plan", func() {
				So(rej, ShouldBeNil)
				So(plan.Move, ShouldResemble, []roster.Move{
					{EntryID: "e3", SlotIndex: 7},
					{EntryID: "e7", SlotIndex: 3},
				})
				So(plan.Remove, ShouldBeEmpty)
				So(plan.Insert, ShouldBeEmpty)
			})

			Convey("And swapping back restores the original mapping", func() {
				swapped := []model.RosterEntry{
					{ID: "e3", PlayerID: 3, Tier: model.TierFirstXI, SlotIndex: 7},
					{ID: "e7", PlayerID: 7, Tier: model.TierFirstXI, SlotIndex: 3},
				}
				back, rej := roster.Swap(swapped, 7, 3)
				So(rej, ShouldBeNil)
				So(back.Move, ShouldResemble, []roster.Move{
					{EntryID: "e3", SlotIndex: 3},
					{EntryID: "e7", SlotIndex: 7},
				})
			})
		})

		Convey("When only the source slot is occupied", func() {
			plan, rej := roster.Swap(occupied, 3, 5)

			Convey("Then the occupant relocates and the source empties", func() {
				So(rej, ShouldBeNil)
				So(plan.Move, ShouldResemble, []roster.Move{{EntryID: "e3", SlotIndex: 5}})
			})
		})

		Convey("When only the target slot is occupied", func() {
			plan, rej := roster.Swap(occupied, 5, 7)

			Convey("Then the occupant moves into the requested source slot", func() {
				So(rej, ShouldBeNil)
				So(plan.Move, ShouldResemble, []roster.Move{{EntryID: "e7", SlotIndex: 5}})
			})
		})

		Convey("When neither slot is occupied", func() {
			_, rej := roster.Swap(occupied, 4, 5)

			Convey("Then the swap is rejected with EmptySourceSlot", func() {
				So(rej, ShouldNotBeNil)
				So(rej.Kind, ShouldEqual, roster.KindEmptySourceSlot)
			})
		})

		Convey("When the indices are equal", func() {
			plan, rej := roster.Swap(occupied, 3, 3)

			Convey("Then nothing moves", func() {
				So(rej, ShouldBeNil)
				So(plan.Empty(), ShouldBeTrue)
			})
		})

		Convey("When an index is out of range", func() {
			_, rej := roster.Swap(occupied, 3, 11)

			So(rej, ShouldNotBeNil)
			So(rej.Kind, ShouldEqual, roster.KindInvalidSlotIndex)
		})

		Convey("Then bench entries on the same indices are ignored", func() {
			plan, rej := roster.Swap(occupied, 3, 5)
			So(rej, ShouldBeNil)
			for _, m := range plan.Move {
				So(m.EntryID, ShouldNotEqual, "b0")
			}
		})
	})
}

func TestChangeFormation(t *testing.T) {
	striker := model.Player{ID: 1, Overall: 88, Position: "ST"}
	stopper := model.Player{ID: 2, Overall: 84, Position: "CB"}
	sweeper := model.Player{ID: 3, Overall: 83, Position: "CB"}
	keeper := model.Player{ID: 4, Overall: 82, Position: "GK"}
	lookup := lookupFrom(striker, stopper, sweeper, keeper)

	Convey("Given a squad with no First-XI occupants", t, func() {
		entries := []model.RosterEntry{
			{ID: "b1", PlayerID: 1, Tier: model.TierBench, SlotIndex: 0},
		}

		Convey("When changing formation", func() {
			plan, rej := roster.ChangeFormation(entries, lookup, "4-4-2")

			Convey("Then only the formation name changes", func() {
				So(rej, ShouldBeNil)
				So(plan.SetFormation, ShouldEqual, "4-4-2")
				So(plan.Remove, ShouldBeEmpty)
				So(plan.Insert, ShouldBeEmpty)
			})
		})
	})

	Convey("Given First-XI occupants from a 4-3-3", t, func() {
		entries := []model.RosterEntry{
			{ID: "e1", PlayerID: 1, Tier: model.TierFirstXI, SlotIndex: 9},
			{ID: "e2", PlayerID: 2, Tier: model.TierFirstXI, SlotIndex: 2},
			{ID: "e3", PlayerID: 3, Tier: model.TierFirstXI, SlotIndex: 3},
			{ID: "e4", PlayerID: 4, Tier: model.TierFirstXI, SlotIndex: 0},
		}

		Convey("When changing to 4-4-2", func() {
			plan, rej := roster.ChangeFormation(entries, lookup, "4-4-2")

			Convey("Then every occupant is cleared and recreated", func() {
				So(rej, ShouldBeNil)
				So(plan.SetFormation, ShouldEqual, "4-4-2")
				So(plan.Remove, ShouldHaveLength, 4)
				So(plan.Insert, ShouldHaveLength, 4)
			})

			Convey("Then the striker lands on an ST slot ahead of any fallback", func() {
				byPlayer := make(map[int]int)
				for _, e := range plan.Insert {
					So(e.Tier, ShouldEqual, model.TierFirstXI)
					So(e.ID, ShouldBeEmpty)
					byPlayer[e.PlayerID] = e.SlotIndex
				}
				// 4-4-2 ST slots are 9 and 10; GK is 0; CBs are 2 and 3.
				So(byPlayer[1], ShouldBeIn, []int{9, 10})
				So(byPlayer[4], ShouldEqual, 0)
				So(byPlayer[2], ShouldBeIn, []int{2, 3})
				So(byPlayer[3], ShouldBeIn, []int{2, 3})
				So(byPlayer[2], ShouldNotEqual, byPlayer[3])
			})

			Convey("Then no two occupants share a target slot", func() {
				used := make(map[int]bool)
				for _, e := range plan.Insert {
					So(used[e.SlotIndex], ShouldBeFalse)
					used[e.SlotIndex] = true
				}
			})
		})

		Convey("When the target formation is unknown", func() {
			_, rej := roster.ChangeFormation(entries, lookup, "9-9-9")

			Convey("Then the change is rejected with UnknownFormation", func() {
				So(rej, ShouldNotBeNil)
				So(rej.Kind, ShouldEqual, roster.KindUnknownFormation)
			})
		})

		Convey("When called twice with the same snapshot", func() {
			first, _ := roster.ChangeFormation(entries, lookup, "4-4-2")
			second, _ := roster.ChangeFormation(entries, lookup, "4-4-2")

			Convey("Then the plan is deterministic", func() {
				So(second, ShouldResemble, first)
			})
		})
	})
}

func TestCheckSnapshot(t *testing.T) {
	Convey("Given snapshots in various states", t, func() {
		Convey("Then a clean snapshot passes", func() {
			err := roster.CheckSnapshot([]model.RosterEntry{
				{ID: "a", PlayerID: 1, Tier: model.TierFirstXI, SlotIndex: 0},
				{ID: "b", PlayerID: 2, Tier: model.TierBench, SlotIndex: 0},
			})
			So(err, ShouldBeNil)
		})

		Convey("Then a duplicated player is a corrupt snapshot", func() {
			err := roster.CheckSnapshot([]model.RosterEntry{
				{ID: "a", PlayerID: 1, Tier: model.TierFirstXI, SlotIndex: 0},
				{ID: "b", PlayerID: 1, Tier: model.TierBench, SlotIndex: 0},
			})
			So(errors.Is(err, roster.ErrCorruptSnapshot), ShouldBeTrue)
		})

		Convey("Then a doubly-claimed slot is a corrupt snapshot", func() {
			err := roster.CheckSnapshot([]model.RosterEntry{
				{ID: "a", PlayerID: 1, Tier: model.TierFirstXI, SlotIndex: 4},
				{ID: "b", PlayerID: 2, Tier: model.TierFirstXI, SlotIndex: 4},
			})
			So(errors.Is(err, roster.ErrCorruptSnapshot), ShouldBeTrue)
		})
	})
}
