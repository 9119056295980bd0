package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okian/touchline/internal/adapters/repository"
	"github.com/okian/touchline/internal/domain/formation"
	"github.com/okian/touchline/internal/domain/model"
	"github.com/okian/touchline/internal/domain/roster"
	. "github.com/smartystreets/goconvey/convey"
)

// tickingClock returns a clock that advances one second per call so
// creation order is unambiguous.
func tickingClock() func() time.Time {
	t := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestSquadLifecycle(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty store", t, func() {
		store := repository.NewMemStore(ctx, repository.WithClock(tickingClock()))

		Convey("When creating the first squad", func() {
			squad, err := store.CreateSquad(ctx, "  First Team  ")

			Convey("Then it is trimmed, favorited, and on the default formation", func() {
				So(err, ShouldBeNil)
				So(squad.Name, ShouldEqual, "First Team")
				So(squad.Favorite, ShouldBeTrue)
				So(squad.Formation, ShouldEqual, formation.DefaultName)
				So(squad.ID, ShouldNotBeEmpty)
			})

			Convey("And a second squad is not the favorite", func() {
				second, err := store.CreateSquad(ctx, "Second Team")
				So(err, ShouldBeNil)
				So(second.Favorite, ShouldBeFalse)
				So(store.Count(ctx), ShouldEqual, 2)
			})
		})

		Convey("When creating a squad with a blank name", func() {
			_, err := store.CreateSquad(ctx, "   ")

			Convey("Then the store rejects it", func() {
				So(errors.Is(err, repository.ErrEmptyName), ShouldBeTrue)
			})
		})

		Convey("When looking up an unknown squad", func() {
			_, err := store.GetSquad(ctx, "missing")
			So(errors.Is(err, repository.ErrSquadNotFound), ShouldBeTrue)
		})
	})

	Convey("Given a store with three squads", t, func() {
		store := repository.NewMemStore(ctx, repository.WithClock(tickingClock()))
		first, _ := store.CreateSquad(ctx, "Alpha")
		second, _ := store.CreateSquad(ctx, "Beta")
		third, _ := store.CreateSquad(ctx, "Gamma")

		Convey("When listing", func() {
			squads, err := store.ListSquads(ctx)

			Convey("Then the newest squad comes first", func() {
				So(err, ShouldBeNil)
				So(squads, ShouldHaveLength, 3)
				So(squads[0].ID, ShouldEqual, third.ID)
				So(squads[2].ID, ShouldEqual, first.ID)
			})
		})

		Convey("When renaming", func() {
			So(store.RenameSquad(ctx, second.ID, " Renamed "), ShouldBeNil)
			got, _ := store.GetSquad(ctx, second.ID)
			So(got.Name, ShouldEqual, "Renamed")
		})

		Convey("When setting a new favorite", func() {
			So(store.SetFavorite(ctx, third.ID), ShouldBeNil)

			Convey("Then the favorite is exclusive", func() {
				squads, _ := store.ListSquads(ctx)
				favorites := 0
				for _, s := range squads {
					if s.Favorite {
						favorites++
						So(s.ID, ShouldEqual, third.ID)
					}
				}
				So(favorites, ShouldEqual, 1)
			})
		})

		Convey("When deleting the favorite squad", func() {
			So(store.DeleteSquad(ctx, first.ID), ShouldBeNil)

			Convey("Then the most recently created remaining squad is promoted", func() {
				got, err := store.GetSquad(ctx, third.ID)
				So(err, ShouldBeNil)
				So(got.Favorite, ShouldBeTrue)
			})
		})

		Convey("When deleting a non-favorite squad", func() {
			So(store.DeleteSquad(ctx, second.ID), ShouldBeNil)

			Convey("Then the favorite is untouched", func() {
				got, _ := store.GetSquad(ctx, first.ID)
				So(got.Favorite, ShouldBeTrue)
			})
		})
	})
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	Convey("Given a squad with roster entries", t, func() {
		store := repository.NewMemStore(ctx)
		squad, _ := store.CreateSquad(ctx, "Apply FC")

		So(store.Apply(ctx, squad.ID, roster.Plan{Insert: []model.RosterEntry{
			{PlayerID: 1, Tier: model.TierFirstXI, SlotIndex: 0},
			{PlayerID: 2, Tier: model.TierFirstXI, SlotIndex: 9},
			{PlayerID: 3, Tier: model.TierBench, SlotIndex: 0},
		}}), ShouldBeNil)

		entries, _ := store.Entries(ctx, squad.ID)
		So(entries, ShouldHaveLength, 3)

		Convey("Then inserted entries received fresh ids", func() {
			for _, e := range entries {
				So(e.ID, ShouldNotBeEmpty)
			}
		})

		Convey("Then snapshots come ordered by tier then slot", func() {
			So(entries[0].Tier, ShouldEqual, model.TierFirstXI)
			So(entries[0].SlotIndex, ShouldEqual, 0)
			So(entries[1].SlotIndex, ShouldEqual, 9)
			So(entries[2].Tier, ShouldEqual, model.TierBench)
		})

		Convey("When applying a move plan", func() {
			So(store.Apply(ctx, squad.ID, roster.Plan{Move: []roster.Move{
				{EntryID: entries[0].ID, SlotIndex: 5},
			}}), ShouldBeNil)

			got, _ := store.Entries(ctx, squad.ID)
			So(got[0].SlotIndex, ShouldEqual, 5)
			So(got[0].ID, ShouldEqual, entries[0].ID)
		})

		Convey("When applying a remove-and-reinsert plan with a formation change", func() {
			plan := roster.Plan{
				Remove: []string{entries[0].ID, entries[1].ID},
				Insert: []model.RosterEntry{
					{PlayerID: 1, Tier: model.TierFirstXI, SlotIndex: 10},
					{PlayerID: 2, Tier: model.TierFirstXI, SlotIndex: 0},
				},
				SetFormation: "4-4-2",
			}
			So(store.Apply(ctx, squad.ID, plan), ShouldBeNil)

			got, _ := store.GetSquad(ctx, squad.ID)
			So(got.Formation, ShouldEqual, "4-4-2")
			So(got.Entries, ShouldHaveLength, 3)
		})

		Convey("When a plan references an unknown entry", func() {
			plan := roster.Plan{
				Remove:       []string{entries[0].ID, "bogus"},
				SetFormation: "4-4-2",
			}
			err := store.Apply(ctx, squad.ID, plan)

			Convey("Then nothing is applied", func() {
				So(errors.Is(err, repository.ErrEntryNotFound), ShouldBeTrue)

				got, _ := store.GetSquad(ctx, squad.ID)
				So(got.Formation, ShouldEqual, formation.DefaultName)
				So(got.Entries, ShouldHaveLength, 3)
			})
		})

		Convey("When applying against an unknown squad", func() {
			err := store.Apply(ctx, "missing", roster.Plan{})
			So(errors.Is(err, repository.ErrSquadNotFound), ShouldBeTrue)
		})
	})
}

func TestSettings(t *testing.T) {
	ctx := context.Background()

	Convey("Given a fresh store", t, func() {
		store := repository.NewMemStore(ctx)

		Convey("Then it serves the default settings", func() {
			So(store.Settings(ctx), ShouldResemble, model.DefaultSettings())
		})

		Convey("When updating settings", func() {
			next := model.Settings{
				Budgets: model.TierBudgets{FirstXI: 1, Bench: 2, Reserves: 3},
				Curve:   model.CostCurve{Base: 100, Exponent: 1.5, BaseRating: 70},
			}
			So(store.UpdateSettings(ctx, next), ShouldBeNil)
			So(store.Settings(ctx), ShouldResemble, next)
		})

		Convey("When seeded through an option", func() {
			seeded := model.Settings{
				Budgets: model.TierBudgets{FirstXI: 9, Bench: 9, Reserves: 9},
				Curve:   model.CostCurve{Base: 1, Exponent: 2, BaseRating: 50},
			}
			s := repository.NewMemStore(ctx, repository.WithSettings(seeded))
			So(s.Settings(ctx), ShouldResemble, seeded)
		})
	})
}
