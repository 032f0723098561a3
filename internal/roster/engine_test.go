package roster

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/DhavalSuthar-24/league/internal/player"
	"github.com/DhavalSuthar-24/league/pkg/metrics"
)

var _ Store = (*memStore)(nil)
var _ Store = (*GormStore)(nil)

const (
	matchID uint = 1
	teamA   uint = 10
	teamB   uint = 20
)

// Players on team A: 1-5 Male, 6-7 Female, 8 Nonbinary. Team B: 21 Male,
// 22 Female.
func newLeague() *memDB {
	db := newMemDB()
	db.addMatch(matchID)
	for id := uint(1); id <= 5; id++ {
		db.addPlayer(id, teamA, player.Male)
	}
	db.addPlayer(6, teamA, player.Female)
	db.addPlayer(7, teamA, player.Female)
	db.addPlayer(8, teamA, player.Nonbinary)
	db.addPlayer(21, teamB, player.Male)
	db.addPlayer(22, teamB, player.Female)
	return db
}

func activeCount(db *memDB, g player.Gender) int {
	n := 0
	for id, on := range db.active(matchID) {
		if on && db.state.players[id].Gender == g {
			n++
		}
	}
	return n
}

func TestAddMatchPlayer(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty roster", t, func() {
		db := newLeague()
		e := NewEngine(db.store(), Config{}, nil)

		Convey("Adding a male player activates the player", func() {
			entry, err := e.AddMatchPlayer(ctx, matchID, 1)
			So(err, ShouldBeNil)
			So(entry.Active, ShouldBeTrue)
			So(entry.PlayerID, ShouldEqual, uint(1))

			roster, err := e.GetMatchRoster(ctx, matchID)
			So(err, ShouldBeNil)
			So(roster, ShouldHaveLength, 1)
			So(roster[0].PlayerID, ShouldEqual, uint(1))
			So(roster[0].Active, ShouldBeTrue)
		})

		Convey("Adding the same player twice is rejected", func() {
			_, err := e.AddMatchPlayer(ctx, matchID, 1)
			So(err, ShouldBeNil)
			_, err = e.AddMatchPlayer(ctx, matchID, 1)
			So(errors.Is(err, ErrAlreadyInMatch), ShouldBeTrue)
			So(db.entryCount(matchID), ShouldEqual, 1)
		})

		Convey("An unknown player is not found", func() {
			_, err := e.AddMatchPlayer(ctx, matchID, 99)
			var nf *NotFoundError
			So(errors.As(err, &nf), ShouldBeTrue)
			So(nf.Resource, ShouldEqual, "Player")
			So(nf.ID, ShouldEqual, uint(99))
		})

		Convey("An unknown match is not found", func() {
			_, err := e.AddMatchPlayer(ctx, 42, 1)
			var nf *NotFoundError
			So(errors.As(err, &nf), ShouldBeTrue)
			So(nf.Resource, ShouldEqual, "Match")
		})
	})

	Convey("Given four active male players", t, func() {
		db := newLeague()
		e := NewEngine(db.store(), Config{}, nil)
		for id := uint(1); id <= 4; id++ {
			_, err := e.AddMatchPlayer(ctx, matchID, id)
			So(err, ShouldBeNil)
		}

		Convey("A fifth male player exceeds the quota", func() {
			_, err := e.AddMatchPlayer(ctx, matchID, 5)
			So(errors.Is(err, ErrQuotaExceeded), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "gender quota exceeded")
			So(db.entryCount(matchID), ShouldEqual, 4)
		})

		Convey("Other genders are still accepted", func() {
			_, err := e.AddMatchPlayer(ctx, matchID, 6)
			So(err, ShouldBeNil)
			_, err = e.AddMatchPlayer(ctx, matchID, 8)
			So(err, ShouldBeNil)
			So(activeCount(db, player.Male), ShouldEqual, 4)
		})
	})

	Convey("Given a player who was substituted out", t, func() {
		db := newLeague()
		e := NewEngine(db.store(), Config{}, nil)
		first, err := e.AddMatchPlayer(ctx, matchID, 1)
		So(err, ShouldBeNil)
		So(e.SubstitutePlayer(ctx, matchID, 1, 2), ShouldBeNil)

		Convey("Adding the player again reactivates the existing entry", func() {
			entry, err := e.AddMatchPlayer(ctx, matchID, 1)
			So(err, ShouldBeNil)
			So(entry.ID, ShouldEqual, first.ID)
			So(entry.Active, ShouldBeTrue)
			So(db.entryCount(matchID), ShouldEqual, 2)
		})

		Convey("Reactivation still respects the quota", func() {
			for id := uint(3); id <= 5; id++ {
				_, err := e.AddMatchPlayer(ctx, matchID, id)
				So(err, ShouldBeNil)
			}
			_, err := e.AddMatchPlayer(ctx, matchID, 1)
			So(errors.Is(err, ErrQuotaExceeded), ShouldBeTrue)
			So(db.active(matchID)[1], ShouldBeFalse)
		})
	})
}

func TestSubstitutePlayer(t *testing.T) {
	ctx := context.Background()

	Convey("Given player 1 active on team A", t, func() {
		db := newLeague()
		e := NewEngine(db.store(), Config{}, nil)
		_, err := e.AddMatchPlayer(ctx, matchID, 1)
		So(err, ShouldBeNil)

		Convey("Substituting a player from another team is rejected", func() {
			err := e.SubstitutePlayer(ctx, matchID, 1, 21)
			So(errors.Is(err, ErrNotSameTeam), ShouldBeTrue)
			So(db.active(matchID), ShouldResemble, map[uint]bool{1: true})
		})

		Convey("A teammate takes their place and the swap can be reversed", func() {
			So(e.SubstitutePlayer(ctx, matchID, 1, 3), ShouldBeNil)
			So(db.active(matchID), ShouldResemble, map[uint]bool{1: false, 3: true})

			So(e.SubstitutePlayer(ctx, matchID, 3, 1), ShouldBeNil)
			So(db.active(matchID), ShouldResemble, map[uint]bool{1: true, 3: false})
			So(db.entryCount(matchID), ShouldEqual, 2)
		})

		Convey("Repeating a substitution is rejected", func() {
			So(e.SubstitutePlayer(ctx, matchID, 1, 3), ShouldBeNil)
			err := e.SubstitutePlayer(ctx, matchID, 1, 3)
			So(errors.Is(err, ErrSubstitutedInactive), ShouldBeTrue)
		})

		Convey("An already active incoming player is rejected", func() {
			_, err := e.AddMatchPlayer(ctx, matchID, 2)
			So(err, ShouldBeNil)
			err = e.SubstitutePlayer(ctx, matchID, 1, 2)
			So(errors.Is(err, ErrSubstitutingActive), ShouldBeTrue)
			So(db.active(matchID), ShouldResemble, map[uint]bool{1: true, 2: true})
		})

		Convey("A player outside the roster cannot be substituted out", func() {
			err := e.SubstitutePlayer(ctx, matchID, 4, 2)
			So(errors.Is(err, ErrNotInMatch), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "player does not play in this match")
		})

		Convey("An unknown player is not found", func() {
			err := e.SubstitutePlayer(ctx, matchID, 99, 2)
			var nf *NotFoundError
			So(errors.As(err, &nf), ShouldBeTrue)
		})

		Convey("Substituting a player for themselves is rejected", func() {
			err := e.SubstitutePlayer(ctx, matchID, 1, 1)
			var ve *ValidationError
			So(errors.As(err, &ve), ShouldBeTrue)
			So(db.active(matchID), ShouldResemble, map[uint]bool{1: true})
		})
	})

	Convey("Given four active men and one active woman", t, func() {
		db := newLeague()
		e := NewEngine(db.store(), Config{}, nil)
		for _, id := range []uint{1, 2, 3, 4, 6} {
			_, err := e.AddMatchPlayer(ctx, matchID, id)
			So(err, ShouldBeNil)
		}

		Convey("Swapping the woman for a fifth man exceeds the quota and changes nothing", func() {
			err := e.SubstitutePlayer(ctx, matchID, 6, 5)
			So(errors.Is(err, ErrQuotaExceeded), ShouldBeTrue)
			So(db.active(matchID)[6], ShouldBeTrue)
			_, present := db.active(matchID)[5]
			So(present, ShouldBeFalse)
		})

		Convey("Swapping a man for another man keeps the count at four", func() {
			So(e.SubstitutePlayer(ctx, matchID, 1, 5), ShouldBeNil)
			So(activeCount(db, player.Male), ShouldEqual, 4)
		})

		Convey("With player 1 benched", func() {
			So(e.SubstitutePlayer(ctx, matchID, 1, 5), ShouldBeNil)

			Convey("reactivating player 1 for the woman skips the quota by default", func() {
				So(e.SubstitutePlayer(ctx, matchID, 6, 1), ShouldBeNil)
				So(activeCount(db, player.Male), ShouldEqual, 5)
			})

			Convey("reactivation is quota checked when configured", func() {
				strict := NewEngine(db.store(), Config{QuotaOnReactivate: true}, nil)
				err := strict.SubstitutePlayer(ctx, matchID, 6, 1)
				So(errors.Is(err, ErrQuotaExceeded), ShouldBeTrue)
				So(activeCount(db, player.Male), ShouldEqual, 4)
				So(db.active(matchID)[6], ShouldBeTrue)
			})
		})
	})

	Convey("Given a store that fails while inserting the incoming player", t, func() {
		db := newLeague()
		e := NewEngine(db.store(), Config{}, nil)
		_, err := e.AddMatchPlayer(ctx, matchID, 1)
		So(err, ShouldBeNil)
		db.failOn("insert_entry", errors.New("disk full"))

		Convey("The outgoing player stays active and the error is a storage error", func() {
			err := e.SubstitutePlayer(ctx, matchID, 1, 2)
			var se *StorageError
			So(errors.As(err, &se), ShouldBeTrue)
			So(se.Op, ShouldEqual, "insert roster entry")
			So(db.active(matchID), ShouldResemble, map[uint]bool{1: true})
		})
	})

	Convey("Given a store whose commit fails", t, func() {
		db := newLeague()
		e := NewEngine(db.store(), Config{}, nil)
		_, err := e.AddMatchPlayer(ctx, matchID, 1)
		So(err, ShouldBeNil)
		db.failOn("commit", errors.New("connection reset"))

		Convey("The failure is reported as a storage error", func() {
			err := e.SubstitutePlayer(ctx, matchID, 1, 2)
			var se *StorageError
			So(errors.As(err, &se), ShouldBeTrue)
			So(se.Op, ShouldEqual, "substitute")
			So(db.active(matchID), ShouldResemble, map[uint]bool{1: true})
		})
	})
}

func TestSubstitutionLedger(t *testing.T) {
	ctx := context.Background()

	Convey("Given player 1 active", t, func() {
		db := newLeague()
		e := NewEngine(db.store(), Config{}, nil)
		_, err := e.AddMatchPlayer(ctx, matchID, 1)
		So(err, ShouldBeNil)

		Convey("A valid substitution is recorded", func() {
			rec, err := e.AddSubstitution(ctx, matchID, 1, 2, "001500")
			So(err, ShouldBeNil)
			So(rec.ID, ShouldBeGreaterThan, uint(0))
			So(rec.Time, ShouldEqual, "001500")
			So(db.ledger(), ShouldHaveLength, 1)

			view, err := e.GetSubstitution(ctx, rec.ID)
			So(err, ShouldBeNil)
			So(view.SubstitutedPlayerName, ShouldEqual, "player-1")
			So(view.SubstitutingPlayerName, ShouldEqual, "player-2")

			subs, err := e.ListSubstitutions(ctx, matchID)
			So(err, ShouldBeNil)
			So(subs, ShouldHaveLength, 1)
		})

		Convey("A rejected substitution leaves no ledger row", func() {
			_, err := e.AddSubstitution(ctx, matchID, 1, 21, "001500")
			So(errors.Is(err, ErrNotSameTeam), ShouldBeTrue)
			So(db.ledger(), ShouldBeEmpty)
		})

		Convey("A failed ledger write undoes the roster change", func() {
			db.failOn("insert_substitution", errors.New("disk full"))
			_, err := e.AddSubstitution(ctx, matchID, 1, 2, "001500")
			var se *StorageError
			So(errors.As(err, &se), ShouldBeTrue)
			So(db.active(matchID), ShouldResemble, map[uint]bool{1: true})
		})

		Convey("A malformed time is rejected before touching the roster", func() {
			_, err := e.AddSubstitution(ctx, matchID, 1, 2, "25:00")
			So(errors.Is(err, ErrInvalidTime), ShouldBeTrue)
			_, err = e.AddSubstitution(ctx, matchID, 1, 2, "256000")
			So(errors.Is(err, ErrInvalidTime), ShouldBeTrue)
			So(db.active(matchID), ShouldResemble, map[uint]bool{1: true})
		})

		Convey("Given a recorded substitution", func() {
			rec, err := e.AddSubstitution(ctx, matchID, 1, 2, "001500")
			So(err, ShouldBeNil)

			Convey("Editing it with the same pair re-validates and fails", func() {
				_, err := e.EditSubstitution(ctx, rec.ID, matchID, 1, 2, "002000")
				So(errors.Is(err, ErrSubstitutedInactive), ShouldBeTrue)
				So(db.ledger()[0].Time, ShouldEqual, "001500")
			})

			Convey("Editing it with a new valid pair performs that swap and overwrites the row", func() {
				edited, err := e.EditSubstitution(ctx, rec.ID, matchID, 2, 3, "002000")
				So(err, ShouldBeNil)
				So(edited.ID, ShouldEqual, rec.ID)
				So(edited.SubstitutedPlayerID, ShouldEqual, uint(2))
				So(edited.SubstitutingPlayerID, ShouldEqual, uint(3))
				So(db.ledger(), ShouldHaveLength, 1)
				So(db.ledger()[0].Time, ShouldEqual, "002000")
				So(db.active(matchID), ShouldResemble, map[uint]bool{1: false, 2: false, 3: true})
			})

			Convey("Editing an unknown substitution is not found", func() {
				_, err := e.EditSubstitution(ctx, 77, matchID, 2, 3, "002000")
				var nf *NotFoundError
				So(errors.As(err, &nf), ShouldBeTrue)
				So(nf.Resource, ShouldEqual, "Substitution")
			})
		})

		Convey("Looking up an unknown substitution is not found", func() {
			_, err := e.GetSubstitution(ctx, 5)
			var nf *NotFoundError
			So(errors.As(err, &nf), ShouldBeTrue)
		})
	})
}

func TestRosterReads(t *testing.T) {
	ctx := context.Background()

	Convey("Given a roster with a few entries", t, func() {
		db := newLeague()
		e := NewEngine(db.store(), Config{}, nil)
		for _, id := range []uint{6, 1, 8} {
			_, err := e.AddMatchPlayer(ctx, matchID, id)
			So(err, ShouldBeNil)
		}

		Convey("Reading it twice gives identical results ordered by entry", func() {
			first, err := e.GetMatchRoster(ctx, matchID)
			So(err, ShouldBeNil)
			second, err := e.GetMatchRoster(ctx, matchID)
			So(err, ShouldBeNil)
			So(second, ShouldResemble, first)
			So(first[0].PlayerID, ShouldEqual, uint(6))
			So(first[2].PlayerID, ShouldEqual, uint(8))
		})

		Convey("An unknown match is not found", func() {
			_, err := e.GetMatchRoster(ctx, 42)
			var nf *NotFoundError
			So(errors.As(err, &nf), ShouldBeTrue)
			_, err = e.ListSubstitutions(ctx, 42)
			So(errors.As(err, &nf), ShouldBeTrue)
		})

		Convey("A failing read is a storage error", func() {
			db.failOn("list_entries", errors.New("timeout"))
			_, err := e.GetMatchRoster(ctx, matchID)
			var se *StorageError
			So(errors.As(err, &se), ShouldBeTrue)
		})
	})
}

func TestConcurrentMutations(t *testing.T) {
	ctx := context.Background()

	Convey("Given many concurrent additions of male players", t, func() {
		db := newMemDB()
		db.readDelay = 2 * time.Millisecond
		db.addMatch(matchID)
		for id := uint(1); id <= 20; id++ {
			db.addPlayer(id, teamA, player.Male)
		}
		e := NewEngine(db.store(), Config{}, nil)

		var wg sync.WaitGroup
		for id := uint(1); id <= 20; id++ {
			wg.Add(1)
			go func(id uint) {
				defer wg.Done()
				_, _ = e.AddMatchPlayer(ctx, matchID, id)
			}(id)
		}
		wg.Wait()

		Convey("Exactly four end up active", func() {
			So(activeCount(db, player.Male), ShouldEqual, 4)
			So(e.locks.size(), ShouldEqual, 0)
		})
	})

	Convey("Given three active men and two active women", t, func() {
		db := newLeague()
		db.readDelay = 5 * time.Millisecond
		e := NewEngine(db.store(), Config{}, nil)
		for _, id := range []uint{1, 2, 3, 6, 7} {
			_, err := e.AddMatchPlayer(ctx, matchID, id)
			So(err, ShouldBeNil)
		}

		Convey("Two concurrent swaps of a woman for a man cannot both pass the quota", func() {
			swaps := [][2]uint{{6, 4}, {7, 5}}
			errs := make([]error, len(swaps))
			var wg sync.WaitGroup
			for i, sw := range swaps {
				wg.Add(1)
				go func(i int, out, in uint) {
					defer wg.Done()
					errs[i] = e.SubstitutePlayer(ctx, matchID, out, in)
				}(i, sw[0], sw[1])
			}
			wg.Wait()

			rejected := 0
			for _, err := range errs {
				if err != nil {
					So(errors.Is(err, ErrQuotaExceeded), ShouldBeTrue)
					rejected++
				}
			}
			So(rejected, ShouldEqual, 1)
			So(activeCount(db, player.Male), ShouldEqual, 4)
			So(activeCount(db, player.Female), ShouldEqual, 1)
		})
	})
}

func TestEngineMetrics(t *testing.T) {
	ctx := context.Background()

	Convey("Given an engine with a metrics manager", t, func() {
		db := newLeague()
		m := metrics.NewManager()
		e := NewEngine(db.store(), Config{MaxPerGender: 1}, m)

		_, err := e.AddMatchPlayer(ctx, matchID, 1)
		So(err, ShouldBeNil)
		_, err = e.AddMatchPlayer(ctx, matchID, 2)
		So(errors.Is(err, ErrQuotaExceeded), ShouldBeTrue)

		Convey("Outcomes and quota rejections are counted", func() {
			n, err := testutil.GatherAndCount(m.Registry(), "league_roster_operations_total")
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 2)
			n, err = testutil.GatherAndCount(m.Registry(), "league_roster_gender_quota_rejections_total")
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 1)
		})
	})
}
