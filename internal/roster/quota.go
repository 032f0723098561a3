package roster

import (
	"context"

	"github.com/DhavalSuthar-24/league/internal/player"
)

// tally counts active players per gender.
type tally map[player.Gender]int

func newTally() tally {
	t := make(tally, len(player.Genders))
	for _, g := range player.Genders {
		t[g] = 0
	}
	return t
}

// over returns the first gender whose count exceeds max, in display order.
func (t tally) over(max int) (player.Gender, bool) {
	for _, g := range player.Genders {
		if t[g] > max {
			return g, true
		}
	}
	for g, n := range t {
		if n > max {
			return g, true
		}
	}
	return "", false
}

// checkQuota reports whether activating in (and deactivating out, when
// non-nil) keeps every gender at or below the configured maximum. The active
// snapshot is read inside the caller's transaction, before any write.
func (e *Engine) checkQuota(ctx context.Context, tx Store, matchID uint, in, out *PlayerInfo) error {
	t := newTally()
	if out != nil {
		t[out.Gender]--
	}
	t[in.Gender]++

	active, err := tx.ActiveGenders(ctx, matchID)
	if err != nil {
		return &StorageError{Op: "read active genders", Err: err}
	}
	for _, g := range active {
		t[g]++
	}

	if g, exceeded := t.over(e.cfg.MaxPerGender); exceeded {
		e.metrics.IncQuotaRejection(string(g))
		return ErrQuotaExceeded
	}
	return nil
}

// checkSameTeam loads both players and rejects the pair when their teams
// differ.
func checkSameTeam(ctx context.Context, tx Store, outID, inID uint) (out, in *PlayerInfo, err error) {
	if out, err = loadPlayer(ctx, tx, outID); err != nil {
		return nil, nil, err
	}
	if in, err = loadPlayer(ctx, tx, inID); err != nil {
		return nil, nil, err
	}
	if out.TeamID != in.TeamID {
		return nil, nil, ErrNotSameTeam
	}
	return out, in, nil
}

func loadPlayer(ctx context.Context, tx Store, id uint) (*PlayerInfo, error) {
	p, err := tx.GetPlayer(ctx, id)
	if err != nil {
		return nil, &StorageError{Op: "read player", Err: err}
	}
	if p == nil {
		return nil, &NotFoundError{Resource: "Player", ID: id}
	}
	return p, nil
}
