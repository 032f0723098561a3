// Package roster keeps every match's active roster consistent: the team
// membership rule, the per-gender quota and the substitution ledger.
package roster

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/DhavalSuthar-24/league/pkg/logger"
	"github.com/DhavalSuthar-24/league/pkg/metrics"
	"github.com/DhavalSuthar-24/league/pkg/validator"
)

// DefaultMaxPerGender is the number of concurrently active players of one
// gender a match allows.
const DefaultMaxPerGender = 4

type Config struct {
	MaxPerGender int
	// QuotaOnReactivate runs the quota check when a substitution brings back
	// a player who already has an inactive entry. Off by default.
	QuotaOnReactivate bool
}

// Engine applies roster mutations. Mutations on the same match are
// serialized in process and run in one store transaction that holds a row
// lock on the match, so the quota check and the writes see the same roster.
type Engine struct {
	store   Store
	cfg     Config
	metrics *metrics.Manager
	locks   *matchLocks
}

// NewEngine builds an engine. m may be nil.
func NewEngine(store Store, cfg Config, m *metrics.Manager) *Engine {
	if cfg.MaxPerGender <= 0 {
		cfg.MaxPerGender = DefaultMaxPerGender
	}
	return &Engine{store: store, cfg: cfg, metrics: m, locks: newMatchLocks()}
}

// AddMatchPlayer activates playerID in matchID. A player with an inactive
// entry is reactivated in place; an active one is rejected.
func (e *Engine) AddMatchPlayer(ctx context.Context, matchID, playerID uint) (*Entry, error) {
	var added *Entry
	err := e.mutate(ctx, "add_player", matchID, func(tx Store) error {
		p, err := loadPlayer(ctx, tx, playerID)
		if err != nil {
			return err
		}
		entries, err := tx.ListEntries(ctx, matchID)
		if err != nil {
			return &StorageError{Op: "list roster", Err: err}
		}
		existing := findEntry(entries, playerID)
		if existing != nil && existing.Active {
			return ErrAlreadyInMatch
		}
		if err := e.checkQuota(ctx, tx, matchID, p, nil); err != nil {
			return err
		}

		if existing == nil {
			entry := &Entry{MatchID: matchID, PlayerID: playerID, Active: true}
			if err := tx.InsertEntry(ctx, entry); err != nil {
				return &StorageError{Op: "insert roster entry", Err: err}
			}
			added = entry
			return nil
		}
		if err := tx.SetActive(ctx, matchID, playerID, true); err != nil {
			return &StorageError{Op: "activate player", Err: err}
		}
		existing.Active = true
		added = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

// SubstitutePlayer deactivates outID and activates inID in matchID.
func (e *Engine) SubstitutePlayer(ctx context.Context, matchID, outID, inID uint) error {
	return e.mutate(ctx, "substitute", matchID, func(tx Store) error {
		return e.substitute(ctx, tx, matchID, outID, inID)
	})
}

// AddSubstitution performs the substitution and records it in the ledger.
func (e *Engine) AddSubstitution(ctx context.Context, matchID, outID, inID uint, at string) (*Substitution, error) {
	if !validTime(at) {
		return nil, ErrInvalidTime
	}
	var rec *Substitution
	err := e.mutate(ctx, "add_substitution", matchID, func(tx Store) error {
		if err := e.substitute(ctx, tx, matchID, outID, inID); err != nil {
			return err
		}
		rec = &Substitution{
			MatchID:              matchID,
			Time:                 at,
			SubstitutedPlayerID:  outID,
			SubstitutingPlayerID: inID,
		}
		if err := tx.InsertSubstitution(ctx, rec); err != nil {
			return &StorageError{Op: "insert substitution", Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// EditSubstitution re-runs the substitution for the revised pair as if it
// were new, then overwrites the ledger row. Earlier roster changes made by
// the original record are left as they are.
func (e *Engine) EditSubstitution(ctx context.Context, substitutionID, matchID, outID, inID uint, at string) (*Substitution, error) {
	if !validTime(at) {
		return nil, ErrInvalidTime
	}
	var rec *Substitution
	err := e.mutate(ctx, "edit_substitution", matchID, func(tx Store) error {
		existing, err := tx.GetSubstitution(ctx, substitutionID)
		if err != nil {
			return &StorageError{Op: "read substitution", Err: err}
		}
		if existing == nil {
			return &NotFoundError{Resource: "Substitution", ID: substitutionID}
		}
		if err := e.substitute(ctx, tx, matchID, outID, inID); err != nil {
			return err
		}
		existing.MatchID = matchID
		existing.Time = at
		existing.SubstitutedPlayerID = outID
		existing.SubstitutingPlayerID = inID
		if err := tx.UpdateSubstitution(ctx, existing); err != nil {
			return &StorageError{Op: "update substitution", Err: err}
		}
		rec = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// GetMatchRoster returns every entry of the match ordered by entry id.
func (e *Engine) GetMatchRoster(ctx context.Context, matchID uint) ([]Entry, error) {
	if err := e.requireMatch(ctx, matchID); err != nil {
		return nil, err
	}
	entries, err := e.store.ListEntries(ctx, matchID)
	if err != nil {
		return nil, &StorageError{Op: "list roster", Err: err}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

// ListSubstitutions lists the ledger of one match, or of all matches when
// matchID is 0.
func (e *Engine) ListSubstitutions(ctx context.Context, matchID uint) ([]SubstitutionView, error) {
	if matchID != 0 {
		if err := e.requireMatch(ctx, matchID); err != nil {
			return nil, err
		}
	}
	subs, err := e.store.ListSubstitutions(ctx, matchID)
	if err != nil {
		return nil, &StorageError{Op: "list substitutions", Err: err}
	}
	return subs, nil
}

func (e *Engine) GetSubstitution(ctx context.Context, id uint) (*SubstitutionView, error) {
	sub, err := e.store.GetSubstitutionView(ctx, id)
	if err != nil {
		return nil, &StorageError{Op: "read substitution", Err: err}
	}
	if sub == nil {
		return nil, &NotFoundError{Resource: "Substitution", ID: id}
	}
	return sub, nil
}

// substitute runs inside a mutation. All checks happen before the first
// write.
func (e *Engine) substitute(ctx context.Context, tx Store, matchID, outID, inID uint) error {
	out, in, err := checkSameTeam(ctx, tx, outID, inID)
	if err != nil {
		return err
	}

	entries, err := tx.ListEntries(ctx, matchID)
	if err != nil {
		return &StorageError{Op: "list roster", Err: err}
	}
	outEntry := findEntry(entries, outID)
	inEntry := findEntry(entries, inID)

	switch {
	case outEntry == nil:
		return ErrNotInMatch
	case !outEntry.Active:
		return ErrSubstitutedInactive
	case inEntry != nil && inEntry.Active:
		return ErrSubstitutingActive
	}

	if inEntry == nil || e.cfg.QuotaOnReactivate {
		if err := e.checkQuota(ctx, tx, matchID, in, out); err != nil {
			return err
		}
	}

	if err := tx.SetActive(ctx, matchID, outID, false); err != nil {
		return &StorageError{Op: "deactivate player", Err: err}
	}
	if inEntry == nil {
		if err := tx.InsertEntry(ctx, &Entry{MatchID: matchID, PlayerID: inID, Active: true}); err != nil {
			return &StorageError{Op: "insert roster entry", Err: err}
		}
		return nil
	}
	if err := tx.SetActive(ctx, matchID, inID, true); err != nil {
		return &StorageError{Op: "activate player", Err: err}
	}
	return nil
}

// mutate serializes fn against other mutations of matchID and runs it in a
// transaction that fails with NotFoundError when the match is missing.
func (e *Engine) mutate(ctx context.Context, op string, matchID uint, fn func(tx Store) error) error {
	start := time.Now()
	release := e.locks.lock(matchID)
	defer release()

	err := e.store.WithTransaction(ctx, func(tx Store) error {
		ok, err := tx.LockMatch(ctx, matchID)
		if err != nil {
			return &StorageError{Op: "lock match", Err: err}
		}
		if !ok {
			return &NotFoundError{Resource: "Match", ID: matchID}
		}
		return fn(tx)
	})
	err = classify(op, err)

	outcome := outcomeOf(err)
	e.metrics.ObserveRosterOperation(op, outcome, time.Since(start))

	log := logger.WithFields(ctx, "op", op, "match_id", matchID)
	switch outcome {
	case metrics.OutcomeOK:
		log.Debug("roster updated")
	case metrics.OutcomeError:
		log.Error("roster update failed", "error", err)
	default:
		log.Info("roster update rejected", "reason", err.Error())
	}
	return err
}

func (e *Engine) requireMatch(ctx context.Context, matchID uint) error {
	ok, err := e.store.MatchExists(ctx, matchID)
	if err != nil {
		return &StorageError{Op: "read match", Err: err}
	}
	if !ok {
		return &NotFoundError{Resource: "Match", ID: matchID}
	}
	return nil
}

// classify wraps anything that is not already a roster error, such as a
// failed commit, into a StorageError.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	var nf *NotFoundError
	var se *StorageError
	if errors.As(err, &ve) || errors.As(err, &nf) || errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

func outcomeOf(err error) string {
	var ve *ValidationError
	var nf *NotFoundError
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.As(err, &ve):
		return metrics.OutcomeRejected
	case errors.As(err, &nf):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}

func findEntry(entries []Entry, playerID uint) *Entry {
	for i := range entries {
		if entries[i].PlayerID == playerID {
			return &entries[i]
		}
	}
	return nil
}

func validTime(s string) bool {
	if len(s) != len(validator.TimeLayout) {
		return false
	}
	_, err := time.Parse(validator.TimeLayout, s)
	return err == nil
}
