package roster

import (
	"context"

	"github.com/DhavalSuthar-24/league/internal/player"
)

// Store is the persistence the engine works against: the player directory,
// the roster table and the substitution ledger. Lookups return nil, nil when
// the row does not exist.
type Store interface {
	GetPlayer(ctx context.Context, id uint) (*PlayerInfo, error)

	// LockMatch takes a row lock on the match for the rest of the
	// transaction and reports whether it exists.
	LockMatch(ctx context.Context, matchID uint) (bool, error)
	MatchExists(ctx context.Context, matchID uint) (bool, error)

	ListEntries(ctx context.Context, matchID uint) ([]Entry, error)
	InsertEntry(ctx context.Context, e *Entry) error
	SetActive(ctx context.Context, matchID, playerID uint, active bool) error
	ActiveGenders(ctx context.Context, matchID uint) ([]player.Gender, error)

	InsertSubstitution(ctx context.Context, s *Substitution) error
	UpdateSubstitution(ctx context.Context, s *Substitution) error
	GetSubstitution(ctx context.Context, id uint) (*Substitution, error)
	// ListSubstitutions lists the ledger of one match, or every match when
	// matchID is 0.
	ListSubstitutions(ctx context.Context, matchID uint) ([]SubstitutionView, error)
	GetSubstitutionView(ctx context.Context, id uint) (*SubstitutionView, error)

	// WithTransaction runs fn against a Store bound to one transaction. Any
	// error returned by fn rolls everything back and is returned unchanged.
	WithTransaction(ctx context.Context, fn func(Store) error) error
}
