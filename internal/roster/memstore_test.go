package roster

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DhavalSuthar-24/league/internal/player"
)

// memDB is an in-memory Store backend. A transaction reads a snapshot taken
// at begin and journals its writes; commit replays the journal on the
// current state. The mutex is not held while the transaction body runs, so
// concurrent transactions interleave like read-committed sessions.
type memDB struct {
	mu    sync.Mutex
	state *memState
	fail  map[string]error

	// readDelay stalls roster reads inside a transaction, widening the
	// window between the quota read and the write.
	readDelay time.Duration
}

type memState struct {
	players   map[uint]PlayerInfo
	names     map[uint]string
	matches   map[uint]bool
	entries   []Entry
	subs      []Substitution
	nextEntry uint
	nextSub   uint
}

func newMemDB() *memDB {
	return &memDB{
		state: &memState{
			players: map[uint]PlayerInfo{},
			names:   map[uint]string{},
			matches: map[uint]bool{},
		},
		fail: map[string]error{},
	}
}

func (st *memState) clone() *memState {
	cp := &memState{
		players:   make(map[uint]PlayerInfo, len(st.players)),
		names:     make(map[uint]string, len(st.names)),
		matches:   make(map[uint]bool, len(st.matches)),
		entries:   append([]Entry(nil), st.entries...),
		subs:      append([]Substitution(nil), st.subs...),
		nextEntry: st.nextEntry,
		nextSub:   st.nextSub,
	}
	for k, v := range st.players {
		cp.players[k] = v
	}
	for k, v := range st.names {
		cp.names[k] = v
	}
	for k, v := range st.matches {
		cp.matches[k] = v
	}
	return cp
}

func (db *memDB) addMatch(id uint) {
	db.state.matches[id] = true
}

func (db *memDB) addPlayer(id, teamID uint, g player.Gender) {
	db.state.players[id] = PlayerInfo{ID: id, TeamID: teamID, Gender: g}
	db.state.names[id] = fmt.Sprintf("player-%d", id)
}

// failOn makes the named store operation return err.
func (db *memDB) failOn(op string, err error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.fail[op] = err
}

func (db *memDB) store() *memStore {
	return &memStore{db: db}
}

// active returns the active flag per player of a match, read outside any
// transaction.
func (db *memDB) active(matchID uint) map[uint]bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	out := map[uint]bool{}
	for _, e := range db.state.entries {
		if e.MatchID == matchID {
			out[e.PlayerID] = e.Active
		}
	}
	return out
}

func (db *memDB) entryCount(matchID uint) int {
	db.mu.Lock()
	defer db.mu.Unlock()
	n := 0
	for _, e := range db.state.entries {
		if e.MatchID == matchID {
			n++
		}
	}
	return n
}

func (db *memDB) ledger() []Substitution {
	db.mu.Lock()
	defer db.mu.Unlock()
	return append([]Substitution(nil), db.state.subs...)
}

type memStore struct {
	db      *memDB
	tx      *memState
	journal []func(st *memState) error
}

func (s *memStore) do(op string, fn func(st *memState) error) error {
	if s.tx != nil {
		if err := s.db.fail[op]; err != nil {
			return err
		}
		return fn(s.tx)
	}
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if err := s.db.fail[op]; err != nil {
		return err
	}
	return fn(s.db.state)
}

// write applies fn like do and, inside a transaction, journals it for commit.
func (s *memStore) write(op string, fn func(st *memState) error) error {
	if err := s.do(op, fn); err != nil {
		return err
	}
	if s.tx != nil {
		s.journal = append(s.journal, fn)
	}
	return nil
}

func (s *memStore) stall() {
	if s.tx != nil && s.db.readDelay > 0 {
		time.Sleep(s.db.readDelay)
	}
}

func (s *memStore) WithTransaction(ctx context.Context, fn func(Store) error) error {
	s.db.mu.Lock()
	tx := &memStore{db: s.db, tx: s.db.state.clone()}
	s.db.mu.Unlock()

	if err := fn(tx); err != nil {
		return err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if err := s.db.fail["commit"]; err != nil {
		return err
	}
	next := s.db.state.clone()
	for _, apply := range tx.journal {
		if err := apply(next); err != nil {
			return err
		}
	}
	s.db.state = next
	return nil
}

func (s *memStore) GetPlayer(ctx context.Context, id uint) (*PlayerInfo, error) {
	var out *PlayerInfo
	err := s.do("get_player", func(st *memState) error {
		if p, ok := st.players[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

func (s *memStore) LockMatch(ctx context.Context, matchID uint) (bool, error) {
	var ok bool
	err := s.do("lock_match", func(st *memState) error {
		ok = st.matches[matchID]
		return nil
	})
	return ok, err
}

func (s *memStore) MatchExists(ctx context.Context, matchID uint) (bool, error) {
	var ok bool
	err := s.do("match_exists", func(st *memState) error {
		ok = st.matches[matchID]
		return nil
	})
	return ok, err
}

func (s *memStore) ListEntries(ctx context.Context, matchID uint) ([]Entry, error) {
	s.stall()
	var out []Entry
	err := s.do("list_entries", func(st *memState) error {
		for _, e := range st.entries {
			if e.MatchID == matchID {
				out = append(out, e)
			}
		}
		return nil
	})
	return out, err
}

func (s *memStore) InsertEntry(ctx context.Context, e *Entry) error {
	return s.write("insert_entry", func(st *memState) error {
		for _, x := range st.entries {
			if x.MatchID == e.MatchID && x.PlayerID == e.PlayerID {
				return fmt.Errorf("duplicate roster entry")
			}
		}
		st.nextEntry++
		e.ID = st.nextEntry
		st.entries = append(st.entries, *e)
		return nil
	})
}

func (s *memStore) SetActive(ctx context.Context, matchID, playerID uint, active bool) error {
	return s.write("set_active", func(st *memState) error {
		for i := range st.entries {
			if st.entries[i].MatchID == matchID && st.entries[i].PlayerID == playerID {
				st.entries[i].Active = active
				return nil
			}
		}
		return fmt.Errorf("no roster entry for player %d in match %d", playerID, matchID)
	})
}

func (s *memStore) ActiveGenders(ctx context.Context, matchID uint) ([]player.Gender, error) {
	s.stall()
	var out []player.Gender
	err := s.do("active_genders", func(st *memState) error {
		for _, e := range st.entries {
			if e.MatchID == matchID && e.Active {
				out = append(out, st.players[e.PlayerID].Gender)
			}
		}
		return nil
	})
	return out, err
}

func (s *memStore) InsertSubstitution(ctx context.Context, sub *Substitution) error {
	return s.write("insert_substitution", func(st *memState) error {
		st.nextSub++
		sub.ID = st.nextSub
		st.subs = append(st.subs, *sub)
		return nil
	})
}

func (s *memStore) UpdateSubstitution(ctx context.Context, sub *Substitution) error {
	return s.write("update_substitution", func(st *memState) error {
		for i := range st.subs {
			if st.subs[i].ID == sub.ID {
				st.subs[i] = *sub
				return nil
			}
		}
		return fmt.Errorf("substitution %d vanished", sub.ID)
	})
}

func (s *memStore) GetSubstitution(ctx context.Context, id uint) (*Substitution, error) {
	var out *Substitution
	err := s.do("get_substitution", func(st *memState) error {
		for _, sub := range st.subs {
			if sub.ID == id {
				cp := sub
				out = &cp
			}
		}
		return nil
	})
	return out, err
}

func (st *memState) view(sub Substitution) SubstitutionView {
	return SubstitutionView{
		ID:                     sub.ID,
		MatchID:                sub.MatchID,
		Time:                   sub.Time,
		SubstitutedPlayerID:    sub.SubstitutedPlayerID,
		SubstitutingPlayerID:   sub.SubstitutingPlayerID,
		SubstitutedPlayerName:  st.names[sub.SubstitutedPlayerID],
		SubstitutingPlayerName: st.names[sub.SubstitutingPlayerID],
	}
}

func (s *memStore) ListSubstitutions(ctx context.Context, matchID uint) ([]SubstitutionView, error) {
	var out []SubstitutionView
	err := s.do("list_substitutions", func(st *memState) error {
		for _, sub := range st.subs {
			if matchID == 0 || sub.MatchID == matchID {
				out = append(out, st.view(sub))
			}
		}
		return nil
	})
	return out, err
}

func (s *memStore) GetSubstitutionView(ctx context.Context, id uint) (*SubstitutionView, error) {
	var out *SubstitutionView
	err := s.do("get_substitution", func(st *memState) error {
		for _, sub := range st.subs {
			if sub.ID == id {
				v := st.view(sub)
				out = &v
			}
		}
		return nil
	})
	return out, err
}
