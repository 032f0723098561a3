package roster

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/DhavalSuthar-24/league/internal/match"
	"github.com/DhavalSuthar-24/league/internal/player"
)

// GormStore implements Store on the league database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) WithTransaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func (s *GormStore) GetPlayer(ctx context.Context, id uint) (*PlayerInfo, error) {
	var p player.Player
	err := s.db.WithContext(ctx).Select("id", "team_id", "gender").First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &PlayerInfo{ID: p.ID, TeamID: p.TeamID, Gender: p.Gender}, nil
}

func (s *GormStore) LockMatch(ctx context.Context, matchID uint) (bool, error) {
	var ids []uint
	err := s.db.WithContext(ctx).
		Model(&match.Match{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", matchID).
		Pluck("id", &ids).Error
	return len(ids) > 0, err
}

func (s *GormStore) MatchExists(ctx context.Context, matchID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&match.Match{}).Where("id = ?", matchID).Count(&count).Error
	return count > 0, err
}

func (s *GormStore) ListEntries(ctx context.Context, matchID uint) ([]Entry, error) {
	var entries []Entry
	err := s.db.WithContext(ctx).Where("match_id = ?", matchID).Order("id asc").Find(&entries).Error
	return entries, err
}

func (s *GormStore) InsertEntry(ctx context.Context, e *Entry) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(e).Error
}

func (s *GormStore) SetActive(ctx context.Context, matchID, playerID uint, active bool) error {
	res := s.db.WithContext(ctx).
		Model(&Entry{}).
		Where("match_id = ? AND player_id = ?", matchID, playerID).
		Update("active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("no roster entry for player %d in match %d", playerID, matchID)
	}
	return nil
}

func (s *GormStore) ActiveGenders(ctx context.Context, matchID uint) ([]player.Gender, error) {
	var genders []player.Gender
	err := s.db.WithContext(ctx).
		Table("match_players mp").
		Joins("JOIN players p ON p.id = mp.player_id").
		Where("mp.match_id = ? AND mp.active = ?", matchID, true).
		Pluck("p.gender", &genders).Error
	return genders, err
}

func (s *GormStore) InsertSubstitution(ctx context.Context, sub *Substitution) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(sub).Error
}

func (s *GormStore) UpdateSubstitution(ctx context.Context, sub *Substitution) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(sub).Error
}

func (s *GormStore) GetSubstitution(ctx context.Context, id uint) (*Substitution, error) {
	var sub Substitution
	if err := s.db.WithContext(ctx).First(&sub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (s *GormStore) viewQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("substitutions s").
		Select(`s.id, s.match_id, s.time, s.substituted_player_id, s.substituting_player_id,
			p1.name AS substituted_player_name, p2.name AS substituting_player_name`).
		Joins("JOIN players p1 ON p1.id = s.substituted_player_id").
		Joins("JOIN players p2 ON p2.id = s.substituting_player_id")
}

func (s *GormStore) ListSubstitutions(ctx context.Context, matchID uint) ([]SubstitutionView, error) {
	var views []SubstitutionView
	q := s.viewQuery(ctx)
	if matchID != 0 {
		q = q.Where("s.match_id = ?", matchID)
	}
	err := q.Order("s.match_id asc, s.time asc, s.id asc").Scan(&views).Error
	return views, err
}

func (s *GormStore) GetSubstitutionView(ctx context.Context, id uint) (*SubstitutionView, error) {
	var views []SubstitutionView
	if err := s.viewQuery(ctx).Where("s.id = ?", id).Limit(1).Scan(&views).Error; err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, nil
	}
	return &views[0], nil
}
