package match

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// MatchRepository defines methods to interact with match data.
type MatchRepository interface {
	CreateMatch(ctx context.Context, m *Match) error
	GetMatchByID(ctx context.Context, id uint) (*Match, error)
	GetMatchSummary(ctx context.Context, id uint) (*Summary, error)
	GetMatches(ctx context.Context, page, limit int) ([]Match, int64, error)
	UpdateMatch(ctx context.Context, m *Match) error
	DeleteMatch(ctx context.Context, id uint) error

	// Season views
	GetSeasonMatches(ctx context.Context, seasonID uint) ([]Summary, error)
	GetSeasonHighscore(ctx context.Context, seasonID uint) ([]TeamScore, error)
}

// GormMatchRepository implements MatchRepository using GORM.
type GormMatchRepository struct {
	db *gorm.DB
}

func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

func (r *GormMatchRepository) CreateMatch(ctx context.Context, m *Match) error {
	return r.db.WithContext(ctx).Omit("Season", "TeamA", "TeamB").Create(m).Error
}

func (r *GormMatchRepository) GetMatchByID(ctx context.Context, id uint) (*Match, error) {
	var m Match
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// summaryQuery selects matches joined with both team names.
func (r *GormMatchRepository) summaryQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("matches m").
		Select(`m.id, m.date, m.start_time, m.end_time, m.season_id,
			m.team_a_id, ta.name AS team_a_name, m.team_b_id, tb.name AS team_b_name,
			m.team_a_points, m.team_b_points`).
		Joins("JOIN teams ta ON ta.id = m.team_a_id").
		Joins("JOIN teams tb ON tb.id = m.team_b_id").
		Where("m.deleted_at IS NULL")
}

func (r *GormMatchRepository) GetMatchSummary(ctx context.Context, id uint) (*Summary, error) {
	var rows []Summary
	if err := r.summaryQuery(ctx).Where("m.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *GormMatchRepository) GetMatches(ctx context.Context, page, limit int) ([]Match, int64, error) {
	var matches []Match
	var total int64

	query := r.db.WithContext(ctx).Model(&Match{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if err := query.Order("date asc, start_time asc").Offset(offset).Limit(limit).Find(&matches).Error; err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

func (r *GormMatchRepository) UpdateMatch(ctx context.Context, m *Match) error {
	return r.db.WithContext(ctx).Omit("Season", "TeamA", "TeamB").Save(m).Error
}

func (r *GormMatchRepository) DeleteMatch(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Match{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormMatchRepository) GetSeasonMatches(ctx context.Context, seasonID uint) ([]Summary, error) {
	var rows []Summary
	err := r.summaryQuery(ctx).
		Where("m.season_id = ?", seasonID).
		Order("m.date asc, m.start_time asc").
		Scan(&rows).Error
	return rows, err
}

// GetSeasonHighscore sums every team's points over the season, counting the
// team whether it played as team A or team B.
func (r *GormMatchRepository) GetSeasonHighscore(ctx context.Context, seasonID uint) ([]TeamScore, error) {
	var rows []TeamScore
	err := r.db.WithContext(ctx).Raw(`
		SELECT team_id, team_name, SUM(points) AS team_score FROM (
			SELECT t.id AS team_id, t.name AS team_name, m.team_a_points AS points
			FROM matches m JOIN teams t ON t.id = m.team_a_id
			WHERE m.season_id = @season AND m.deleted_at IS NULL
			UNION ALL
			SELECT t.id AS team_id, t.name AS team_name, m.team_b_points AS points
			FROM matches m JOIN teams t ON t.id = m.team_b_id
			WHERE m.season_id = @season AND m.deleted_at IS NULL
		) scores
		GROUP BY team_id, team_name
		ORDER BY team_score DESC, team_name ASC`,
		map[string]interface{}{"season": seasonID},
	).Scan(&rows).Error
	return rows, err
}
