package season

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type SeasonRepository interface {
	CreateSeason(ctx context.Context, s *Season) error
	GetSeasonByID(ctx context.Context, id uint) (*Season, error)
	GetSeasons(ctx context.Context) ([]Season, error)
	UpdateSeason(ctx context.Context, s *Season) error
	DeleteSeason(ctx context.Context, id uint) error
}

type seasonRepository struct {
	db *gorm.DB
}

func NewSeasonRepository(db *gorm.DB) SeasonRepository {
	return &seasonRepository{db: db}
}

func (r *seasonRepository) CreateSeason(ctx context.Context, s *Season) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *seasonRepository) GetSeasonByID(ctx context.Context, id uint) (*Season, error) {
	var s Season
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// GetSeasons returns every season, most recent start first.
func (r *seasonRepository) GetSeasons(ctx context.Context) ([]Season, error) {
	var seasons []Season
	err := r.db.WithContext(ctx).Order("start_date desc").Find(&seasons).Error
	return seasons, err
}

func (r *seasonRepository) UpdateSeason(ctx context.Context, s *Season) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *seasonRepository) DeleteSeason(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Season{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
