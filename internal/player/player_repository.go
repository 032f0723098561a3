package player

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type PlayerRepository interface {
	CreatePlayer(ctx context.Context, p *Player) error
	GetPlayerByID(ctx context.Context, id uint) (*Player, error)
	GetPlayers(ctx context.Context, teamID uint, page, limit int) ([]Player, int64, error)
	UpdatePlayer(ctx context.Context, p *Player) error
	DeletePlayer(ctx context.Context, id uint) error
}

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) CreatePlayer(ctx context.Context, p *Player) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *playerRepository) GetPlayerByID(ctx context.Context, id uint) (*Player, error) {
	var p Player
	if err := r.db.WithContext(ctx).Preload("Team").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetPlayers lists players, optionally restricted to one team (teamID > 0).
func (r *playerRepository) GetPlayers(ctx context.Context, teamID uint, page, limit int) ([]Player, int64, error) {
	var players []Player
	var total int64

	query := r.db.WithContext(ctx).Model(&Player{})
	if teamID > 0 {
		query = query.Where("team_id = ?", teamID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	if err := query.Preload("Team").Offset(offset).Limit(limit).Order("id asc").Find(&players).Error; err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

func (r *playerRepository) UpdatePlayer(ctx context.Context, p *Player) error {
	return r.db.WithContext(ctx).Omit("Team").Save(p).Error
}

func (r *playerRepository) DeletePlayer(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Player{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
