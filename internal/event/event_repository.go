package event

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type EventRepository interface {
	Create(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id uint) (*Event, error)
	List(ctx context.Context) ([]Event, error)
	ListByMatch(ctx context.Context, matchID uint) ([]Event, error)
	Update(ctx context.Context, e *Event) error
	Delete(ctx context.Context, id uint) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Omit("Match", "Player1", "Player2").Create(e).Error
}

func (r *eventRepository) GetByID(ctx context.Context, id uint) (*Event, error) {
	var e Event
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]Event, error) {
	var out []Event
	err := r.db.WithContext(ctx).Order("id asc").Find(&out).Error
	return out, err
}

func (r *eventRepository) ListByMatch(ctx context.Context, matchID uint) ([]Event, error) {
	var out []Event
	err := r.db.WithContext(ctx).Where("match_id = ?", matchID).Order("id asc").Find(&out).Error
	return out, err
}

func (r *eventRepository) Update(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Omit("Match", "Player1", "Player2").Save(e).Error
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Event{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
