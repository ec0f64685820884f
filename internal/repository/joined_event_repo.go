package repository

import (
	"context"

	"github.com/eventhub/events-api/internal/models"
	"gorm.io/gorm"
)

type JoinedEventRepository interface {
	Create(ctx context.Context, joined *models.JoinedEvent) error
	FindByUserEmail(ctx context.Context, email string) ([]models.JoinedEvent, error)
	FindByEventAndEmail(ctx context.Context, eventID uint, email string) (*models.JoinedEvent, error)
	DeleteByID(ctx context.Context, id uint) (int64, error)
	DeleteByEventID(ctx context.Context, eventID uint) (int64, error)
}

type joinedEventRepository struct {
	db *gorm.DB
}

func NewJoinedEventRepository(db *gorm.DB) JoinedEventRepository {
	return &joinedEventRepository{db: db}
}

func (r *joinedEventRepository) Create(ctx context.Context, joined *models.JoinedEvent) error {
	return r.db.WithContext(ctx).Create(joined).Error
}

func (r *joinedEventRepository) FindByUserEmail(ctx context.Context, email string) ([]models.JoinedEvent, error) {
	var joins []models.JoinedEvent
	err := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Find(&joins).Error
	if err != nil {
		return nil, err
	}
	return joins, nil
}

func (r *joinedEventRepository) FindByEventAndEmail(ctx context.Context, eventID uint, email string) (*models.JoinedEvent, error) {
	var joined models.JoinedEvent
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_email = ?", eventID, email).
		First(&joined).Error
	if err != nil {
		return nil, err
	}
	return &joined, nil
}

func (r *joinedEventRepository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.JoinedEvent{}, id)
	return res.RowsAffected, res.Error
}

// DeleteByEventID backs the cascade when an event is removed.
func (r *joinedEventRepository) DeleteByEventID(ctx context.Context, eventID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Delete(&models.JoinedEvent{})
	return res.RowsAffected, res.Error
}
