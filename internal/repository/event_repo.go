package repository

import (
	"context"
	"time"

	"github.com/eventhub/events-api/internal/models"
	"gorm.io/gorm"
)

// mutableEventFields are replaced wholesale on update, zero values included.
var mutableEventFields = []string{
	"title", "description", "event_details", "thumbnail", "event_type",
	"location", "event_date", "organizer_name", "organizer_email",
	"organizer_photo", "status",
}

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindAll(ctx context.Context) ([]models.Event, error)
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Event, error)
	FindUpcoming(ctx context.Context, from time.Time) ([]models.Event, error)
	FindByOrganizer(ctx context.Context, email string) ([]models.Event, error)
	Update(ctx context.Context, id uint, event *models.Event) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindAll(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var events []models.Event
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindUpcoming(ctx context.Context, from time.Time) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Where("event_date >= ?", from).
		Order("event_date ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindByOrganizer(ctx context.Context, email string) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Where("organizer_email = ?", email).
		Order("event_date ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Update replaces the mutable fields and reports how many rows changed.
// An unknown id is not an error; the caller inspects the count.
func (r *eventRepository) Update(ctx context.Context, id uint, event *models.Event) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", id).
		Select(mutableEventFields).
		Updates(event)
	return res.RowsAffected, res.Error
}

func (r *eventRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Event{}, id)
	return res.RowsAffected, res.Error
}
