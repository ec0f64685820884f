package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventhub/events-api/internal/models"
	"github.com/eventhub/events-api/internal/repository"
	"github.com/eventhub/events-api/pkg/logger"
	"github.com/eventhub/events-api/pkg/rabbitmq"
	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type EventService interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, id uint) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListUpcomingEvents(ctx context.Context) ([]models.Event, error)
	ListEventsByOrganizer(ctx context.Context, email string) ([]models.Event, error)
	UpdateEvent(ctx context.Context, id uint, event *models.Event) (int64, error)
	DeleteEvent(ctx context.Context, id uint) (int64, error)
}

type eventService struct {
	eventRepo  repository.EventRepository
	joinedRepo repository.JoinedEventRepository
	publisher  *rabbitmq.Publisher
}

func NewEventService(eventRepo repository.EventRepository, joinedRepo repository.JoinedEventRepository, publisher *rabbitmq.Publisher) EventService {
	return &eventService{
		eventRepo:  eventRepo,
		joinedRepo: joinedRepo,
		publisher:  publisher,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *models.Event) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, rabbitmq.RouteEventCreated, event)
	}

	return nil
}

func (s *eventService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.eventRepo.FindAll(ctx)
}

func (s *eventService) ListUpcomingEvents(ctx context.Context) ([]models.Event, error) {
	return s.eventRepo.FindUpcoming(ctx, time.Now().UTC())
}

func (s *eventService) ListEventsByOrganizer(ctx context.Context, email string) ([]models.Event, error) {
	return s.eventRepo.FindByOrganizer(ctx, email)
}

// UpdateEvent replaces the mutable fields, defaulting status to "upcoming"
// when the caller omits it. The modified-row count is returned as-is; an
// unknown id simply reports zero.
func (s *eventService) UpdateEvent(ctx context.Context, id uint, event *models.Event) (int64, error) {
	if event.Status == "" {
		event.Status = models.StatusUpcoming
	}

	modified, err := s.eventRepo.Update(ctx, id, event)
	if err != nil {
		return 0, fmt.Errorf("update event: %w", err)
	}

	if modified > 0 && s.publisher != nil {
		_ = s.publisher.Publish(ctx, rabbitmq.RouteEventUpdated, map[string]any{"id": id})
	}

	return modified, nil
}

// DeleteEvent removes the event and then its join records. The two deletes
// are sequential calls against the store, not a transaction; a cascade
// failure after the event is gone is logged, not surfaced.
func (s *eventService) DeleteEvent(ctx context.Context, id uint) (int64, error) {
	deleted, err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete event: %w", err)
	}
	if deleted == 0 {
		return 0, ErrEventNotFound
	}

	if _, err := s.joinedRepo.DeleteByEventID(ctx, id); err != nil {
		logger.Logger.Error().Err(err).Uint("event_id", id).Msg("cascade delete of joined events failed")
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, rabbitmq.RouteEventDeleted, map[string]any{"id": id})
	}

	return deleted, nil
}
