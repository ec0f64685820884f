package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventhub/events-api/internal/models"
	"github.com/eventhub/events-api/internal/repository"
	"github.com/eventhub/events-api/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrAlreadyJoined = errors.New("user has already joined this event")
	ErrJoinNotFound  = errors.New("joined event not found")
)

// JoinedEventDetail pairs a join record with the event it references.
type JoinedEventDetail struct {
	Join  models.JoinedEvent
	Event models.Event
}

type JoinedEventService interface {
	JoinEvent(ctx context.Context, eventID uint, userEmail string) (*models.JoinedEvent, error)
	ListJoinedByUser(ctx context.Context, email string) ([]JoinedEventDetail, error)
	RemoveJoinedEvent(ctx context.Context, id uint) error
}

type joinedEventService struct {
	joinedRepo repository.JoinedEventRepository
	eventRepo  repository.EventRepository
	publisher  *rabbitmq.Publisher
}

func NewJoinedEventService(joinedRepo repository.JoinedEventRepository, eventRepo repository.EventRepository, publisher *rabbitmq.Publisher) JoinedEventService {
	return &joinedEventService{
		joinedRepo: joinedRepo,
		eventRepo:  eventRepo,
		publisher:  publisher,
	}
}

// JoinEvent inserts a join record unless the (event, email) pair already has
// one. The existence check and insert are two store calls with no lock
// between them, so concurrent joins for the same pair can both succeed.
func (s *joinedEventService) JoinEvent(ctx context.Context, eventID uint, userEmail string) (*models.JoinedEvent, error) {
	_, err := s.joinedRepo.FindByEventAndEmail(ctx, eventID, userEmail)
	if err == nil {
		return nil, ErrAlreadyJoined
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing join: %w", err)
	}

	joined := &models.JoinedEvent{
		EventID:   eventID,
		UserEmail: userEmail,
		JoinedAt:  time.Now().UTC(),
	}
	if err := s.joinedRepo.Create(ctx, joined); err != nil {
		return nil, fmt.Errorf("create joined event: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, rabbitmq.RouteJoinCreated, joined)
	}

	return joined, nil
}

// ListJoinedByUser fetches the user's join records, then the referenced
// events in one batch, and matches them up. Joins whose event is gone are
// dropped.
func (s *joinedEventService) ListJoinedByUser(ctx context.Context, email string) ([]JoinedEventDetail, error) {
	joins, err := s.joinedRepo.FindByUserEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list joined events: %w", err)
	}
	if len(joins) == 0 {
		return []JoinedEventDetail{}, nil
	}

	seen := make(map[uint]bool, len(joins))
	ids := make([]uint, 0, len(joins))
	for _, j := range joins {
		if !seen[j.EventID] {
			seen[j.EventID] = true
			ids = append(ids, j.EventID)
		}
	}

	events, err := s.eventRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch referenced events: %w", err)
	}

	byID := make(map[uint]models.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}

	details := make([]JoinedEventDetail, 0, len(joins))
	for _, j := range joins {
		event, ok := byID[j.EventID]
		if !ok {
			continue
		}
		details = append(details, JoinedEventDetail{Join: j, Event: event})
	}

	return details, nil
}

func (s *joinedEventService) RemoveJoinedEvent(ctx context.Context, id uint) error {
	deleted, err := s.joinedRepo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("remove joined event: %w", err)
	}
	if deleted == 0 {
		return ErrJoinNotFound
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, rabbitmq.RouteJoinRemoved, map[string]any{"id": id})
	}

	return nil
}
