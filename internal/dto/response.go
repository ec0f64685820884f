package dto

import (
	"time"

	"github.com/eventhub/events-api/internal/models"
)

type EventResponse struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	EventDate      time.Time `json:"event_date"`
	Description    string    `json:"description"`
	EventType      string    `json:"event_type"`
	Thumbnail      string    `json:"thumbnail"`
	Location       string    `json:"location"`
	EventDetails   string    `json:"event_details"`
	OrganizerName  string    `json:"organizer_name"`
	OrganizerEmail string    `json:"organizer_email"`
	OrganizerPhoto string    `json:"organizer_photo"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateEventResponse echoes the store's insert acknowledgment.
type CreateEventResponse struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   uint `json:"inserted_id"`
}

// UpdateEventResponse echoes the store's update counts; a well-formed but
// unknown id yields zero counts, not an error.
type UpdateEventResponse struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matched_count"`
	ModifiedCount int64 `json:"modified_count"`
}

type DeleteResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deleted_count"`
}

type JoinedEventResponse struct {
	ID        uint      `json:"id"`
	EventID   uint      `json:"event_id"`
	UserEmail string    `json:"user_email"`
	JoinedAt  time.Time `json:"joined_at"`
}

// JoinedEventDetailResponse is a join record with the referenced event's
// fields attached.
type JoinedEventDetailResponse struct {
	ID             uint      `json:"id"`
	EventID        uint      `json:"event_id"`
	UserEmail      string    `json:"user_email"`
	JoinedAt       time.Time `json:"joined_at"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	EventType      string    `json:"event_type"`
	Thumbnail      string    `json:"thumbnail"`
	Location       string    `json:"location"`
	EventDate      time.Time `json:"event_date"`
	EventDetails   string    `json:"event_details"`
	OrganizerName  string    `json:"organizer_name"`
	OrganizerEmail string    `json:"organizer_email"`
	OrganizerPhoto string    `json:"organizer_photo"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:             e.ID,
		Title:          e.Title,
		EventDate:      e.EventDate,
		Description:    e.Description,
		EventType:      e.EventType,
		Thumbnail:      e.Thumbnail,
		Location:       e.Location,
		EventDetails:   e.EventDetails,
		OrganizerName:  e.OrganizerName,
		OrganizerEmail: e.OrganizerEmail,
		OrganizerPhoto: e.OrganizerPhoto,
		Status:         e.Status,
		CreatedAt:      e.CreatedAt,
	}
}

func ToJoinedEventResponse(j *models.JoinedEvent) JoinedEventResponse {
	return JoinedEventResponse{
		ID:        j.ID,
		EventID:   j.EventID,
		UserEmail: j.UserEmail,
		JoinedAt:  j.JoinedAt,
	}
}

func ToJoinedEventDetailResponse(j *models.JoinedEvent, e *models.Event) JoinedEventDetailResponse {
	return JoinedEventDetailResponse{
		ID:             j.ID,
		EventID:        j.EventID,
		UserEmail:      j.UserEmail,
		JoinedAt:       j.JoinedAt,
		Title:          e.Title,
		Description:    e.Description,
		EventType:      e.EventType,
		Thumbnail:      e.Thumbnail,
		Location:       e.Location,
		EventDate:      e.EventDate,
		EventDetails:   e.EventDetails,
		OrganizerName:  e.OrganizerName,
		OrganizerEmail: e.OrganizerEmail,
		OrganizerPhoto: e.OrganizerPhoto,
	}
}
