package dto

import (
	"fmt"
	"time"
)

type CreateEventRequest struct {
	Title          string `json:"title" validate:"required"`
	EventDate      string `json:"event_date" validate:"required"`
	Description    string `json:"description"`
	EventType      string `json:"event_type"`
	Thumbnail      string `json:"thumbnail"`
	Location       string `json:"location"`
	EventDetails   string `json:"event_details"`
	OrganizerName  string `json:"organizer_name"`
	OrganizerEmail string `json:"organizer_email"`
	OrganizerPhoto string `json:"organizer_photo"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

type UpdateEventRequest struct {
	Title          string `json:"title"`
	EventDate      string `json:"event_date"`
	Description    string `json:"description"`
	EventType      string `json:"event_type"`
	Thumbnail      string `json:"thumbnail"`
	Location       string `json:"location"`
	EventDetails   string `json:"event_details"`
	OrganizerName  string `json:"organizer_name"`
	OrganizerEmail string `json:"organizer_email"`
	OrganizerPhoto string `json:"organizer_photo"`
	Status         string `json:"status"`
}

type JoinEventRequest struct {
	EventID   string `json:"event_id" validate:"required"`
	UserEmail string `json:"user_email" validate:"required"`
}

var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseEventDate normalizes the loosely formatted timestamps clients send
// into a single UTC instant.
func ParseEventDate(s string) (time.Time, error) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
