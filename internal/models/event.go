package models

import "time"

// StatusUpcoming is the status applied on update when the caller omits one.
const StatusUpcoming = "upcoming"

type Event struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"not null" json:"title"`
	EventDate      time.Time `gorm:"not null;index" json:"event_date"`
	Description    string    `json:"description"`
	EventType      string    `json:"event_type"`
	Thumbnail      string    `json:"thumbnail"`
	Location       string    `json:"location"`
	EventDetails   string    `json:"event_details"`
	OrganizerName  string    `json:"organizer_name"`
	OrganizerEmail string    `gorm:"index" json:"organizer_email"`
	OrganizerPhoto string    `json:"organizer_photo"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// JoinedEvent records a user's registration for an event. There is no unique
// index on (event_id, user_email); uniqueness is checked before insert, so
// two concurrent joins for the same pair can both land.
type JoinedEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uint      `gorm:"not null;index" json:"event_id"`
	UserEmail string    `gorm:"not null;index" json:"user_email"`
	JoinedAt  time.Time `json:"joined_at"`
}
