//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/eventhub/events-api/internal/models"
	"github.com/eventhub/events-api/internal/repository"
	"github.com/eventhub/events-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEventService() service.EventService {
	return service.NewEventService(
		repository.NewEventRepository(testDB),
		repository.NewJoinedEventRepository(testDB),
		nil,
	)
}

func TestEventRoundTrip(t *testing.T) {
	cleanTables()
	svc := newEventService()
	ctx := context.Background()

	event := &models.Event{
		Title:          "Meetup",
		EventDate:      time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC),
		Description:    "Annual gathering",
		EventType:      "conference",
		Location:       "Dhaka",
		OrganizerName:  "Rahim",
		OrganizerEmail: "rahim@example.com",
	}
	require.NoError(t, svc.CreateEvent(ctx, event))
	require.NotZero(t, event.ID)

	got, err := svc.GetEvent(ctx, event.ID)
	require.NoError(t, err)

	assert.Equal(t, "Meetup", got.Title)
	assert.Equal(t, "Annual gathering", got.Description)
	assert.Equal(t, "rahim@example.com", got.OrganizerEmail)
	assert.True(t, got.EventDate.Equal(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, got.CreatedAt.IsZero())
}

func TestGetEvent_UnknownID(t *testing.T) {
	cleanTables()
	svc := newEventService()

	_, err := svc.GetEvent(context.Background(), 424242)

	assert.ErrorIs(t, err, service.ErrEventNotFound)
}

func TestListUpcoming_ReturnsOnlyFutureAscending(t *testing.T) {
	cleanTables()
	svc := newEventService()
	ctx := context.Background()

	past := &models.Event{Title: "Past", EventDate: time.Now().UTC().AddDate(-1, 0, 0)}
	far := &models.Event{Title: "Far", EventDate: time.Now().UTC().AddDate(2, 0, 0)}
	near := &models.Event{Title: "Near", EventDate: time.Now().UTC().AddDate(0, 1, 0)}
	for _, e := range []*models.Event{past, far, near} {
		require.NoError(t, svc.CreateEvent(ctx, e))
	}

	upcoming, err := svc.ListUpcomingEvents(ctx)
	require.NoError(t, err)

	require.Len(t, upcoming, 2)
	assert.Equal(t, "Near", upcoming[0].Title)
	assert.Equal(t, "Far", upcoming[1].Title)
}

func TestListByOrganizer(t *testing.T) {
	cleanTables()
	svc := newEventService()
	ctx := context.Background()

	mine := &models.Event{Title: "Mine", EventDate: time.Now().UTC(), OrganizerEmail: "rahim@example.com"}
	other := &models.Event{Title: "Other", EventDate: time.Now().UTC(), OrganizerEmail: "karim@example.com"}
	require.NoError(t, svc.CreateEvent(ctx, mine))
	require.NoError(t, svc.CreateEvent(ctx, other))

	events, err := svc.ListEventsByOrganizer(ctx, "rahim@example.com")
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, "Mine", events[0].Title)
}

func TestUpdateEvent_DefaultsStatus(t *testing.T) {
	cleanTables()
	svc := newEventService()
	ctx := context.Background()

	event := &models.Event{Title: "Meetup", EventDate: time.Now().UTC(), Status: "live"}
	require.NoError(t, svc.CreateEvent(ctx, event))

	modified, err := svc.UpdateEvent(ctx, event.ID, &models.Event{
		Title:     "Meetup v2",
		EventDate: event.EventDate,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), modified)

	got, err := svc.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Meetup v2", got.Title)
	assert.Equal(t, models.StatusUpcoming, got.Status)
}

func TestUpdateEvent_UnknownID_ZeroCount(t *testing.T) {
	cleanTables()
	svc := newEventService()

	modified, err := svc.UpdateEvent(context.Background(), 424242, &models.Event{Title: "x"})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), modified)
}
