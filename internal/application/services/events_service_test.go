package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookings/internal/domain"
	domainevents "bookings/internal/domain/events"
	"bookings/internal/entities"
)

func TestEventsService_CreateValidation(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	date := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name    string
		title   string
		date    time.Time
		tickets int
	}{
		{name: "empty title", title: "", date: date, tickets: 10},
		{name: "zero date", title: "Conf", date: time.Time{}, tickets: 10},
		{name: "zero tickets", title: "Conf", date: date, tickets: 0},
		{name: "negative tickets", title: "Conf", date: date, tickets: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.events.Create(ctx, tt.title, tt.date, tt.tickets)

			var validationErr domain.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestEventsService_Create(t *testing.T) {
	e := newEngine(t)
	date := time.Now().Add(24 * time.Hour)

	event, err := e.events.Create(context.Background(), "Conf", date, 100)
	require.NoError(t, err)

	assert.Equal(t, int64(1), event.Id)
	assert.Equal(t, "Conf", event.Title)
	assert.Equal(t, 100, event.AvailableTickets)
	assert.Empty(t, e.publisher.published(), "creation should not publish")
}

func TestEventsService_UpdatePublishesEventUpdated(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	eventId := e.mustCreateEvent(t, 10)

	title := "Conf 2.0"
	updated, err := e.events.Update(ctx, eventId, domainevents.Patch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Conf 2.0", updated.Title)
	assert.Equal(t, 10, updated.AvailableTickets)

	published := e.publisher.published()
	require.Len(t, published, 1)
	event, ok := published[0].(entities.EventUpdated)
	require.True(t, ok)
	assert.Equal(t, eventId, event.EventId)
}

func TestEventsService_UpdateUnknown(t *testing.T) {
	e := newEngine(t)

	title := "nope"
	_, err := e.events.Update(context.Background(), 42, domainevents.Patch{Title: &title})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.Empty(t, e.publisher.published())
}

func TestEventsService_UpdateValidation(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	eventId := e.mustCreateEvent(t, 10)

	negative := -1
	_, err := e.events.Update(ctx, eventId, domainevents.Patch{AvailableTickets: &negative})
	var validationErr domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	empty := ""
	_, err = e.events.Update(ctx, eventId, domainevents.Patch{Title: &empty})
	assert.ErrorAs(t, err, &validationErr)

	assert.Empty(t, e.publisher.published())
}

func TestEventsService_List(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	e.mustCreateEvent(t, 1)
	e.mustCreateEvent(t, 2)

	events, err := e.events.List(ctx)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, int64(1), events[0].Id)
	assert.Equal(t, int64(2), events[1].Id)
}
