package repository

import (
	"context"
	"sort"
	"sync"

	"bookings/internal/domain"
	domainevents "bookings/internal/domain/events"
)

// EventsRepo is an in-memory, ID-indexed event table. IDs come from a
// dedicated monotonic counter so they are never reused, regardless of
// deletions elsewhere.
type EventsRepo struct {
	mu     sync.RWMutex
	byId   map[int64]domainevents.Event
	nextId int64
}

func NewEventsRepo() *EventsRepo {
	return &EventsRepo{
		byId: make(map[int64]domainevents.Event),
	}
}

func (r *EventsRepo) Create(ctx context.Context, event domainevents.Event) (domainevents.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextId++
	event.Id = r.nextId
	r.byId[event.Id] = event

	return event, nil
}

func (r *EventsRepo) Get(ctx context.Context, id int64) (domainevents.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, ok := r.byId[id]
	if !ok {
		return domainevents.Event{}, domain.ErrEventNotFound
	}

	return event, nil
}

// List returns all events ordered by ID.
func (r *EventsRepo) List(ctx context.Context) ([]domainevents.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]domainevents.Event, 0, len(r.byId))
	for _, event := range r.byId {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Id < events[j].Id })

	return events, nil
}

func (r *EventsRepo) Update(ctx context.Context, event domainevents.Event) (domainevents.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byId[event.Id]; !ok {
		return domainevents.Event{}, domain.ErrEventNotFound
	}
	r.byId[event.Id] = event

	return event, nil
}
