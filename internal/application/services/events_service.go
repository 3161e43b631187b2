package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"bookings/internal/domain"
	domainevents "bookings/internal/domain/events"
	"bookings/internal/entities"
)

type EventsRepo interface {
	Create(ctx context.Context, event domainevents.Event) (domainevents.Event, error)
	Get(ctx context.Context, id int64) (domainevents.Event, error)
	List(ctx context.Context) ([]domainevents.Event, error)
	Update(ctx context.Context, event domainevents.Event) (domainevents.Event, error)
}

// EventPublisher is the slice of cqrs.EventBus the engine needs.
type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}

type EventsService struct {
	eventsRepo EventsRepo
	eventBus   EventPublisher
	locks      *EventLocks
	logger     zerolog.Logger
}

func NewEventsService(
	eventsRepo EventsRepo,
	eventBus EventPublisher,
	locks *EventLocks,
	logger zerolog.Logger,
) *EventsService {
	return &EventsService{
		eventsRepo: eventsRepo,
		eventBus:   eventBus,
		locks:      locks,
		logger:     logger,
	}
}

func (s *EventsService) Create(ctx context.Context, title string, date time.Time, availableTickets int) (domainevents.Event, error) {
	if title == "" {
		return domainevents.Event{}, domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if date.IsZero() {
		return domainevents.Event{}, domain.ValidationError{Field: "date", Reason: "must be set"}
	}
	if availableTickets <= 0 {
		return domainevents.Event{}, domain.ValidationError{Field: "available_tickets", Reason: "must be positive"}
	}

	return s.eventsRepo.Create(ctx, domainevents.Event{
		Title:            title,
		Date:             date,
		AvailableTickets: availableTickets,
	})
}

// Update applies the patch under the event's mutation lock and publishes
// EventUpdated so interested customers get notified.
func (s *EventsService) Update(ctx context.Context, id int64, patch domainevents.Patch) (domainevents.Event, error) {
	if patch.AvailableTickets != nil && *patch.AvailableTickets < 0 {
		return domainevents.Event{}, domain.ValidationError{Field: "available_tickets", Reason: "must not be negative"}
	}
	if patch.Title != nil && *patch.Title == "" {
		return domainevents.Event{}, domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	event, err := s.eventsRepo.Get(ctx, id)
	if err != nil {
		return domainevents.Event{}, err
	}

	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Date != nil {
		event.Date = *patch.Date
	}
	if patch.AvailableTickets != nil {
		event.AvailableTickets = *patch.AvailableTickets
	}

	event, err = s.eventsRepo.Update(ctx, event)
	if err != nil {
		return domainevents.Event{}, fmt.Errorf("failed to update event: %w", err)
	}

	if err := s.eventBus.Publish(ctx, entities.EventUpdated{
		Header:  entities.NewEventHeader(),
		EventId: event.Id,
	}); err != nil {
		s.logger.Err(err).Int64("event_id", event.Id).Msg("failed to publish EventUpdated")
	}

	return event, nil
}

func (s *EventsService) Get(ctx context.Context, id int64) (domainevents.Event, error) {
	return s.eventsRepo.Get(ctx, id)
}

func (s *EventsService) List(ctx context.Context) ([]domainevents.Event, error) {
	return s.eventsRepo.List(ctx)
}
