package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"bookings/internal/domain"
	domainbookings "bookings/internal/domain/bookings"
	"bookings/internal/entities"
)

type BookingsRepo interface {
	Create(ctx context.Context, booking domainbookings.Booking) (domainbookings.Booking, error)
	Get(ctx context.Context, id int64) (domainbookings.Booking, error)
	Remove(ctx context.Context, id int64) (domainbookings.Booking, error)
	List(ctx context.Context) ([]domainbookings.Booking, error)
	FindByEvent(ctx context.Context, eventId int64) ([]domainbookings.Booking, error)
}

type BookingService struct {
	eventsRepo   EventsRepo
	bookingsRepo BookingsRepo
	eventBus     EventPublisher
	locks        *EventLocks
	logger       zerolog.Logger
}

func NewBookingService(
	eventsRepo EventsRepo,
	bookingsRepo BookingsRepo,
	eventBus EventPublisher,
	locks *EventLocks,
	logger zerolog.Logger,
) *BookingService {
	return &BookingService{
		eventsRepo:   eventsRepo,
		bookingsRepo: bookingsRepo,
		eventBus:     eventBus,
		locks:        locks,
		logger:       logger,
	}
}

// BookEvent checks availability, decrements inventory and creates the booking
// as one step under the event's mutation lock. Two concurrent calls for the
// same event can never both pass the availability check; calls for different
// events do not contend. Re-issuing a booking is not idempotent: every
// successful call consumes a ticket.
func (s *BookingService) BookEvent(ctx context.Context, eventId, customerId int64) (domainbookings.Booking, error) {
	unlock := s.locks.Lock(eventId)
	defer unlock()

	event, err := s.eventsRepo.Get(ctx, eventId)
	if err != nil {
		return domainbookings.Booking{}, err
	}

	if event.AvailableTickets <= 0 {
		return domainbookings.Booking{}, domain.ErrSoldOut
	}

	event.AvailableTickets--
	if _, err := s.eventsRepo.Update(ctx, event); err != nil {
		return domainbookings.Booking{}, fmt.Errorf("failed to update inventory: %w", err)
	}

	booking, err := s.bookingsRepo.Create(ctx, domainbookings.Booking{
		EventId:    eventId,
		CustomerId: customerId,
	})
	if err != nil {
		return domainbookings.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := s.eventBus.Publish(ctx, entities.BookingCreated{
		Header:  entities.NewEventHeader(),
		Booking: booking,
	}); err != nil {
		s.logger.Err(err).Int64("booking_id", booking.Id).Msg("failed to publish BookingCreated")
	}

	return booking, nil
}

// CancelBooking removes the booking and returns its ticket to the event's
// inventory under the same mutation lock BookEvent uses.
func (s *BookingService) CancelBooking(ctx context.Context, bookingId int64) error {
	booking, err := s.bookingsRepo.Get(ctx, bookingId)
	if err != nil {
		return err
	}

	unlock := s.locks.Lock(booking.EventId)
	defer unlock()

	// The booking could have been cancelled while we waited for the lock.
	booking, err = s.bookingsRepo.Remove(ctx, bookingId)
	if err != nil {
		return err
	}

	event, err := s.eventsRepo.Get(ctx, booking.EventId)
	if err != nil {
		return fmt.Errorf("failed to get event for cancelled booking: %w", err)
	}

	event.AvailableTickets++
	if _, err := s.eventsRepo.Update(ctx, event); err != nil {
		return fmt.Errorf("failed to restore inventory: %w", err)
	}

	if err := s.eventBus.Publish(ctx, entities.BookingCancelled{
		Header:  entities.NewEventHeader(),
		Booking: booking,
	}); err != nil {
		s.logger.Err(err).Int64("booking_id", booking.Id).Msg("failed to publish BookingCancelled")
	}

	return nil
}
