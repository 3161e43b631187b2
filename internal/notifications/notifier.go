package notifications

import (
	"context"

	"github.com/rs/zerolog"

	domainbookings "bookings/internal/domain/bookings"
)

// LogNotifier stands in for a real delivery channel (email, push) and writes
// a structured log line per notice.
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendBookingConfirmation(ctx context.Context, booking domainbookings.Booking) error {
	n.logger.Info().
		Int64("booking_id", booking.Id).
		Int64("event_id", booking.EventId).
		Int64("customer_id", booking.CustomerId).
		Msg("booking confirmation sent")

	return nil
}

func (n *LogNotifier) SendEventUpdate(ctx context.Context, customerId, eventId int64) error {
	n.logger.Info().
		Int64("event_id", eventId).
		Int64("customer_id", customerId).
		Msg("event update notification sent")

	return nil
}
