package events

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"bookings/internal/entities"
)

type AuditLog interface {
	Append(ctx context.Context, event string, data any) error
}

// The audit handlers give every domain event a durable JSON-line record.

func AuditBookingCreatedHandler(auditLog AuditLog) cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"audit_booking_created_handler",
		func(ctx context.Context, payload *entities.BookingCreated) error {
			return auditLog.Append(ctx, "booking.created", payload.Booking)
		},
	)
}

func AuditBookingCancelledHandler(auditLog AuditLog) cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"audit_booking_cancelled_handler",
		func(ctx context.Context, payload *entities.BookingCancelled) error {
			return auditLog.Append(ctx, "booking.cancelled", payload.Booking)
		},
	)
}

func AuditEventUpdatedHandler(auditLog AuditLog) cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"audit_event_updated_handler",
		func(ctx context.Context, payload *entities.EventUpdated) error {
			return auditLog.Append(ctx, "event.updated", map[string]int64{"event_id": payload.EventId})
		},
	)
}
