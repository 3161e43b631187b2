package entities

import (
	domain "bookings/internal/domain/bookings"
)

// Domain events published on the bus. They exist only in flight; the audit
// log is their durable form.

type BookingCreated struct {
	Header  EventHeader    `json:"header"`
	Booking domain.Booking `json:"booking"`
}

type BookingCancelled struct {
	Header  EventHeader    `json:"header"`
	Booking domain.Booking `json:"booking"`
}

type EventUpdated struct {
	Header  EventHeader `json:"header"`
	EventId int64       `json:"event_id"`
}
