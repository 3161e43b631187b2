package events

import "time"

type Event struct {
	Id               int64     `json:"id"`
	Title            string    `json:"title"`
	Date             time.Time `json:"date"`
	AvailableTickets int       `json:"available_tickets"`
}

// Patch carries the mutable Event fields; nil means "leave unchanged".
type Patch struct {
	Title            *string    `json:"title"`
	Date             *time.Time `json:"date"`
	AvailableTickets *int       `json:"available_tickets"`
}
