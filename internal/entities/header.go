package entities

import (
	"time"

	"github.com/google/uuid"
)

type EventHeader struct {
	Id          string    `json:"id"`
	PublishedAt time.Time `json:"published_at"`
}

func NewEventHeader() EventHeader {
	return EventHeader{
		Id:          uuid.NewString(),
		PublishedAt: time.Now().UTC(),
	}
}
