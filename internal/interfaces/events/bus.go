package events

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Each domain event type gets its own topic, so handlers subscribe to
// exactly the events they care about.
const topicPrefix = "events."

var marshaler = cqrs.JSONMarshaler{
	GenerateName: cqrs.StructName,
}

// NewEventBus is the publishing half of the notification bus: the booking
// engine hands it BookingCreated/BookingCancelled/EventUpdated structs and it
// puts them on the wire as JSON.
func NewEventBus(
	pub message.Publisher,
	logger watermill.LoggerAdapter,
) (*cqrs.EventBus, error) {
	return cqrs.NewEventBusWithConfig(
		pub,
		cqrs.EventBusConfig{
			GeneratePublishTopic: func(params cqrs.GenerateEventPublishTopicParams) (string, error) {
				return topicPrefix + params.EventName, nil
			},
			Marshaler: marshaler,
			Logger:    logger,
		},
	)
}
