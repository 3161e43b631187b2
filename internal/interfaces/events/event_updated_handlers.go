package events

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"bookings/internal/dispatcher"
	"bookings/internal/entities"
)

func BroadcastUpdateHandler(scheduler JobScheduler) cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"broadcast_update_handler",
		func(ctx context.Context, payload *entities.EventUpdated) error {
			scheduler.Schedule(dispatcher.Job{
				Task:    dispatcher.TaskBroadcastUpdate,
				EventId: payload.EventId,
			})

			return nil
		},
	)
}
