package events

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"bookings/internal/dispatcher"
	"bookings/internal/entities"
)

type JobScheduler interface {
	Schedule(jobs ...dispatcher.Job)
}

// SendConfirmationHandler hands the slow work off to the dispatcher; bus
// handlers must stay non-blocking.
func SendConfirmationHandler(scheduler JobScheduler) cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"send_confirmation_handler",
		func(ctx context.Context, payload *entities.BookingCreated) error {
			scheduler.Schedule(dispatcher.Job{
				Task:    dispatcher.TaskSendConfirmation,
				Booking: payload.Booking,
			})

			return nil
		},
	)
}
