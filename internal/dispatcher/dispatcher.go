package dispatcher

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	domainbookings "bookings/internal/domain/bookings"
)

type Task int

const (
	TaskSendConfirmation Task = iota
	TaskBroadcastUpdate
)

// Job is one deferred unit of work. Booking is set for TaskSendConfirmation,
// EventId for TaskBroadcastUpdate.
type Job struct {
	Task    Task
	Booking domainbookings.Booking
	EventId int64
}

type Notifier interface {
	SendBookingConfirmation(ctx context.Context, booking domainbookings.Booking) error
	SendEventUpdate(ctx context.Context, customerId, eventId int64) error
}

type BookingsFinder interface {
	FindByEvent(ctx context.Context, eventId int64) ([]domainbookings.Booking, error)
}

// Dispatcher runs fire-and-forget jobs off the request path. A single worker
// goroutine drains the queue, so jobs execute in enqueue order. Failures are
// logged and dropped; nothing is retried and nothing reaches the caller that
// scheduled the job.
type Dispatcher struct {
	queue        chan Job
	pending      sync.WaitGroup
	notifier     Notifier
	bookingsRepo BookingsFinder
	logger       zerolog.Logger
}

func New(
	notifier Notifier,
	bookingsRepo BookingsFinder,
	queueSize int,
	logger zerolog.Logger,
) *Dispatcher {
	return &Dispatcher{
		queue:        make(chan Job, queueSize),
		notifier:     notifier,
		bookingsRepo: bookingsRepo,
		logger:       logger,
	}
}

func (d *Dispatcher) Schedule(jobs ...Job) {
	for _, job := range jobs {
		d.pending.Add(1)
		d.queue <- job
	}
}

// Run drains the queue until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-d.queue:
			d.execute(ctx, job)
			d.pending.Done()
		}
	}
}

// Flush blocks until every job scheduled so far has executed. Requires a
// running Run loop; meant for tests and shutdown.
func (d *Dispatcher) Flush() {
	d.pending.Wait()
}

func (d *Dispatcher) execute(ctx context.Context, job Job) {
	switch job.Task {
	case TaskSendConfirmation:
		err := d.notifier.SendBookingConfirmation(ctx, job.Booking)
		if err != nil {
			d.logger.Err(err).Int64("booking_id", job.Booking.Id).Msg("failed to send booking confirmation")
		}
	case TaskBroadcastUpdate:
		d.broadcastUpdate(ctx, job.EventId)
	default:
		d.logger.Error().Int("task", int(job.Task)).Msg("unknown dispatcher task")
	}
}

// broadcastUpdate resolves the event's active bookings at execution time, so
// bookings made after the update was scheduled are notified too.
func (d *Dispatcher) broadcastUpdate(ctx context.Context, eventId int64) {
	bookings, err := d.bookingsRepo.FindByEvent(ctx, eventId)
	if err != nil {
		d.logger.Err(err).Int64("event_id", eventId).Msg("failed to list bookings for update broadcast")
		return
	}

	for _, booking := range bookings {
		err := d.notifier.SendEventUpdate(ctx, booking.CustomerId, eventId)
		if err != nil {
			d.logger.Err(err).
				Int64("event_id", eventId).
				Int64("customer_id", booking.CustomerId).
				Msg("failed to send event update notification")
		}
	}
}
