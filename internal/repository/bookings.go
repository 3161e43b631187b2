package repository

import (
	"context"
	"sort"
	"sync"

	"bookings/internal/domain"
	domainbookings "bookings/internal/domain/bookings"
)

// BookingsRepo is an in-memory booking table. Cancellations hard-delete rows;
// the monotonic counter keeps freed IDs from ever being reassigned.
type BookingsRepo struct {
	mu     sync.RWMutex
	byId   map[int64]domainbookings.Booking
	nextId int64
}

func NewBookingsRepo() *BookingsRepo {
	return &BookingsRepo{
		byId: make(map[int64]domainbookings.Booking),
	}
}

func (r *BookingsRepo) Create(ctx context.Context, booking domainbookings.Booking) (domainbookings.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextId++
	booking.Id = r.nextId
	r.byId[booking.Id] = booking

	return booking, nil
}

func (r *BookingsRepo) Get(ctx context.Context, id int64) (domainbookings.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.byId[id]
	if !ok {
		return domainbookings.Booking{}, domain.ErrBookingNotFound
	}

	return booking, nil
}

// Remove deletes the booking and returns the removed row.
func (r *BookingsRepo) Remove(ctx context.Context, id int64) (domainbookings.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.byId[id]
	if !ok {
		return domainbookings.Booking{}, domain.ErrBookingNotFound
	}
	delete(r.byId, id)

	return booking, nil
}

func (r *BookingsRepo) List(ctx context.Context) ([]domainbookings.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedLocked(func(domainbookings.Booking) bool { return true }), nil
}

func (r *BookingsRepo) FindByEvent(ctx context.Context, eventId int64) ([]domainbookings.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedLocked(func(b domainbookings.Booking) bool { return b.EventId == eventId }), nil
}

func (r *BookingsRepo) sortedLocked(keep func(domainbookings.Booking) bool) []domainbookings.Booking {
	result := make([]domainbookings.Booking, 0, len(r.byId))
	for _, booking := range r.byId {
		if keep(booking) {
			result = append(result, booking)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })

	return result
}
