package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookings/internal/domain"
	domainbookings "bookings/internal/domain/bookings"
)

func TestBookingsRepo_IdsNotReusedAfterRemove(t *testing.T) {
	repo := NewBookingsRepo()
	ctx := context.Background()

	first, err := repo.Create(ctx, domainbookings.Booking{EventId: 1, CustomerId: 2})
	require.NoError(t, err)
	require.Equal(t, int64(1), first.Id)

	_, err = repo.Remove(ctx, first.Id)
	require.NoError(t, err)

	// A naive len+1 scheme would hand out ID 1 again here.
	second, err := repo.Create(ctx, domainbookings.Booking{EventId: 1, CustomerId: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Id)
}

func TestBookingsRepo_RemoveReturnsRow(t *testing.T) {
	repo := NewBookingsRepo()
	ctx := context.Background()

	booking, err := repo.Create(ctx, domainbookings.Booking{EventId: 7, CustomerId: 2})
	require.NoError(t, err)

	removed, err := repo.Remove(ctx, booking.Id)
	require.NoError(t, err)
	assert.Equal(t, booking, removed)

	_, err = repo.Get(ctx, booking.Id)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingsRepo_RemoveUnknown(t *testing.T) {
	repo := NewBookingsRepo()

	_, err := repo.Remove(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingsRepo_ListOrderedById(t *testing.T) {
	repo := NewBookingsRepo()
	ctx := context.Background()

	for i := int64(2); i <= 4; i++ {
		_, err := repo.Create(ctx, domainbookings.Booking{EventId: 1, CustomerId: i})
		require.NoError(t, err)
	}

	bookings, err := repo.List(ctx)
	require.NoError(t, err)

	require.Len(t, bookings, 3)
	assert.Equal(t, int64(1), bookings[0].Id)
	assert.Equal(t, int64(3), bookings[2].Id)
}

func TestBookingsRepo_FindByEvent(t *testing.T) {
	repo := NewBookingsRepo()
	ctx := context.Background()

	for _, b := range []domainbookings.Booking{
		{EventId: 1, CustomerId: 2},
		{EventId: 2, CustomerId: 2},
		{EventId: 1, CustomerId: 3},
	} {
		_, err := repo.Create(ctx, b)
		require.NoError(t, err)
	}

	found, err := repo.FindByEvent(ctx, 1)
	require.NoError(t, err)

	require.Len(t, found, 2)
	assert.Equal(t, int64(2), found[0].CustomerId)
	assert.Equal(t, int64(3), found[1].CustomerId)
}
