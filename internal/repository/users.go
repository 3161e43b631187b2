package repository

import (
	"context"
	"errors"
	"sync"

	domainusers "bookings/internal/domain/users"
)

var ErrUserNotFound = errors.New("user not found")

// UsersRepo holds the caller identities resolved by the auth middleware.
// Read-only after seeding; users are owned by the auth collaborator.
type UsersRepo struct {
	mu   sync.RWMutex
	byId map[int64]domainusers.User
}

func NewUsersRepo() *UsersRepo {
	return &UsersRepo{
		byId: make(map[int64]domainusers.User),
	}
}

func (r *UsersRepo) Add(ctx context.Context, user domainusers.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byId[user.Id] = user

	return nil
}

func (r *UsersRepo) Get(ctx context.Context, id int64) (domainusers.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byId[id]
	if !ok {
		return domainusers.User{}, ErrUserNotFound
	}

	return user, nil
}
