package users

import (
	"context"
	"errors"
)

// Store errors. Callers branch on these with errors.Is; everything else from a
// Store is an infrastructure failure.
var (
	// ErrNotFound is returned when no record matches a lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate is returned when a create would violate the username or
	// email uniqueness constraint.
	ErrDuplicate = errors.New("username or email already exists")
)

// Store is the persistence boundary for user records. Uniqueness of username
// and email and atomicity of create/delete are the store's responsibility; the
// operations above it take no locks.
type Store interface {
	// Create persists user, filling in its generated ID and timestamps.
	Create(ctx context.Context, user *User) error
	// FindByAccount returns the record whose username or email equals account.
	FindByAccount(ctx context.Context, account string) (*User, error)
	// FindByID returns the record with the given id.
	FindByID(ctx context.Context, id string) (*User, error)
	// FindAll returns every record in stored order.
	FindAll(ctx context.Context) ([]User, error)
	// DeleteByID removes the record with the given id, returning how many
	// records were removed. Deleting a missing id is not an error.
	DeleteByID(ctx context.Context, id string) (int64, error)
}
