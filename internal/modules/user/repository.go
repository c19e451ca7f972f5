package user

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an account does not exist.
var ErrNotFound = errors.New("user: not found")

// Repository defines the interface for user data storage.
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}
