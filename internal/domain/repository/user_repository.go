package repository

import (
	"context"
	"errors"

	"github.com/airlabs/air-tasks/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned when a user insert violates the email
	// unique constraint.
	ErrEmailTaken = errors.New("email already exists")
)

// UserRepository defines user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
