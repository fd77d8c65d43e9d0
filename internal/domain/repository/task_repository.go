package repository

import (
	"context"

	"github.com/airlabs/air-tasks/internal/domain/entity"
)

// TaskRepository defines task-related database operations.
// ListByOwner returns every task owned by the given user; filtering and
// ordering are applied by the query engine in the application layer.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	GetByID(ctx context.Context, id int64) (*entity.Task, error)
	ListByOwner(ctx context.Context, userID int64) ([]entity.Task, error)
	Update(ctx context.Context, t *entity.Task) error
	Delete(ctx context.Context, id int64) error
}
