package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/airlabs/air-tasks/internal/domain/entity"
	"github.com/airlabs/air-tasks/internal/domain/repository"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (user_id, title, description, due_date, priority, completed)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, t.UserID, t.Title, t.Description, t.DueDate, t.Priority, t.Completed)

	return row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*entity.Task, error) {
	t := &entity.Task{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, title, description, due_date, priority, completed, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`, id)

	if err := scanTask(row, t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return t, nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, userID int64) ([]entity.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, title, description, due_date, priority, completed, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]entity.Task, 0)
	for rows.Next() {
		var t entity.Task
		if err := scanTask(rows, &t); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) Update(ctx context.Context, t *entity.Task) error {
	t.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE tasks
		SET title = $1, description = $2, due_date = $3, priority = $4, completed = $5, updated_at = $6
		WHERE id = $7
	`, t.Title, t.Description, t.DueDate, t.Priority, t.Completed, t.UpdatedAt, t.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanTask(row pgx.Row, t *entity.Task) error {
	return row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.DueDate,
		&t.Priority, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
