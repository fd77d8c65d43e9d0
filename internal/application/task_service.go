package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/airlabs/air-tasks/internal/domain/entity"
	"github.com/airlabs/air-tasks/internal/domain/repository"
	"github.com/airlabs/air-tasks/pkg/apperr"
	"github.com/airlabs/air-tasks/pkg/helpers"
)

// TaskService owns task reads and mutations. Listing semantics live in
// task_query.go.
type TaskService struct {
	Tasks  repository.TaskRepository
	Users  repository.UserRepository
	Events EventPublisher
	Logger *logrus.Logger
}

func NewTaskService(tasks repository.TaskRepository, users repository.UserRepository, events EventPublisher, logger *logrus.Logger) *TaskService {
	return &TaskService{Tasks: tasks, Users: users, Events: events, Logger: logger}
}

type CreateTaskInput struct {
	UserID      int64
	Title       string
	Description string
	DueDate     string
	Priority    string
	Completed   bool
}

// CreateTask creates a task for an existing owner. Only emptiness of the
// title is checked here; the update path is stricter and rejects
// whitespace-only titles.
func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*entity.Task, error) {
	if in.UserID <= 0 {
		return nil, apperr.New(apperr.KindMissingParameter, "user ID required")
	}
	if in.Title == "" {
		return nil, apperr.New(apperr.KindMissingParameter, "task title is required")
	}

	if _, err := s.Users.GetByID(ctx, in.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "user not found")
		}
		return nil, err
	}

	priority := entity.PriorityMedium
	if in.Priority != "" {
		priority = entity.Priority(in.Priority)
		if !priority.Valid() {
			return nil, apperr.New(apperr.KindInvalidInput, "invalid priority value")
		}
	}

	t := &entity.Task{
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    priority,
		Completed:   in.Completed,
	}
	if in.DueDate != "" {
		due, err := helpers.ParseDueDate(in.DueDate)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInvalidFormat, "invalid date format, use YYYY-MM-DD", err)
		}
		t.DueDate = &due
	}

	if err := s.Tasks.Create(ctx, t); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.Events, s.Logger, Event{
		Type:   EventTaskCreated,
		UserID: t.UserID,
		TaskID: t.ID,
		Title:  t.Title,
	})
	return t, nil
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (*entity.Task, error) {
	t, err := s.Tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "task not found")
		}
		return nil, err
	}
	return t, nil
}

// UpdateTaskInput is a partial update: only Set fields are applied.
// DueDate distinguishes present-but-null (clear) from absent (keep).
type UpdateTaskInput struct {
	Title       helpers.Optional[string]
	Description helpers.Optional[string]
	Priority    helpers.Optional[string]
	DueDate     helpers.Optional[string]
	Completed   helpers.Optional[bool]
}

func (s *TaskService) UpdateTask(ctx context.Context, id int64, in UpdateTaskInput) (*entity.Task, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title.Set {
		title := strings.TrimSpace(in.Title.Value)
		if title == "" {
			return nil, apperr.New(apperr.KindInvalidInput, "task title cannot be empty")
		}
		t.Title = title
	}
	if in.Description.Set {
		t.Description = strings.TrimSpace(in.Description.Value)
	}
	if in.Priority.Set {
		p := entity.Priority(in.Priority.Value)
		if !p.Valid() {
			return nil, apperr.New(apperr.KindInvalidInput, "invalid priority value")
		}
		t.Priority = p
	}
	if in.DueDate.Set {
		if in.DueDate.Valid && in.DueDate.Value != "" {
			due, perr := helpers.ParseDueDate(in.DueDate.Value)
			if perr != nil {
				return nil, apperr.Wrap(apperr.KindInvalidFormat, "invalid date format", perr)
			}
			t.DueDate = &due
		} else {
			t.DueDate = nil
		}
	}
	if in.Completed.Set {
		t.Completed = in.Completed.Value
	}

	if err := s.Tasks.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "task not found")
		}
		return nil, err
	}

	publishEvent(ctx, s.Events, s.Logger, Event{
		Type:   EventTaskUpdated,
		UserID: t.UserID,
		TaskID: t.ID,
		Title:  t.Title,
	})
	return t, nil
}

// ToggleTask flips the completion flag and returns the new value.
func (s *TaskService) ToggleTask(ctx context.Context, id int64) (bool, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return false, err
	}

	t.Completed = !t.Completed
	if err := s.Tasks.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, apperr.New(apperr.KindNotFound, "task not found")
		}
		return false, err
	}

	completed := t.Completed
	publishEvent(ctx, s.Events, s.Logger, Event{
		Type:      EventTaskToggled,
		UserID:    t.UserID,
		TaskID:    t.ID,
		Title:     t.Title,
		Completed: &completed,
	})
	return completed, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Tasks.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New(apperr.KindNotFound, "task not found")
		}
		return err
	}

	publishEvent(ctx, s.Events, s.Logger, Event{
		Type:   EventTaskDeleted,
		UserID: t.UserID,
		TaskID: t.ID,
		Title:  t.Title,
	})
	return nil
}
