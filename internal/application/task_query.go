package application

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/airlabs/air-tasks/internal/domain/entity"
	"github.com/airlabs/air-tasks/internal/domain/repository"
	"github.com/airlabs/air-tasks/pkg/apperr"
)

// ListTasksInput carries the raw filter strings from the query string.
// Unrecognized completed/priority values are ignored rather than rejected;
// that behavior is part of the API contract.
type ListTasksInput struct {
	OwnerID   int64
	Completed string
	Priority  string
	Search    string
}

// ListTasks returns the owner's tasks, filtered and ordered: tasks with a
// due date first (ascending), then by priority rank within equal due dates.
// The full result set is returned; there is no pagination.
func (s *TaskService) ListTasks(ctx context.Context, in ListTasksInput) ([]entity.Task, error) {
	if in.OwnerID <= 0 {
		return nil, apperr.New(apperr.KindMissingParameter, "user ID required")
	}
	if _, err := s.Users.GetByID(ctx, in.OwnerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "user not found")
		}
		return nil, err
	}

	tasks, err := s.Tasks.ListByOwner(ctx, in.OwnerID)
	if err != nil {
		return nil, err
	}

	tasks = filterTasks(tasks, in)
	sortTasks(tasks)
	return tasks, nil
}

func filterTasks(tasks []entity.Task, in ListTasksInput) []entity.Task {
	out := tasks[:0]

	var completed *bool
	switch strings.ToLower(in.Completed) {
	case "true":
		v := true
		completed = &v
	case "false":
		v := false
		completed = &v
	}

	priority := entity.Priority(in.Priority)
	filterPriority := priority.Valid()

	search := strings.ToLower(in.Search)

	for _, t := range tasks {
		if completed != nil && t.Completed != *completed {
			continue
		}
		if filterPriority && t.Priority != priority {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func sortTasks(tasks []entity.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := &tasks[i], &tasks[j]
		if (a.DueDate == nil) != (b.DueDate == nil) {
			return b.DueDate == nil
		}
		if a.DueDate != nil && !a.DueDate.Equal(*b.DueDate) {
			return a.DueDate.Before(*b.DueDate)
		}
		return a.Priority.Rank() < b.Priority.Rank()
	})
}
