package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airlabs/air-tasks/internal/domain/entity"
	"github.com/airlabs/air-tasks/pkg/apperr"
)

func newQueryService(tasks ...entity.Task) *TaskService {
	users := newFakeUserRepo(entity.User{ID: 1, Email: "a@b.c", Name: "a"})
	return NewTaskService(newFakeTaskRepo(tasks...), users, nil, nil)
}

func TestListTasks_SortOrder(t *testing.T) {
	// due dates [2025-01-01, none, 2024-06-01] with priorities [low, high, high]
	svc := newQueryService(
		entity.Task{ID: 1, UserID: 1, Title: "later", DueDate: datePtr(2025, 1, 1), Priority: entity.PriorityLow},
		entity.Task{ID: 2, UserID: 1, Title: "no due date", Priority: entity.PriorityHigh},
		entity.Task{ID: 3, UserID: 1, Title: "sooner", DueDate: datePtr(2024, 6, 1), Priority: entity.PriorityHigh},
	)

	got, err := svc.ListTasks(context.Background(), ListTasksInput{OwnerID: 1})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "sooner", got[0].Title)
	assert.Equal(t, "later", got[1].Title)
	assert.Equal(t, "no due date", got[2].Title)
}

func TestListTasks_PriorityRankWithinEqualDueDates(t *testing.T) {
	due := datePtr(2025, 5, 5)
	svc := newQueryService(
		entity.Task{ID: 1, UserID: 1, Title: "low", DueDate: due, Priority: entity.PriorityLow},
		entity.Task{ID: 2, UserID: 1, Title: "weird", DueDate: due, Priority: entity.Priority("urgent")},
		entity.Task{ID: 3, UserID: 1, Title: "high", DueDate: due, Priority: entity.PriorityHigh},
		entity.Task{ID: 4, UserID: 1, Title: "medium", DueDate: due, Priority: entity.PriorityMedium},
	)

	got, err := svc.ListTasks(context.Background(), ListTasksInput{OwnerID: 1})
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "high", got[0].Title)
	assert.Equal(t, "medium", got[1].Title)
	assert.Equal(t, "low", got[2].Title)
	assert.Equal(t, "weird", got[3].Title)
}

func TestListTasks_CompletedFilter(t *testing.T) {
	svc := newQueryService(
		entity.Task{ID: 1, UserID: 1, Title: "done", Priority: entity.PriorityMedium, Completed: true},
		entity.Task{ID: 2, UserID: 1, Title: "open", Priority: entity.PriorityMedium},
	)

	got, err := svc.ListTasks(context.Background(), ListTasksInput{OwnerID: 1, Completed: "true"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "done", got[0].Title)

	got, err = svc.ListTasks(context.Background(), ListTasksInput{OwnerID: 1, Completed: "FALSE"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "open", got[0].Title)

	// invalid values are silently ignored, not rejected
	got, err = svc.ListTasks(context.Background(), ListTasksInput{OwnerID: 1, Completed: "maybe"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListTasks_PriorityFilter(t *testing.T) {
	svc := newQueryService(
		entity.Task{ID: 1, UserID: 1, Title: "h", Priority: entity.PriorityHigh},
		entity.Task{ID: 2, UserID: 1, Title: "l", Priority: entity.PriorityLow},
	)

	got, err := svc.ListTasks(context.Background(), ListTasksInput{OwnerID: 1, Priority: "high"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "h", got[0].Title)

	got, err = svc.ListTasks(context.Background(), ListTasksInput{OwnerID: 1, Priority: "urgent"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListTasks_SearchFilter(t *testing.T) {
	svc := newQueryService(
		entity.Task{ID: 1, UserID: 1, Title: "Buy Groceries", Priority: entity.PriorityMedium},
		entity.Task{ID: 2, UserID: 1, Title: "other", Description: "grocery list for the week", Priority: entity.PriorityMedium},
		entity.Task{ID: 3, UserID: 1, Title: "unrelated", Priority: entity.PriorityMedium},
	)

	got, err := svc.ListTasks(context.Background(), ListTasksInput{OwnerID: 1, Search: "GROCER"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListTasks_OnlyOwnersTasks(t *testing.T) {
	svc := newQueryService(
		entity.Task{ID: 1, UserID: 1, Title: "mine", Priority: entity.PriorityMedium},
		entity.Task{ID: 2, UserID: 2, Title: "theirs", Priority: entity.PriorityMedium},
	)

	got, err := svc.ListTasks(context.Background(), ListTasksInput{OwnerID: 1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "mine", got[0].Title)
}

func TestListTasks_MissingOwner(t *testing.T) {
	svc := newQueryService()
	_, err := svc.ListTasks(context.Background(), ListTasksInput{})
	assert.Equal(t, apperr.KindMissingParameter, apperr.KindOf(err))
}

func TestListTasks_UnknownOwner(t *testing.T) {
	svc := newQueryService()
	_, err := svc.ListTasks(context.Background(), ListTasksInput{OwnerID: 42})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
