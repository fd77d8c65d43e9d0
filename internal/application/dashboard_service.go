package application

import (
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/airlabs/air-tasks/internal/domain/entity"
	"github.com/airlabs/air-tasks/internal/domain/repository"
	"github.com/airlabs/air-tasks/pkg/apperr"
)

// DashboardService derives summary statistics from an owner's stored tasks.
// It deliberately does not verify that the owner exists: an unknown id
// yields all-zero statistics, matching the list/query asymmetry the API has
// always had.
type DashboardService struct {
	Tasks  repository.TaskRepository
	Logger *logrus.Logger

	// Now is the clock used for overdue evaluation; tests override it.
	Now func() time.Time
}

func NewDashboardService(tasks repository.TaskRepository, logger *logrus.Logger) *DashboardService {
	return &DashboardService{Tasks: tasks, Logger: logger, Now: time.Now}
}

type PriorityBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type DashboardStats struct {
	TotalTasks        int               `json:"total_tasks"`
	CompletedTasks    int               `json:"completed_tasks"`
	PendingTasks      int               `json:"pending_tasks"`
	OverdueTasks      int               `json:"overdue_tasks"`
	PriorityBreakdown PriorityBreakdown `json:"priority_breakdown"`
	CompletionRate    float64           `json:"completion_rate"`
}

// Stats computes the dashboard counters fresh from storage. Overdue means
// pending with a due date strictly before the current moment. The priority
// breakdown counts pending tasks only.
func (s *DashboardService) Stats(ctx context.Context, ownerID int64) (*DashboardStats, error) {
	if ownerID <= 0 {
		return nil, apperr.New(apperr.KindMissingParameter, "user ID required")
	}

	tasks, err := s.Tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	stats := &DashboardStats{TotalTasks: len(tasks)}
	for i := range tasks {
		t := &tasks[i]
		if t.Completed {
			stats.CompletedTasks++
			continue
		}
		stats.PendingTasks++
		if t.Overdue(now) {
			stats.OverdueTasks++
		}
		switch t.Priority {
		case entity.PriorityHigh:
			stats.PriorityBreakdown.High++
		case entity.PriorityMedium:
			stats.PriorityBreakdown.Medium++
		case entity.PriorityLow:
			stats.PriorityBreakdown.Low++
		}
	}

	if stats.TotalTasks > 0 {
		rate := float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
		stats.CompletionRate = math.Round(rate*10) / 10
	}
	return stats, nil
}
