package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Event types put on the notification queue.
const (
	EventUserRegistered = "user.registered"
	EventTaskCreated    = "task.created"
	EventTaskUpdated    = "task.updated"
	EventTaskToggled    = "task.toggled"
	EventTaskDeleted    = "task.deleted"
)

// EventPublisher is satisfied by helpers.RabbitPublisher.
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// Event is the JSON payload published for downstream consumers such as the
// notify worker. Publishing is best effort; request handling never fails
// because of it.
type Event struct {
	Type      string    `json:"type"`
	UserID    int64     `json:"user_id,omitempty"`
	TaskID    int64     `json:"task_id,omitempty"`
	Title     string    `json:"title,omitempty"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	Completed *bool     `json:"completed,omitempty"`
	At        time.Time `json:"at"`
}

func publishEvent(ctx context.Context, pub EventPublisher, logger *logrus.Logger, ev Event) {
	if pub == nil {
		return
	}
	ev.At = time.Now().UTC()
	if err := pub.PublishJSON(ctx, ev); err != nil && logger != nil {
		logger.WithError(err).WithField("event", ev.Type).Warn("event publish failed")
	}
}
