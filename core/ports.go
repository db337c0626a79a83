package core

import (
	"context"
	"time"
)

// Storage persists the two canonical records (tasks, categories) under
// stable keys. Loads return ErrNoSavedState when no record exists yet and
// an error wrapping ErrCorruptState when a record cannot be decoded.
type Storage interface {
	Ping(ctx context.Context) error

	LoadTasks(ctx context.Context) ([]Task, error)
	SaveTasks(ctx context.Context, tasks []Task) error

	LoadCategories(ctx context.Context) ([]string, error)
	SaveCategories(ctx context.Context, categories []string) error
}

// ReminderService schedules one-shot triggers with an external alerting
// facility. At most one trigger exists per key; Cancel of an unknown key is
// a no-op. Delivery is best effort, fire-and-forget.
type ReminderService interface {
	Schedule(ctx context.Context, key string, at time.Time, p ReminderPayload) error
	Cancel(ctx context.Context, key string) error
}
