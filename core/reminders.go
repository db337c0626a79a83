package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// reminderLead is how far ahead of the due date a reminder fires.
const reminderLead = time.Hour

// Scheduler keeps the external reminder schedule in agreement with task
// state. The protocol is always cancel, then conditionally reschedule:
// cancellation is idempotent, so no old-vs-new diffing is needed.
type Scheduler struct {
	log *slog.Logger
	svc ReminderService
}

func NewScheduler(log *slog.Logger, svc ReminderService) *Scheduler {
	return &Scheduler{log: log, svc: svc}
}

// eligible reports whether the task should currently have a reminder.
func eligible(t Task, now time.Time) bool {
	if t.DueDate == nil || t.Completed || !t.ReminderEnabled {
		return false
	}
	if !t.DueDate.After(now) {
		return false
	}
	return t.DueDate.Add(-reminderLead).After(now)
}

// Reconcile cancels any trigger keyed by the task id, then schedules a new
// one at dueDate-1h if the task is still eligible. Scheduling failures wrap
// ErrReminderScheduling; callers treat them as non-fatal.
func (s *Scheduler) Reconcile(ctx context.Context, t Task) error {
	if err := s.svc.Cancel(ctx, t.ID); err != nil {
		s.log.Warn("cancel reminder", "task_id", t.ID, "error", err)
	}

	now := time.Now()
	if !eligible(t, now) {
		return nil
	}

	at := t.DueDate.Add(-reminderLead)
	p := ReminderPayload{
		TaskID: t.ID,
		Title:  t.Title,
		Body:   fmt.Sprintf("%q is due in 1 hour", t.Title),
	}
	if err := s.svc.Schedule(ctx, t.ID, at, p); err != nil {
		return fmt.Errorf("%w: %v", ErrReminderScheduling, err)
	}
	return nil
}

// Cancel drops any pending reminder for the id. Used on deletion paths
// where no task state is left to reconcile against.
func (s *Scheduler) Cancel(ctx context.Context, id string) {
	if err := s.svc.Cancel(ctx, id); err != nil {
		s.log.Warn("cancel reminder", "task_id", id, "error", err)
	}
}
