// Package notify is an in-process reminder service: one pending time.Timer
// per key, firing the payload into a handler callback. It stands in for a
// platform alerting facility and keeps its best-effort contract: schedule
// and cancel never block, cancel of an unknown key is a no-op.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"task-tracker/core"
)

// Handler receives the payload of a fired reminder.
type Handler func(p core.ReminderPayload)

type Service struct {
	log     *slog.Logger
	handler Handler

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

func New(log *slog.Logger, handler Handler) *Service {
	return &Service{
		log:     log,
		handler: handler,
		timers:  make(map[string]*time.Timer),
	}
}

// Schedule arms a one-shot trigger for the key, replacing any pending one.
// A trigger time in the past is rejected.
func (s *Service) Schedule(ctx context.Context, key string, at time.Time, p core.ReminderPayload) error {
	d := time.Until(at)
	if d <= 0 {
		return fmt.Errorf("trigger time %s is in the past", at.Format(time.RFC3339))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("reminder service is closed")
	}

	if t, ok := s.timers[key]; ok {
		t.Stop()
	}
	s.timers[key] = time.AfterFunc(d, func() { s.fire(key, p) })

	s.log.Debug("reminder scheduled", "key", key, "at", at)
	return nil
}

// Cancel disarms a pending trigger for the key, if any.
func (s *Service) Cancel(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[key]; ok {
		t.Stop()
		delete(s.timers, key)
		s.log.Debug("reminder canceled", "key", key)
	}
	return nil
}

// Close disarms every pending trigger. Further Schedule calls fail.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for key, t := range s.timers {
		t.Stop()
		delete(s.timers, key)
	}
}

func (s *Service) fire(key string, p core.ReminderPayload) {
	s.mu.Lock()
	delete(s.timers, key)
	handler := s.handler
	s.mu.Unlock()

	s.log.Info("reminder fired", "key", key, "title", p.Title)
	if handler != nil {
		handler(p)
	}
}
