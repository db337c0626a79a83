package core

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store owns the canonical collection of tasks and categories. Every
// mutation persists the new collection before replacing the in-memory one,
// so a failed write leaves prior state observable. After each persisted
// mutation the reminder schedule is reconciled; reminder failures are
// logged and never fail the mutation.
type Store struct {
	log       *slog.Logger
	storage   Storage
	reminders *Scheduler

	mu         sync.Mutex
	tasks      []Task
	categories []string
}

func NewStore(log *slog.Logger, storage Storage, reminders *Scheduler) *Store {
	return &Store{
		log:       log,
		storage:   storage,
		reminders: reminders,
	}
}

// Load reads persisted state. Absent records initialize to defaults. A
// corrupt record also falls back to defaults, but the condition is
// surfaced so the caller can report it; the store stays usable either way.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var corrupt error

	tasks, err := s.storage.LoadTasks(ctx)
	switch {
	case err == nil:
	case isNoState(err):
		tasks = []Task{}
	case isCorrupt(err):
		s.log.Warn("persisted tasks unreadable, starting empty", "error", err)
		tasks = []Task{}
		corrupt = err
	default:
		return fmt.Errorf("load tasks: %w", err)
	}

	categories, err := s.storage.LoadCategories(ctx)
	switch {
	case err == nil:
	case isNoState(err):
		categories = slices.Clone(DefaultCategories)
	case isCorrupt(err):
		s.log.Warn("persisted categories unreadable, using defaults", "error", err)
		categories = slices.Clone(DefaultCategories)
		corrupt = err
	default:
		return fmt.Errorf("load categories: %w", err)
	}

	s.tasks = tasks
	s.categories = categories
	return corrupt
}

// AddTaskIn carries the editable fields for a new task. Title
// non-emptiness is the editing boundary's concern, not the store's.
type AddTaskIn struct {
	Title           string
	Description     string
	Category        string
	DueDate         *time.Time
	ReminderEnabled bool
}

func (s *Store) AddTask(ctx context.Context, in AddTaskIn) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.Contains(s.categories, in.Category) {
		return Task{}, ErrCategoryNotFound
	}

	t := Task{
		ID:              uuid.NewString(),
		Title:           in.Title,
		Description:     in.Description,
		Category:        in.Category,
		DueDate:         cloneTime(in.DueDate),
		Completed:       false,
		CreatedAt:       time.Now(),
		ReminderEnabled: in.ReminderEnabled,
	}

	next := append(slices.Clone(s.tasks), t)
	if err := s.storage.SaveTasks(ctx, next); err != nil {
		return Task{}, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	s.tasks = next

	s.reconcile(ctx, t)
	return t, nil
}

// TaskPatch applies over an existing task with shallow-merge semantics:
// nil fields are left unchanged. A set DueDate with a zero time clears the
// due date. CompletedAt is never patched directly; it is recomputed
// whenever the Completed field is present, even if the value is unchanged.
type TaskPatch struct {
	Title           *string
	Description     *string
	Category        *string
	DueDate         *time.Time
	Completed       *bool
	ReminderEnabled *bool
}

func (s *Store) UpdateTask(ctx context.Context, id string, p TaskPatch) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
	if i < 0 {
		return Task{}, ErrTaskNotFound
	}

	cur := s.tasks[i]
	cur.DueDate = cloneTime(cur.DueDate)
	cur.CompletedAt = cloneTime(cur.CompletedAt)

	if p.Title != nil {
		cur.Title = *p.Title
	}
	if p.Description != nil {
		cur.Description = *p.Description
	}
	if p.Category != nil {
		if !slices.Contains(s.categories, *p.Category) {
			return Task{}, ErrCategoryNotFound
		}
		cur.Category = *p.Category
	}
	if p.DueDate != nil {
		if p.DueDate.IsZero() {
			cur.DueDate = nil
		} else {
			due := *p.DueDate
			cur.DueDate = &due
		}
	}
	if p.ReminderEnabled != nil {
		cur.ReminderEnabled = *p.ReminderEnabled
	}
	if p.Completed != nil {
		cur.Completed = *p.Completed
		if cur.Completed {
			now := time.Now()
			cur.CompletedAt = &now
		} else {
			cur.CompletedAt = nil
		}
	}

	next := slices.Clone(s.tasks)
	next[i] = cur
	if err := s.storage.SaveTasks(ctx, next); err != nil {
		return Task{}, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	s.tasks = next

	s.reconcile(ctx, cur)
	return cur, nil
}

// DeleteTask removes the task with the given id. An unknown id is a no-op,
// not an error; any pending reminder is dropped either way.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(s.tasks), func(t Task) bool { return t.ID == id })
	if len(next) != len(s.tasks) {
		if err := s.storage.SaveTasks(ctx, next); err != nil {
			return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
		}
		s.tasks = next
	}

	s.reminders.Cancel(ctx, id)
	return nil
}

func (s *Store) ToggleCompletion(ctx context.Context, id string) (Task, error) {
	s.mu.Lock()
	i := slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return Task{}, ErrTaskNotFound
	}
	completed := !s.tasks[i].Completed
	s.mu.Unlock()

	return s.UpdateTask(ctx, id, TaskPatch{Completed: &completed})
}

// ClearCompleted removes every completed task in one persisted step and
// cancels their reminders. Either all of them are removed or none are.
func (s *Store) ClearCompleted(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed []string
	next := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.Completed {
			removed = append(removed, t.ID)
			continue
		}
		next = append(next, t)
	}
	if len(removed) == 0 {
		return 0, nil
	}

	if err := s.storage.SaveTasks(ctx, next); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	s.tasks = next

	for _, id := range removed {
		s.reminders.Cancel(ctx, id)
	}
	return len(removed), nil
}

// AddCategory appends a new category. An exact duplicate is a no-op.
func (s *Store) AddCategory(ctx context.Context, name string) error {
	if name == "" {
		return ErrCategoryInvalidArgs
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.categories, name) {
		return nil
	}

	next := append(slices.Clone(s.categories), name)
	if err := s.storage.SaveCategories(ctx, next); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	s.categories = next
	return nil
}

// Tasks returns a snapshot of the task sequence in insertion order.
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.tasks)
}

// Categories returns a snapshot of the category set in insertion order.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.categories)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.storage.Ping(ctx)
}

// ResyncReminders reconciles every task against the reminder service.
// Called once after Load when the reminder backend does not itself survive
// process restarts.
func (s *Store) ResyncReminders(ctx context.Context) {
	for _, t := range s.Tasks() {
		s.reconcile(ctx, t)
	}
}

func (s *Store) reconcile(ctx context.Context, t Task) {
	if err := s.reminders.Reconcile(ctx, t); err != nil {
		s.log.Warn("reminder not scheduled", "task_id", t.ID, "error", err)
	}
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
