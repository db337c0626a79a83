package core

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"
)

type fakeStorage struct {
	mu sync.Mutex

	tasks         []Task
	categories    []string
	hasTasks      bool
	hasCategories bool

	corruptTasks      bool
	corruptCategories bool
	failSave          error

	saveTasksCalls int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{}
}

func (f *fakeStorage) Ping(context.Context) error {
	return nil
}

func (f *fakeStorage) LoadTasks(context.Context) ([]Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.corruptTasks {
		return nil, fmt.Errorf("%w: decode tasks: unexpected end of JSON input", ErrCorruptState)
	}
	if !f.hasTasks {
		return nil, ErrNoSavedState
	}
	return slices.Clone(f.tasks), nil
}

func (f *fakeStorage) SaveTasks(_ context.Context, tasks []Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.saveTasksCalls++
	if f.failSave != nil {
		return f.failSave
	}
	f.tasks = slices.Clone(tasks)
	f.hasTasks = true
	return nil
}

func (f *fakeStorage) LoadCategories(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.corruptCategories {
		return nil, fmt.Errorf("%w: decode categories: unexpected end of JSON input", ErrCorruptState)
	}
	if !f.hasCategories {
		return nil, ErrNoSavedState
	}
	return slices.Clone(f.categories), nil
}

func (f *fakeStorage) SaveCategories(_ context.Context, categories []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failSave != nil {
		return f.failSave
	}
	f.categories = slices.Clone(categories)
	f.hasCategories = true
	return nil
}

type scheduledReminder struct {
	at      time.Time
	payload ReminderPayload
}

type fakeReminders struct {
	mu sync.Mutex

	scheduled map[string]scheduledReminder
	canceled  []string

	failSchedule error
}

func newFakeReminders() *fakeReminders {
	return &fakeReminders{scheduled: make(map[string]scheduledReminder)}
}

func (f *fakeReminders) Schedule(_ context.Context, key string, at time.Time, p ReminderPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failSchedule != nil {
		return f.failSchedule
	}
	f.scheduled[key] = scheduledReminder{at: at, payload: p}
	return nil
}

func (f *fakeReminders) Cancel(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.canceled = append(f.canceled, key)
	delete(f.scheduled, key)
	return nil
}

func (f *fakeReminders) get(key string) (scheduledReminder, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.scheduled[key]
	return r, ok
}

func (f *fakeReminders) pendingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.scheduled)
}

func (f *fakeReminders) cancelCount(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, id := range f.canceled {
		if id == key {
			n++
		}
	}
	return n
}
