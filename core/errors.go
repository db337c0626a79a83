package core

import "errors"

// Category errors
var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryInvalidArgs = errors.New("category invalid args")
)

// Task errors
var (
	ErrTaskNotFound = errors.New("task not found")
)

// Storage errors
var (
	// ErrNoSavedState is returned by a Storage when no record exists yet
	// under the requested key.
	ErrNoSavedState = errors.New("no saved state")

	// ErrCorruptState is returned when a persisted record exists but could
	// not be decoded. The store recovers by falling back to defaults.
	ErrCorruptState = errors.New("corrupt persisted state")

	// ErrPersistenceFailed wraps any storage write failure. The in-memory
	// collection is left unchanged when it is returned.
	ErrPersistenceFailed = errors.New("persistence failed")
)

// ErrReminderScheduling wraps reminder-service scheduling failures. It is
// logged and never fails the task mutation that triggered it.
var ErrReminderScheduling = errors.New("reminder scheduling failed")

func isNoState(err error) bool {
	return errors.Is(err, ErrNoSavedState)
}

func isCorrupt(err error) bool {
	return errors.Is(err, ErrCorruptState)
}
