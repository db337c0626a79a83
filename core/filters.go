package core

import (
	"strings"
	"time"
)

// ListTasksFilter narrows a loaded task collection for presentation.
// Search matches title or description, case-insensitive. DueToday keeps
// tasks whose due date falls on the local calendar day.
type ListTasksFilter struct {
	Completed *bool
	Category  *string
	DueToday  bool
	Search    string
}

func (f ListTasksFilter) match(t Task, now time.Time) bool {
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	if f.Category != nil && t.Category != *f.Category {
		return false
	}
	if f.DueToday {
		if t.DueDate == nil {
			return false
		}
		dy, dm, dd := t.DueDate.Local().Date()
		ny, nm, nd := now.Date()
		if dy != ny || dm != nm || dd != nd {
			return false
		}
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			return false
		}
	}
	return true
}

// ListTasks returns the tasks matching the filter, in stored order.
func (s *Store) ListTasks(f ListTasksFilter) []Task {
	now := time.Now()

	var out []Task
	for _, t := range s.Tasks() {
		if f.match(t, now) {
			out = append(out, t)
		}
	}
	return out
}
