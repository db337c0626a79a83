package core

import (
	"context"
	"testing"
	"time"
)

func TestListTasks_NoFilterReturnsStoredOrder(t *testing.T) {
	t.Parallel()

	_, _, store := newTestStore(t)

	a := mustAddTask(t, store, AddTaskIn{Title: "a", Category: "Work"})
	b := mustAddTask(t, store, AddTaskIn{Title: "b", Category: "Personal"})

	got := store.ListTasks(ListTasksFilter{})
	if len(got) != 2 || got[0].ID != a.ID || got[1].ID != b.ID {
		t.Fatalf("expected [a b] in stored order, got %v", got)
	}
}

func TestListTasks_ByCompletionAndCategory(t *testing.T) {
	t.Parallel()

	_, _, store := newTestStore(t)

	work := mustAddTask(t, store, AddTaskIn{Title: "report", Category: "Work"})
	mustAddTask(t, store, AddTaskIn{Title: "milk", Category: "Shopping"})
	done := mustAddTask(t, store, AddTaskIn{Title: "done", Category: "Work"})
	if _, err := store.ToggleCompletion(context.Background(), done.ID); err != nil {
		t.Fatalf("ToggleCompletion returned error: %v", err)
	}

	open := false
	category := "Work"
	got := store.ListTasks(ListTasksFilter{Completed: &open, Category: &category})
	if len(got) != 1 || got[0].ID != work.ID {
		t.Fatalf("expected only the open Work task, got %v", got)
	}

	completed := true
	got = store.ListTasks(ListTasksFilter{Completed: &completed})
	if len(got) != 1 || got[0].ID != done.ID {
		t.Fatalf("expected only the completed task, got %v", got)
	}
}

func TestListTasks_SearchMatchesTitleAndDescription(t *testing.T) {
	t.Parallel()

	_, _, store := newTestStore(t)

	byTitle := mustAddTask(t, store, AddTaskIn{Title: "Pay Rent", Category: "Personal"})
	byDesc := mustAddTask(t, store, AddTaskIn{Title: "other", Description: "rent the van", Category: "Work"})
	mustAddTask(t, store, AddTaskIn{Title: "unrelated", Category: "Work"})

	got := store.ListTasks(ListTasksFilter{Search: "RENT"})
	if len(got) != 2 || got[0].ID != byTitle.ID || got[1].ID != byDesc.ID {
		t.Fatalf("expected case-insensitive match on title and description, got %v", got)
	}
}

func TestListTasks_DueToday(t *testing.T) {
	t.Parallel()

	_, _, store := newTestStore(t)

	// end of the local day keeps the due date on today's calendar date
	now := time.Now()
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
	tomorrow := endOfDay.Add(24 * time.Hour)

	today := mustAddTask(t, store, AddTaskIn{Title: "today", Category: "Work", DueDate: &endOfDay})
	mustAddTask(t, store, AddTaskIn{Title: "tomorrow", Category: "Work", DueDate: &tomorrow})
	mustAddTask(t, store, AddTaskIn{Title: "no due date", Category: "Work"})

	got := store.ListTasks(ListTasksFilter{DueToday: true})
	if len(got) != 1 || got[0].ID != today.ID {
		t.Fatalf("expected only the task due today, got %v", got)
	}
}
