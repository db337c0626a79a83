package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"task-tracker/adapters/rest"
	"task-tracker/core"
	"task-tracker/pkg/res"
)

func NewCreateTaskHandler(_ *slog.Logger, store *core.Store, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.CreateTaskIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(in.Title) == "" {
			res.Error(w, "title is required", http.StatusBadRequest)
			return
		}

		// reminder_enabled defaults to on when omitted
		reminder := true
		if in.ReminderEnabled != nil {
			reminder = *in.ReminderEnabled
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		t, err := store.AddTask(ctx, core.AddTaskIn{
			Title:           in.Title,
			Description:     in.Description,
			Category:        in.Category,
			DueDate:         in.DueDate,
			ReminderEnabled: reminder,
		})
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, t, http.StatusCreated)
	}
}

func NewListTasksHandler(_ *slog.Logger, store *core.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		var f core.ListTasksFilter

		if v := q.Get("completed"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				res.Error(w, "invalid completed", http.StatusBadRequest)
				return
			}
			f.Completed = &b
		}

		if v := q.Get("category"); v != "" {
			f.Category = &v
		}

		if v := q.Get("due_today"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				res.Error(w, "invalid due_today", http.StatusBadRequest)
				return
			}
			f.DueToday = b
		}

		f.Search = q.Get("q")

		items := store.ListTasks(f)
		if items == nil {
			items = []core.Task{}
		}
		res.Json(w, map[string]any{"tasks": items}, http.StatusOK)
	}
}

func NewPatchTaskHandler(_ *slog.Logger, store *core.Store, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		var in rest.PatchTaskIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
			res.Error(w, "title must not be empty", http.StatusBadRequest)
			return
		}
		if in.DueDate != nil && in.ClearDueDate {
			res.Error(w, "due_date and clear_due_date are mutually exclusive", http.StatusBadRequest)
			return
		}

		p := core.TaskPatch{
			Title:           in.Title,
			Description:     in.Description,
			Category:        in.Category,
			DueDate:         in.DueDate,
			Completed:       in.Completed,
			ReminderEnabled: in.ReminderEnabled,
		}
		if in.ClearDueDate {
			p.DueDate = &time.Time{}
		}

		if p.Title == nil && p.Description == nil && p.Category == nil &&
			p.DueDate == nil && p.Completed == nil && p.ReminderEnabled == nil {
			res.Error(w, "no fields to update", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		t, err := store.UpdateTask(ctx, id, p)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, t, http.StatusOK)
	}
}

func NewToggleTaskHandler(_ *slog.Logger, store *core.Store, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		t, err := store.ToggleCompletion(ctx, id)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, t, http.StatusOK)
	}
}

func NewDeleteTaskHandler(_ *slog.Logger, store *core.Store, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			res.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := store.DeleteTask(ctx, id); err != nil {
			rest.WriteErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func NewClearCompletedHandler(_ *slog.Logger, store *core.Store, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		n, err := store.ClearCompleted(ctx)
		if err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, map[string]any{"removed": n}, http.StatusOK)
	}
}
