package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"task-tracker/core"
)

func Register(mux *http.ServeMux, log *slog.Logger, store *core.Store, timeout time.Duration) {
	// ping
	mux.Handle("GET /api/ping", NewPingHandler(log, store, timeout))

	// categories
	mux.Handle("GET /api/categories", NewListCategoriesHandler(log, store))
	mux.Handle("POST /api/categories", NewAddCategoryHandler(log, store, timeout))

	// tasks
	mux.Handle("GET /api/tasks", NewListTasksHandler(log, store))
	mux.Handle("POST /api/tasks", NewCreateTaskHandler(log, store, timeout))
	mux.Handle("PATCH /api/tasks/{id}", NewPatchTaskHandler(log, store, timeout))
	mux.Handle("DELETE /api/tasks/{id}", NewDeleteTaskHandler(log, store, timeout))
	mux.Handle("POST /api/tasks/{id}/toggle", NewToggleTaskHandler(log, store, timeout))
	mux.Handle("DELETE /api/tasks/completed", NewClearCompletedHandler(log, store, timeout))
}
