package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"task-tracker/adapters/rest"
	"task-tracker/core"
	"task-tracker/pkg/res"
)

func NewListCategoriesHandler(_ *slog.Logger, store *core.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res.Json(w, map[string]any{"categories": store.Categories()}, http.StatusOK)
	}
}

func NewAddCategoryHandler(_ *slog.Logger, store *core.Store, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in rest.CreateCategoryIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			res.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		name := strings.TrimSpace(in.Name)

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		if err := store.AddCategory(ctx, name); err != nil {
			rest.WriteErr(w, err)
			return
		}
		res.Json(w, map[string]any{"name": name}, http.StatusCreated)
	}
}
