package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"task-tracker/core"
)

// Record keys for the two persisted collections.
const (
	keyTasks      = "tasks"
	keyCategories = "categories"
)

type Storage struct {
	log  *slog.Logger
	conn *sqlx.DB
}

// New opens (creating if needed) the SQLite database at path.
func New(log *slog.Logger, path string) (*Storage, error) {
	conn, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		log.Error("connection problem", "path", path, "error", err)
		return nil, err
	}
	// single connection: sqlite allows one writer, and :memory: databases
	// are per-connection
	conn.SetMaxOpenConns(1)
	return &Storage{log: log, conn: conn}, nil
}

func (s *Storage) Close() error {
	return s.conn.Close()
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

func (s *Storage) LoadTasks(ctx context.Context) ([]core.Task, error) {
	var out []core.Task
	if err := s.load(ctx, keyTasks, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Storage) SaveTasks(ctx context.Context, tasks []core.Task) error {
	return s.save(ctx, keyTasks, tasks)
}

func (s *Storage) LoadCategories(ctx context.Context) ([]string, error) {
	var out []string
	if err := s.load(ctx, keyCategories, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Storage) SaveCategories(ctx context.Context, categories []string) error {
	return s.save(ctx, keyCategories, categories)
}

func (s *Storage) load(ctx context.Context, key string, dst any) error {
	const q = `SELECT value FROM app_state WHERE key = ?`

	var raw string
	if err := s.conn.GetContext(ctx, &raw, q, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.ErrNoSavedState
		}
		return fmt.Errorf("load %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: decode %s: %v", core.ErrCorruptState, key, err)
	}
	return nil
}

func (s *Storage) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	const q = `
		INSERT INTO app_state(key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP;
	`

	if _, err := s.conn.ExecContext(ctx, q, key, string(raw)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
