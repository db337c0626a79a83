package db

import (
	_ "embed"
	"fmt"
)

//go:embed migrations/01_create_app_state.up.sql
var createAppStateUp string

// Migrate applies the storage schema.
func (s *Storage) Migrate() error {
	s.log.Debug("running storage migrations")

	if _, err := s.conn.Exec(createAppStateUp); err != nil {
		return fmt.Errorf("apply app_state migration: %w", err)
	}

	s.log.Debug("storage migrations finished")
	return nil
}
