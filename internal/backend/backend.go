// Package backend opens the durable slot selected by config.
package backend

import (
	"fmt"
	"path/filepath"

	"todo/internal/backend/filestore"
	"todo/internal/backend/sqlitestore"
	"todo/internal/config"
	"todo/internal/storage"
)

// Open returns the slot for cfg.Backend, rooted in cfg.Dir. The directory is
// created if it does not exist.
func Open(cfg *config.Config) (storage.Slot, error) {
	if err := cfg.EnsureDir(); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}
	switch cfg.Backend {
	case config.BackendFile, "":
		return filestore.New(cfg.Dir), nil
	case config.BackendSQLite:
		db, err := sqlitestore.Open(filepath.Join(cfg.Dir, sqlitestore.FileName))
		if err != nil {
			return nil, err
		}
		return db, nil
	}
	return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
}
