package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/todo-keeper/internal/config"
	"github.com/MKhiriev/todo-keeper/internal/logger"
)

// Storages aggregates the repositories used by the service layer.
type Storages struct {
	UserRepository UserRepository
	TodoRepository TodoRepository

	db *DB
}

// NewStorages picks the backend from cfg: PostgreSQL (migrated on start)
// when a DSN is set, process memory otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Warn().Str("func", "NewStorages").Msg("no database DSN configured, using in-memory storage")
		return NewMemoryStorages(log), nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		TodoRepository: NewTodoRepository(db, log),
		db:             db,
	}, nil
}

// NewMemoryStorages returns repositories sharing one in-memory store.
func NewMemoryStorages(log *logger.Logger) *Storages {
	s := newMemoryStore()
	return &Storages{
		UserRepository: newMemoryUserRepository(s, log),
		TodoRepository: newMemoryTodoRepository(s, log),
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
