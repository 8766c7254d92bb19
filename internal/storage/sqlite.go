package storage

import (
	"context"
	"fmt"

	"github.com/diegoclair/group-meeting-rotation/internal/database"
	"github.com/diegoclair/group-meeting-rotation/migrator/sqlite"
)

// SQLiteBackend stores documents in the migrated documents table of a local database.
type SQLiteBackend struct {
	db   *database.DB
	docs *database.DocumentRepo
}

func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	db, err := database.New(path)
	if err != nil {
		return nil, err
	}

	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return newSQLiteBackend(db), nil
}

func newSQLiteBackend(db *database.DB) *SQLiteBackend {
	return &SQLiteBackend{db: db, docs: db.Documents()}
}

func (b *SQLiteBackend) Name() string { return "sqlite" }

func (b *SQLiteBackend) Get(ctx context.Context, key string) ([]byte, error) {
	return b.docs.Get(ctx, key)
}

func (b *SQLiteBackend) Put(ctx context.Context, key string, value []byte) error {
	return b.docs.Put(ctx, key, value)
}

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
