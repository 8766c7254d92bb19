package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// DocumentRepo stores whole JSON documents by key.
type DocumentRepo struct {
	db dbConn
}

func newDocumentRepo(db dbConn) *DocumentRepo {
	return &DocumentRepo{db: db}
}

// Get returns the document stored under key, or nil when there is none.
func (r *DocumentRepo) Get(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT doc_value
		FROM documents
		WHERE doc_key = ?
	`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s: %w", key, err)
	}

	return []byte(value), nil
}

// Put inserts or replaces the document stored under key.
func (r *DocumentRepo) Put(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO documents (doc_key, doc_value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(doc_key) DO UPDATE SET
			doc_value = excluded.doc_value,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query, key, string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to put document %s: %w", key, err)
	}

	return nil
}
