// Package store is the record-store adapter over Supabase Postgres.
// Every list query is ordered by created_at with id as tiebreaker so
// pagination stays stable across requests, and returns the exact total
// count alongside the page.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"consulting-site-backend/internal/apperrors"
)

type Store struct {
	db *sql.DB
}

func New(connectionString string) (*Store, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Dashboard aggregates live on fixed tables only.
var countableTables = map[string]bool{
	"team_members":     true,
	"services":         true,
	"projects":         true,
	"job_applications": true,
	"contact_messages": true,
}

func (s *Store) Count(table string) (int, error) {
	if !countableTables[table] {
		return 0, &apperrors.StoreError{Op: "count", Err: fmt.Errorf("unknown table %q", table)}
	}
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		return 0, &apperrors.StoreError{Op: "count", Err: err}
	}
	return count, nil
}

func wrapGetErr(err error, collection, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return &apperrors.NotFoundError{Collection: collection, ID: id}
	}
	return &apperrors.StoreError{Op: "get " + collection, Err: err}
}

func storeErr(op string, err error) error {
	return &apperrors.StoreError{Op: op, Err: err}
}
