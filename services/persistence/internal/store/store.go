// Package store is the sole owner of SQL access for the persistence
// service (C1). Every other service reaches this data only through C1's
// internal HTTP surface — nothing outside this package issues a query.
// Grounded on shared/repository/repository.go's BaseRepository: named-exec
// writes, context-scoped reads, and a single Transaction helper wrapping
// BeginTxx/commit/rollback.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ErrNotFound is returned by single-row lookups that find nothing.
var ErrNotFound = errors.New("store: record not found")

// ErrConflict is returned when a write violates a uniqueness invariant
// (duplicate username, a second non-revoked refresh credential, etc.).
var ErrConflict = errors.New("store: conflict")

type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// WithTx runs fn inside a single transaction, matching
// shared/repository/repository.go's Transaction helper: rollback on panic
// or error, commit otherwise.
func (s *Store) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	err = fn(tx)
	return err
}

func mapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505) — a duplicate username, or a second
// non-revoked refresh credential racing the partial unique index.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
