// Copyright (c) 2026 Aparna Ranjan.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Store is the data-access layer over the annotation schema.
//
// Constraint violations (not-null, foreign-key, unique, enum-domain) are
// enforced by Postgres and surface as wrapped *pq.Error values; the store
// adds no retry or recovery around them.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}
