// Package store implements the typed data-access layer over the content
// database. Every mutation returns the refreshed, ordered collection so
// callers re-render from a single consistent snapshot.
package store

import (
	"errors"

	"github.com/thedetailproz/site-backend/internal/storage"
	"gorm.io/gorm"
)

// ErrNotFound indicates the target row of an update or delete is missing.
var ErrNotFound = errors.New("store: not found")

// ErrValidation indicates caller-supplied data failed basic shape checks.
var ErrValidation = errors.New("store: invalid input")

// Store provides typed CRUD operations over the content database.
type Store struct {
	db      *gorm.DB            // Content database handle.
	objects storage.ObjectStore // File store for gallery uploads, may be nil.
}

// New constructs a Store. The object store may be nil when gallery uploads
// are not served from local storage.
func New(db *gorm.DB, objects storage.ObjectStore) *Store {
	return &Store{db: db, objects: objects}
}

// Available reports whether a content database is configured. Callers on the
// public site fall back to built-in defaults when it is not.
func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// DB exposes the underlying connection for auth lookups.
func (s *Store) DB() *gorm.DB {
	if s == nil {
		return nil
	}
	return s.db
}
