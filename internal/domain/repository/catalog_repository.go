// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrSnapshotNotFound is returned when no catalog snapshot has been stored yet.
var ErrSnapshotNotFound = errors.New("catalog snapshot not found")

// CatalogSnapshotRepository stores the whole catalog as one opaque value under a fixed key.
// Save replaces the previous value atomically.
type CatalogSnapshotRepository interface {
	// Load returns the stored snapshot or ErrSnapshotNotFound.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the stored snapshot.
	Save(ctx context.Context, snapshot []byte) error
}
