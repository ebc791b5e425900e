// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"kuttyport/internal/domain/entity"
	"kuttyport/internal/errors"
)

// Domain-specific errors for snapshot persistence.
var (
	// ErrSnapshotNotFound is returned when a delivery has no stored snapshot.
	ErrSnapshotNotFound = errors.New("snapshot not found")
	// ErrVersionConflict is returned when a conditional save sees a different stored version.
	ErrVersionConflict = errors.New("snapshot version conflict")
)

// SnapshotRepository stores the latest map snapshot of each delivery.
// A save replaces the whole snapshot; readers see either the old or the new one.
type SnapshotRepository interface {
	// SaveSnapshot stores the snapshot as the delivery's latest. It assigns a new ID,
	// sets Version to the previous version plus one, and fills the timestamps.
	// When expectedVersion is non-zero and differs from the stored version,
	// ErrVersionConflict is returned and nothing changes.
	SaveSnapshot(ctx context.Context, snapshot *entity.Snapshot, expectedVersion int64) error

	// FindSnapshot returns the delivery's latest snapshot or ErrSnapshotNotFound.
	FindSnapshot(ctx context.Context, deliveryID string) (*entity.Snapshot, error)

	// UpdateCurrentLocation replaces only the current position and bumps Version.
	UpdateCurrentLocation(ctx context.Context, deliveryID string, current entity.Coordinate) (*entity.Snapshot, error)

	// DeleteSnapshot removes the delivery's snapshot or returns ErrSnapshotNotFound.
	DeleteSnapshot(ctx context.Context, deliveryID string) error
}
