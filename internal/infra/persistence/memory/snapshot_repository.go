// Package memory keeps delivery snapshots in process memory. It backs local
// development and single-instance deployments.
package memory

import (
	"context"
	"sync"
	"time"

	"kuttyport/internal/domain/entity"
	"kuttyport/internal/domain/repository"

	"github.com/google/uuid"
)

// snapshotRepository implements repository.SnapshotRepository with a map.
// Stored snapshots are never handed out; callers always get a copy.
type snapshotRepository struct {
	mu        sync.RWMutex
	snapshots map[string]*entity.Snapshot
	now       func() time.Time
}

// NewSnapshotRepository is the constructor for snapshotRepository.
func NewSnapshotRepository() repository.SnapshotRepository {
	return &snapshotRepository{
		snapshots: make(map[string]*entity.Snapshot),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (repo *snapshotRepository) SaveSnapshot(ctx context.Context, snapshot *entity.Snapshot, expectedVersion int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	now := repo.now()
	next := snapshot.Clone()
	next.ID = uuid.New()
	next.CreatedAt = now
	next.UpdatedAt = now
	next.Version = 1

	if existing, ok := repo.snapshots[snapshot.DeliveryID]; ok {
		next.Version = existing.Version + 1
		next.CreatedAt = existing.CreatedAt
	}
	if expectedVersion != 0 && expectedVersion != next.Version-1 {
		return repository.ErrVersionConflict
	}

	repo.snapshots[snapshot.DeliveryID] = next

	snapshot.ID = next.ID
	snapshot.Version = next.Version
	snapshot.CreatedAt = next.CreatedAt
	snapshot.UpdatedAt = next.UpdatedAt

	return nil
}

func (repo *snapshotRepository) FindSnapshot(ctx context.Context, deliveryID string) (*entity.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	snapshot, ok := repo.snapshots[deliveryID]
	if !ok {
		return nil, repository.ErrSnapshotNotFound
	}

	return snapshot.Clone(), nil
}

func (repo *snapshotRepository) UpdateCurrentLocation(ctx context.Context, deliveryID string, current entity.Coordinate) (*entity.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	existing, ok := repo.snapshots[deliveryID]
	if !ok {
		return nil, repository.ErrSnapshotNotFound
	}

	next := existing.Clone()
	next.CurrentLocation = &current
	next.Version++
	next.UpdatedAt = repo.now()
	repo.snapshots[deliveryID] = next

	return next.Clone(), nil
}

func (repo *snapshotRepository) DeleteSnapshot(ctx context.Context, deliveryID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.snapshots[deliveryID]; !ok {
		return repository.ErrSnapshotNotFound
	}
	delete(repo.snapshots, deliveryID)

	return nil
}
