package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"kuttyport/internal/domain/entity"
	"kuttyport/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSnapshot(deliveryID string, names ...string) *entity.Snapshot {
	snapshot := &entity.Snapshot{DeliveryID: deliveryID}
	for i, name := range names {
		snapshot.Locations = append(snapshot.Locations, entity.Location{
			ID:   entity.NumericID(int64(i + 1)),
			Lat:  float64(i),
			Lng:  float64(i),
			Name: name,
		})
	}

	return snapshot
}

func TestSnapshotRepository_SaveAssignsIDAndVersion(t *testing.T) {
	repo := NewSnapshotRepository()
	ctx := context.Background()

	first := newSnapshot("DLV-1", "A")
	require.NoError(t, repo.SaveSnapshot(ctx, first, 0))
	assert.EqualValues(t, 1, first.Version)
	assert.NotEmpty(t, first.ID)

	second := newSnapshot("DLV-1", "A", "B")
	require.NoError(t, repo.SaveSnapshot(ctx, second, 0))
	assert.EqualValues(t, 2, second.Version)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	stored, err := repo.FindSnapshot(ctx, "DLV-1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, stored.ID)
	assert.Len(t, stored.Locations, 2)
}

func TestSnapshotRepository_ExpectedVersion(t *testing.T) {
	repo := NewSnapshotRepository()
	ctx := context.Background()

	assert.ErrorIs(t, repo.SaveSnapshot(ctx, newSnapshot("DLV-1"), 4), repository.ErrVersionConflict)
	require.NoError(t, repo.SaveSnapshot(ctx, newSnapshot("DLV-1"), 0))
	require.NoError(t, repo.SaveSnapshot(ctx, newSnapshot("DLV-1"), 1))
	assert.ErrorIs(t, repo.SaveSnapshot(ctx, newSnapshot("DLV-1"), 1), repository.ErrVersionConflict)

	stored, err := repo.FindSnapshot(ctx, "DLV-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, stored.Version)
}

func TestSnapshotRepository_ReturnsCopies(t *testing.T) {
	repo := NewSnapshotRepository()
	ctx := context.Background()

	snapshot := newSnapshot("DLV-1", "A")
	require.NoError(t, repo.SaveSnapshot(ctx, snapshot, 0))
	snapshot.Locations[0].Name = "mutated after save"

	found, err := repo.FindSnapshot(ctx, "DLV-1")
	require.NoError(t, err)
	found.Locations[0].Name = "mutated after find"

	again, err := repo.FindSnapshot(ctx, "DLV-1")
	require.NoError(t, err)
	assert.Equal(t, "A", again.Locations[0].Name)
}

func TestSnapshotRepository_UpdateCurrentLocation(t *testing.T) {
	repo := NewSnapshotRepository()
	ctx := context.Background()

	_, err := repo.UpdateCurrentLocation(ctx, "DLV-1", entity.Coordinate{Lat: 1, Lng: 2})
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)

	saved := newSnapshot("DLV-1", "A", "B")
	require.NoError(t, repo.SaveSnapshot(ctx, saved, 0))

	updated, err := repo.UpdateCurrentLocation(ctx, "DLV-1", entity.Coordinate{Lat: 1, Lng: 2})
	require.NoError(t, err)
	assert.Equal(t, &entity.Coordinate{Lat: 1, Lng: 2}, updated.CurrentLocation)
	assert.EqualValues(t, 2, updated.Version)
	assert.Equal(t, saved.ID, updated.ID)
	assert.Len(t, updated.Locations, 2)
}

func TestSnapshotRepository_Delete(t *testing.T) {
	repo := NewSnapshotRepository()
	ctx := context.Background()

	assert.ErrorIs(t, repo.DeleteSnapshot(ctx, "DLV-1"), repository.ErrSnapshotNotFound)
	require.NoError(t, repo.SaveSnapshot(ctx, newSnapshot("DLV-1"), 0))
	require.NoError(t, repo.DeleteSnapshot(ctx, "DLV-1"))

	_, err := repo.FindSnapshot(ctx, "DLV-1")
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

func TestSnapshotRepository_CanceledContext(t *testing.T) {
	repo := NewSnapshotRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.SaveSnapshot(ctx, newSnapshot("DLV-1"), 0), context.Canceled)
	_, err := repo.FindSnapshot(ctx, "DLV-1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSnapshotRepository_ConcurrentSavesKeepWholeSnapshots(t *testing.T) {
	repo := NewSnapshotRepository()
	ctx := context.Background()

	const writers = 16
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			names := make([]string, i+1)
			for j := range names {
				names[j] = fmt.Sprintf("w%d", i)
			}
			assert.NoError(t, repo.SaveSnapshot(ctx, newSnapshot("DLV-1", names...), 0))
		}()
	}
	wg.Wait()

	stored, err := repo.FindSnapshot(ctx, "DLV-1")
	require.NoError(t, err)
	assert.EqualValues(t, writers, stored.Version)

	// Every location comes from the same writer.
	writer := stored.Locations[0].Name
	assert.Len(t, stored.Locations, mustAtoi(t, writer[1:])+1)
	for _, loc := range stored.Locations {
		assert.Equal(t, writer, loc.Name)
	}
}

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	var n int
	_, err := fmt.Sscanf(s, "%d", &n)
	require.NoError(t, err)

	return n
}
