package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"kuttyport/config"
	deliverycontext "kuttyport/internal/delivery/context"
	"kuttyport/internal/domain/entity"
	"kuttyport/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSnapshotMapper_RoundTrip(t *testing.T) {
	var extra entity.Location
	require.NoError(t, json.Unmarshal([]byte(`{"id":"stop-2","lat":12,"lng":24,"name":"B","type":"dropoff","status":"completed","gate":"B4"}`), &extra))
	selected := entity.NumericID(1)
	now := time.Date(2026, 10, 1, 8, 30, 0, 0, time.UTC)

	snapshot := &entity.Snapshot{
		ID:         uuid.New(),
		DeliveryID: "DLV-1001",
		Version:    3,
		Locations: []entity.Location{
			{ID: entity.NumericID(1), Lat: 10, Lng: 20, Name: "A", Type: entity.LocationTypePickup, Status: entity.LocationStatusPending},
			extra,
		},
		CurrentLocation:    &entity.Coordinate{Lat: 9.5, Lng: 19.5},
		RoutePath:          []entity.Coordinate{{Lat: 10, Lng: 20}, {Lat: 12, Lng: 24}},
		SelectedLocationID: &selected,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	snapshotM, err := fromSnapshotDomain(snapshot)
	require.NoError(t, err)
	assert.Equal(t, "DLV-1001", snapshotM.DeliveryID)
	assert.Equal(t, snapshot.ID, snapshotM.SnapshotID)
	assert.JSONEq(t, `1`, string(snapshotM.SelectedLocationID))

	back, err := toSnapshotDomain(snapshotM)
	require.NoError(t, err)
	assert.Equal(t, snapshot, back)
}

func TestSnapshotMapper_OptionalColumnsStayNull(t *testing.T) {
	snapshotM, err := fromSnapshotDomain(&entity.Snapshot{DeliveryID: "DLV-1"})
	require.NoError(t, err)

	assert.JSONEq(t, `[]`, string(snapshotM.Locations))
	assert.Nil(t, snapshotM.CurrentLocation)
	assert.Nil(t, snapshotM.RoutePath)
	assert.Nil(t, snapshotM.SelectedLocationID)

	back, err := toSnapshotDomain(snapshotM)
	require.NoError(t, err)
	assert.Empty(t, back.Locations)
	assert.Nil(t, back.CurrentLocation)
	assert.Nil(t, back.RoutePath)
	assert.Nil(t, back.SelectedLocationID)
}

func TestRetryInsertRace(t *testing.T) {
	errDB := errors.New("connection reset")

	tests := []struct {
		name            string
		expectedVersion int64
		results         []error
		wantCalls       int
		wantErr         error
	}{
		{name: "first attempt succeeds", results: []error{nil}, wantCalls: 1},
		{name: "unconditional save retries after losing the insert", results: []error{errInsertRace, nil}, wantCalls: 2},
		{name: "conditional save reports a conflict", expectedVersion: 1, results: []error{errInsertRace}, wantCalls: 1, wantErr: repository.ErrVersionConflict},
		{name: "second race is a conflict", results: []error{errInsertRace, errInsertRace}, wantCalls: 2, wantErr: repository.ErrVersionConflict},
		{name: "other errors are not retried", results: []error{errDB}, wantCalls: 1, wantErr: errDB},
		{name: "retry error is returned", results: []error{errInsertRace, errDB}, wantCalls: 2, wantErr: errDB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := retryInsertRace(tt.expectedVersion, func() error {
				result := tt.results[calls]
				calls++

				return result
			})

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.False(t, isUniqueConstraintViolation(nil))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "insert")))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "delivery_map_snapshots_pkey" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
}

func TestQueryLogger_TraceTagsRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = true

	gormLogger := newQueryLogger(base, cfg)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	gormLogger.Trace(ctx, time.Now(), func() (string, int64) {
		return `SELECT * FROM "delivery_map_snapshots"`, 1
	}, nil)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "SQL query", line["msg"])
	assert.Equal(t, "req-42", line["request_id"])
}

func TestQueryLogger_IgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	gormLogger := newQueryLogger(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{}).LogMode(logger.Error)

	gormLogger.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())
}

func TestQueryLogger_SlowQueryUsesConfiguredThreshold(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Storage: &config.StorageConfig{SlowQueryThreshold: time.Millisecond}}
	ql := newQueryLogger(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)

	ql.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) { return "SELECT 1", 1 }, nil)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Slow SQL query", line["msg"])
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "snapshot_store", line["component"])
}
