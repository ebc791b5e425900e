// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"kuttyport/internal/domain/entity"
	domainerrors "kuttyport/internal/domain/errors"
	"kuttyport/internal/domain/repository"
	"kuttyport/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// snapshotRepository implements the domain.SnapshotRepository interface.
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository is the constructor for snapshotRepository.
func NewSnapshotRepository(db *gorm.DB) repository.SnapshotRepository {
	return &snapshotRepository{db: db}
}

// errInsertRace marks a first insert that lost to a concurrent one.
var errInsertRace = errors.New("delivery snapshot inserted concurrently")

// SaveSnapshot replaces the delivery's snapshot inside a row-locking transaction.
func (repo *snapshotRepository) SaveSnapshot(ctx context.Context, snapshot *entity.Snapshot, expectedVersion int64) error {
	return retryInsertRace(expectedVersion, func() error {
		return repo.saveSnapshot(ctx, snapshot, expectedVersion)
	})
}

// retryInsertRace runs save again when its insert lost a race for the first
// snapshot of a delivery. The row exists by then, so the second attempt locks
// and replaces it. Conditional saves report the race as a version conflict.
func retryInsertRace(expectedVersion int64, save func() error) error {
	err := save()
	if !errors.Is(err, errInsertRace) {
		return err
	}
	if expectedVersion != 0 {
		return repository.ErrVersionConflict
	}

	if err := save(); err != nil {
		if errors.Is(err, errInsertRace) {
			return repository.ErrVersionConflict
		}

		return err
	}

	return nil
}

func (repo *snapshotRepository) saveSnapshot(ctx context.Context, snapshot *entity.Snapshot, expectedVersion int64) error {
	now := time.Now().UTC()

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := lockSnapshot(tx, snapshot.DeliveryID)
		if err != nil && !errors.Is(err, repository.ErrSnapshotNotFound) {
			return err
		}

		var currentVersion int64
		createdAt := now
		if existing != nil {
			currentVersion = existing.Version
			createdAt = existing.CreatedAt
		}
		if expectedVersion != 0 && expectedVersion != currentVersion {
			return repository.ErrVersionConflict
		}

		next := snapshot.Clone()
		next.ID = uuid.New()
		next.Version = currentVersion + 1
		next.CreatedAt = createdAt
		next.UpdatedAt = now

		snapshotM, err := fromSnapshotDomain(next)
		if err != nil {
			return err
		}

		if existing == nil {
			if err := tx.Create(snapshotM).Error; err != nil {
				if isUniqueConstraintViolation(err) {
					return errInsertRace
				}

				return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery snapshot")
			}
		} else if err := tx.Save(snapshotM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to replace delivery snapshot")
		}

		snapshot.ID = next.ID
		snapshot.Version = next.Version
		snapshot.CreatedAt = next.CreatedAt
		snapshot.UpdatedAt = next.UpdatedAt

		return nil
	})
}

// FindSnapshot retrieves the latest snapshot of a delivery.
func (repo *snapshotRepository) FindSnapshot(ctx context.Context, deliveryID string) (*entity.Snapshot, error) {
	var snapshotM model.DeliverySnapshotModel
	err := repo.db.WithContext(ctx).
		Where("delivery_id = ?", deliveryID).
		Take(&snapshotM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSnapshotNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery snapshot")
	}

	return toSnapshotDomain(&snapshotM)
}

// UpdateCurrentLocation changes only the current position and bumps the version.
func (repo *snapshotRepository) UpdateCurrentLocation(ctx context.Context, deliveryID string, current entity.Coordinate) (*entity.Snapshot, error) {
	var updated *entity.Snapshot

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := lockSnapshot(tx, deliveryID)
		if err != nil {
			return err
		}

		raw, err := json.Marshal(current)
		if err != nil {
			return errors.Wrap(err, "failed to encode current location")
		}

		existing.CurrentLocation = datatypes.JSON(raw)
		existing.Version++
		existing.UpdatedAt = time.Now().UTC()

		if err := tx.Model(&model.DeliverySnapshotModel{}).
			Where("delivery_id = ?", deliveryID).
			Updates(map[string]any{
				"current_location": existing.CurrentLocation,
				"version":          existing.Version,
				"updated_at":       existing.UpdatedAt,
			}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update current location")
		}

		updated, err = toSnapshotDomain(existing)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteSnapshot removes the delivery's snapshot.
func (repo *snapshotRepository) DeleteSnapshot(ctx context.Context, deliveryID string) error {
	result := repo.db.WithContext(ctx).
		Where("delivery_id = ?", deliveryID).
		Delete(&model.DeliverySnapshotModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete delivery snapshot")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSnapshotNotFound
	}

	return nil
}

// AutoMigrate creates or updates the snapshot table.
func AutoMigrate(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(&model.DeliverySnapshotModel{}), "failed to migrate delivery snapshots")
}

func lockSnapshot(tx *gorm.DB, deliveryID string) (*model.DeliverySnapshotModel, error) {
	var snapshotM model.DeliverySnapshotModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("delivery_id = ?", deliveryID).
		Take(&snapshotM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSnapshotNotFound
		}

		return nil, errors.Wrap(err, "failed to lock delivery snapshot")
	}

	return &snapshotM, nil
}

// --- Mapper functions ---

func fromSnapshotDomain(s *entity.Snapshot) (*model.DeliverySnapshotModel, error) {
	locations := s.Locations
	if locations == nil {
		locations = []entity.Location{}
	}

	locationsJSON, err := json.Marshal(locations)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode locations")
	}

	snapshotM := &model.DeliverySnapshotModel{
		DeliveryID: s.DeliveryID,
		SnapshotID: s.ID,
		Version:    s.Version,
		Locations:  datatypes.JSON(locationsJSON),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}

	if snapshotM.CurrentLocation, err = optionalJSON(s.CurrentLocation, s.CurrentLocation != nil); err != nil {
		return nil, errors.Wrap(err, "failed to encode current location")
	}
	if snapshotM.RoutePath, err = optionalJSON(s.RoutePath, len(s.RoutePath) > 0); err != nil {
		return nil, errors.Wrap(err, "failed to encode route path")
	}
	if snapshotM.SelectedLocationID, err = optionalJSON(s.SelectedLocationID, s.SelectedLocationID != nil); err != nil {
		return nil, errors.Wrap(err, "failed to encode selected location")
	}

	return snapshotM, nil
}

func toSnapshotDomain(m *model.DeliverySnapshotModel) (*entity.Snapshot, error) {
	snapshot := &entity.Snapshot{
		ID:         m.SnapshotID,
		DeliveryID: m.DeliveryID,
		Version:    m.Version,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}

	if err := json.Unmarshal(m.Locations, &snapshot.Locations); err != nil {
		return nil, errors.Wrap(err, "failed to decode locations")
	}
	if len(m.CurrentLocation) > 0 {
		if err := json.Unmarshal(m.CurrentLocation, &snapshot.CurrentLocation); err != nil {
			return nil, errors.Wrap(err, "failed to decode current location")
		}
	}
	if len(m.RoutePath) > 0 {
		if err := json.Unmarshal(m.RoutePath, &snapshot.RoutePath); err != nil {
			return nil, errors.Wrap(err, "failed to decode route path")
		}
	}
	if len(m.SelectedLocationID) > 0 {
		if err := json.Unmarshal(m.SelectedLocationID, &snapshot.SelectedLocationID); err != nil {
			return nil, errors.Wrap(err, "failed to decode selected location")
		}
	}

	return snapshot, nil
}

func optionalJSON(v any, present bool) (datatypes.JSON, error) {
	if !present {
		return nil, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return datatypes.JSON(raw), nil
}
