package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DeliverySnapshotModel is the GORM-specific struct for the 'delivery_map_snapshots' table.
// One row per delivery holds its latest snapshot; the map payload is stored as jsonb
// so that unknown location fields survive unchanged.
type DeliverySnapshotModel struct {
	DeliveryID         string         `gorm:"type:varchar(64);primaryKey"`
	SnapshotID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Version            int64          `gorm:"not null"`
	Locations          datatypes.JSON `gorm:"type:jsonb;not null"`
	CurrentLocation    datatypes.JSON `gorm:"type:jsonb"`
	RoutePath          datatypes.JSON `gorm:"type:jsonb"`
	SelectedLocationID datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliverySnapshotModel) TableName() string {
	return "delivery_map_snapshots"
}
