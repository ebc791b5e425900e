package usecase

import (
	"context"

	"kuttyport/internal/domain/entity"
	"kuttyport/internal/mapview"
)

// SnapshotInput is the map state a client publishes or previews
type SnapshotInput struct {
	Locations          []entity.Location   `json:"locations" validate:"unique_location_ids,dive"`
	CurrentLocation    *entity.Coordinate  `json:"currentLocation,omitempty" validate:"omitempty"`
	RoutePath          []entity.Coordinate `json:"routePath,omitempty" validate:"dive"`
	SelectedLocationID *entity.LocationID  `json:"selectedLocationId,omitempty"`
}

// SaveSnapshotInput publishes a snapshot. ExpectedVersion, when set, makes the
// save conditional on the stored version.
type SaveSnapshotInput struct {
	SnapshotInput
	ExpectedVersion int64 `json:"expectedVersion,omitempty" validate:"gte=0"`
}

// UpdatePositionInput carries a courier GPS fix
type UpdatePositionInput struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// ActivateAtInput is a click on the map surface
type ActivateAtInput struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
	// ToleranceDeg overrides the configured hit tolerance
	ToleranceDeg *float64 `json:"toleranceDeg,omitempty" validate:"omitempty,gt=0,lte=1"`
}

// MapOutput is a rendered delivery map
type MapOutput struct {
	Snapshot *entity.Snapshot
	View     *mapview.View
}

// ActivationOutput is the outcome of a marker activation
type ActivationOutput struct {
	DeliveryID string          `json:"deliveryId"`
	EventID    string          `json:"eventId"`
	Location   entity.Location `json:"location"`
}

// MapUsecase defines the delivery map use cases
type MapUsecase interface {
	// Admin side
	SaveSnapshot(ctx context.Context, deliveryID string, input *SaveSnapshotInput) (*entity.Snapshot, error)
	UpdatePosition(ctx context.Context, deliveryID string, input *UpdatePositionInput) (*entity.Snapshot, error)
	DeleteSnapshot(ctx context.Context, deliveryID string) error
	GetSnapshot(ctx context.Context, deliveryID string) (*entity.Snapshot, error)

	// Customer side
	RenderDelivery(ctx context.Context, deliveryID string) (*MapOutput, error)
	Preview(ctx context.Context, input *SnapshotInput) (*mapview.View, error)
	ActivateLocation(ctx context.Context, deliveryID string, locationID entity.LocationID) (*ActivationOutput, error)
	ActivateAt(ctx context.Context, deliveryID string, input *ActivateAtInput) (*ActivationOutput, error)
	TrackingQRCode(ctx context.Context, deliveryID string) ([]byte, error)
	TrackingURL(deliveryID string) string
}
