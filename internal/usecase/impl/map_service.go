package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"kuttyport/config"
	deliverycontext "kuttyport/internal/delivery/context"
	"kuttyport/internal/domain/entity"
	domainerrors "kuttyport/internal/domain/errors"
	"kuttyport/internal/domain/repository"
	"kuttyport/internal/domain/service"
	"kuttyport/internal/mapview"
	"kuttyport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Render sources reported to metrics.
const (
	renderSourceSnapshot = "snapshot"
	renderSourcePreview  = "preview"
)

// mapService implements the MapUsecase interface.
type mapService struct {
	snapshotRepo repository.SnapshotRepository
	publisher    service.EventPublisher
	qrService    service.QRCodeService
	renderer     *mapview.Renderer
	metrics      service.MapMetrics
	baseURL      string
	logger       *slog.Logger
}

// MapServiceParams holds dependencies for MapService, injected by Fx.
type MapServiceParams struct {
	fx.In

	SnapshotRepo   repository.SnapshotRepository
	EventPublisher service.EventPublisher
	QRCodeService  service.QRCodeService
	Renderer       *mapview.Renderer
	Metrics        service.MapMetrics `optional:"true"`
	Config         *config.Config
	Logger         *slog.Logger
}

// NewMapService is the constructor for mapService.
func NewMapService(params MapServiceParams) usecase.MapUsecase {
	baseURL := ""
	if params.Config != nil && params.Config.Tracking != nil {
		baseURL = strings.TrimRight(params.Config.Tracking.BaseURL, "/")
	}

	return &mapService{
		snapshotRepo: params.SnapshotRepo,
		publisher:    params.EventPublisher,
		qrService:    params.QRCodeService,
		renderer:     params.Renderer,
		metrics:      params.Metrics,
		baseURL:      baseURL,
		logger:       params.Logger,
	}
}

func (srv *mapService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SaveSnapshot publishes the latest map state of a delivery.
func (srv *mapService) SaveSnapshot(ctx context.Context, deliveryID string, input *usecase.SaveSnapshotInput) (*entity.Snapshot, error) {
	if err := checkDeliveryID(deliveryID); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("snapshot body is required")
	}
	if err := checkUniqueLocationIDs(input.Locations); err != nil {
		return nil, err
	}

	snapshot := &entity.Snapshot{
		DeliveryID:         deliveryID,
		Locations:          input.Locations,
		CurrentLocation:    input.CurrentLocation,
		RoutePath:          input.RoutePath,
		SelectedLocationID: input.SelectedLocationID,
	}
	if snapshot.Locations == nil {
		snapshot.Locations = []entity.Location{}
	}

	if err := srv.snapshotRepo.SaveSnapshot(ctx, snapshot, input.ExpectedVersion); err != nil {
		return nil, srv.repositoryError(ctx, err, deliveryID, "failed to save snapshot")
	}

	srv.log(ctx).Info("Snapshot saved",
		slog.String("delivery_id", deliveryID),
		slog.Int64("version", snapshot.Version),
		slog.Int("locations", len(snapshot.Locations)),
	)

	return snapshot, nil
}

// UpdatePosition replaces the courier position of a stored snapshot.
func (srv *mapService) UpdatePosition(ctx context.Context, deliveryID string, input *usecase.UpdatePositionInput) (*entity.Snapshot, error) {
	if err := checkDeliveryID(deliveryID); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("position body is required")
	}
	position := entity.Coordinate{Lat: input.Lat, Lng: input.Lng}
	if !position.IsFinite() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("position must be finite")
	}

	snapshot, err := srv.snapshotRepo.UpdateCurrentLocation(ctx, deliveryID, position)
	if err != nil {
		return nil, srv.repositoryError(ctx, err, deliveryID, "failed to update position")
	}

	srv.log(ctx).Debug("Position updated",
		slog.String("delivery_id", deliveryID),
		slog.Int64("version", snapshot.Version),
	)

	return snapshot, nil
}

// DeleteSnapshot removes the delivery's map.
func (srv *mapService) DeleteSnapshot(ctx context.Context, deliveryID string) error {
	if err := checkDeliveryID(deliveryID); err != nil {
		return err
	}

	if err := srv.snapshotRepo.DeleteSnapshot(ctx, deliveryID); err != nil {
		return srv.repositoryError(ctx, err, deliveryID, "failed to delete snapshot")
	}

	srv.log(ctx).Info("Snapshot deleted", slog.String("delivery_id", deliveryID))

	return nil
}

// GetSnapshot returns the stored snapshot as published.
func (srv *mapService) GetSnapshot(ctx context.Context, deliveryID string) (*entity.Snapshot, error) {
	if err := checkDeliveryID(deliveryID); err != nil {
		return nil, err
	}

	snapshot, err := srv.snapshotRepo.FindSnapshot(ctx, deliveryID)
	if err != nil {
		return nil, srv.repositoryError(ctx, err, deliveryID, "failed to find snapshot")
	}

	return snapshot, nil
}

// RenderDelivery renders the stored snapshot of a delivery.
func (srv *mapService) RenderDelivery(ctx context.Context, deliveryID string) (*usecase.MapOutput, error) {
	snapshot, err := srv.GetSnapshot(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	view := srv.render(renderSourceSnapshot, mapview.InputFromSnapshot(snapshot))

	return &usecase.MapOutput{Snapshot: snapshot, View: view}, nil
}

// Preview renders an ad-hoc snapshot without storing it.
func (srv *mapService) Preview(_ context.Context, input *usecase.SnapshotInput) (*mapview.View, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("snapshot body is required")
	}
	if err := checkUniqueLocationIDs(input.Locations); err != nil {
		return nil, err
	}

	return srv.render(renderSourcePreview, mapview.Input{
		Locations:          input.Locations,
		Current:            input.CurrentLocation,
		RoutePath:          input.RoutePath,
		SelectedLocationID: input.SelectedLocationID,
	}), nil
}

// ActivateLocation activates the marker with the given location id.
func (srv *mapService) ActivateLocation(ctx context.Context, deliveryID string, locationID entity.LocationID) (*usecase.ActivationOutput, error) {
	out, err := srv.RenderDelivery(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	var activated *entity.Location
	if _, ok := out.View.Activate(locationID, func(loc entity.Location) { activated = &loc }); !ok {
		srv.observeActivation(service.ActivationMissed)

		return nil, domainerrors.ErrLocationNotFound.WithDetails(
			fmt.Sprintf("location %q is not on the map of delivery %s", locationID.String(), deliveryID))
	}

	return srv.publishActivation(ctx, out.Snapshot, *activated)
}

// ActivateAt activates the marker nearest to a clicked point.
func (srv *mapService) ActivateAt(ctx context.Context, deliveryID string, input *usecase.ActivateAtInput) (*usecase.ActivationOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("click body is required")
	}

	out, err := srv.RenderDelivery(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	tolerance := srv.renderer.Options().HitToleranceDeg
	if input.ToleranceDeg != nil {
		tolerance = *input.ToleranceDeg
	}

	var activated *entity.Location
	point := entity.Coordinate{Lat: input.Lat, Lng: input.Lng}
	if _, ok := out.View.ActivateAt(point, tolerance, func(loc entity.Location) { activated = &loc }); !ok {
		srv.observeActivation(service.ActivationMissed)

		return nil, domainerrors.ErrNoMarkerAtPoint.WithDetails(
			fmt.Sprintf("no marker within %g degrees of (%g, %g)", tolerance, input.Lat, input.Lng))
	}

	return srv.publishActivation(ctx, out.Snapshot, *activated)
}

// TrackingQRCode renders a PNG QR code of the delivery's tracking page.
func (srv *mapService) TrackingQRCode(ctx context.Context, deliveryID string) ([]byte, error) {
	if err := checkDeliveryID(deliveryID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateTrackingQR(deliveryID, srv.TrackingURL(deliveryID))
	if err != nil {
		srv.log(ctx).Error("Failed to generate tracking QR code",
			slog.String("delivery_id", deliveryID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to generate tracking QR code")
	}

	return png, nil
}

// TrackingURL returns the public map page of a delivery.
func (srv *mapService) TrackingURL(deliveryID string) string {
	return srv.baseURL + "/deliveries/" + url.PathEscape(deliveryID) + "/map/page"
}

func (srv *mapService) render(source string, in mapview.Input) *mapview.View {
	view := srv.renderer.Render(in)

	if srv.metrics != nil {
		var skipped map[string]int
		if len(view.Skipped) > 0 {
			skipped = make(map[string]int, 3)
			for _, point := range view.Skipped {
				skipped[point.Kind]++
			}
		}
		srv.metrics.ObserveRender(source, len(view.Markers), skipped)
	}

	return view
}

func (srv *mapService) publishActivation(ctx context.Context, snapshot *entity.Snapshot, loc entity.Location) (*usecase.ActivationOutput, error) {
	payload, err := locationPayload(loc)
	if err != nil {
		srv.observeActivation(service.ActivationFailed)

		return nil, errors.Wrap(err, "failed to encode activated location")
	}

	event := &service.LocationActivatedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     uuid.NewString(),
		DeliveryID:  snapshot.DeliveryID,
		SnapshotID:  snapshot.ID.String(),
		LocationID:  loc.ID.String(),
		Location:    payload,
		ActivatedAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishLocationActivated(ctx, event); err != nil {
		srv.observeActivation(service.ActivationFailed)
		srv.log(ctx).Error("Failed to publish location activation",
			slog.String("delivery_id", snapshot.DeliveryID),
			slog.String("location_id", event.LocationID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to publish location activation")
	}

	srv.observeActivation(service.ActivationDispatched)
	srv.log(ctx).Info("Location activated",
		slog.String("delivery_id", snapshot.DeliveryID),
		slog.String("location_id", event.LocationID),
		slog.String("event_id", event.EventID),
	)

	return &usecase.ActivationOutput{
		DeliveryID: snapshot.DeliveryID,
		EventID:    event.EventID,
		Location:   loc,
	}, nil
}

func (srv *mapService) observeActivation(result string) {
	if srv.metrics != nil {
		srv.metrics.ObserveActivation(result)
	}
}

// repositoryError maps repository errors to application errors.
func (srv *mapService) repositoryError(ctx context.Context, err error, deliveryID, message string) error {
	switch {
	case errors.Is(err, repository.ErrSnapshotNotFound):
		return domainerrors.ErrSnapshotNotFound.WithDetails(fmt.Sprintf("delivery %s", deliveryID))
	case errors.Is(err, repository.ErrVersionConflict):
		return domainerrors.ErrSnapshotConflict.WithDetails(fmt.Sprintf("delivery %s", deliveryID))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(err, message)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	srv.log(ctx).Error(message, slog.String("delivery_id", deliveryID), slog.Any("error", err))

	return domainerrors.NewDatabaseExecuteError(err, message)
}

func checkDeliveryID(deliveryID string) error {
	if !entity.IsValidDeliveryID(deliveryID) {
		return domainerrors.ErrInvalidDeliveryID.WithDetails(
			"delivery ids are 1 to 64 letters, digits, '-' or '_'")
	}

	return nil
}

// checkUniqueLocationIDs rejects snapshots in which a location id repeats.
func checkUniqueLocationIDs(locations []entity.Location) error {
	if dups := entity.DuplicateLocationIDs(locations); len(dups) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("duplicate location ids: %s", strings.Join(dups, ", ")))
	}

	return nil
}

// locationPayload flattens a location, unknown fields included, into the
// event's JSON object.
func locationPayload(loc entity.Location) (map[string]any, error) {
	raw, err := json.Marshal(loc)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, errors.WithStack(err)
	}

	return payload, nil
}
