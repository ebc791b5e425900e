package handler

import (
	"log/slog"
	"net/http"
	"time"

	"kuttyport/internal/delivery/http/response"
	"kuttyport/internal/domain/entity"
	domainerrors "kuttyport/internal/domain/errors"
	"kuttyport/internal/mapview"
	"kuttyport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	contentTypeGeoJSON = "application/geo+json"
	contentTypePNG     = "image/png"

	qrCodeMaxAgeSeconds = 3600
)

// MapHandlerParams holds dependencies for MapHandler, injected by Fx.
type MapHandlerParams struct {
	fx.In

	MapUC  usecase.MapUsecase
	Logger *slog.Logger
}

// MapHandler serves the customer facing delivery map
type MapHandler struct {
	mapUC  usecase.MapUsecase
	page   *pageRenderer
	logger *slog.Logger
}

// NewMapHandler is the constructor for MapHandler
func NewMapHandler(params MapHandlerParams) (*MapHandler, error) {
	page, err := newPageRenderer()
	if err != nil {
		return nil, err
	}

	return &MapHandler{
		mapUC:  params.MapUC,
		page:   page,
		logger: params.Logger,
	}, nil
}

// MapViewResponse is a rendered delivery map
type MapViewResponse struct {
	DeliveryID string        `json:"deliveryId"`
	SnapshotID uuid.UUID     `json:"snapshotId"`
	Version    int64         `json:"version"`
	UpdatedAt  time.Time     `json:"updatedAt"`
	View       *mapview.View `json:"view"`
}

// GetMap returns the rendered view of a delivery
func (h *MapHandler) GetMap(c echo.Context) error {
	out, err := h.mapUC.RenderDelivery(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.OK(c, newMapViewResponse(out), "Map rendered")
}

// GetGeoJSON returns the rendered view as a GeoJSON FeatureCollection
func (h *MapHandler) GetGeoJSON(c echo.Context) error {
	out, err := h.mapUC.RenderDelivery(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return writeGeoJSON(c, out.View)
}

// GetPage returns an HTML page with an interactive map of the delivery
func (h *MapHandler) GetPage(c echo.Context) error {
	deliveryID := c.Param("id")
	out, err := h.mapUC.RenderDelivery(c.Request().Context(), deliveryID)
	if err != nil {
		return err
	}

	body, err := h.page.render(pageData{
		DeliveryID:  deliveryID,
		Version:     out.Snapshot.Version,
		TrackingURL: h.mapUC.TrackingURL(deliveryID),
		View:        out.View,
	})
	if err != nil {
		return errors.Wrap(err, "failed to render map page")
	}

	return c.HTMLBlob(http.StatusOK, body)
}

// GetQRCode returns a PNG QR code linking to the delivery's map page
func (h *MapHandler) GetQRCode(c echo.Context) error {
	png, err := h.mapUC.TrackingQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Blob(c, contentTypePNG, qrCodeMaxAgeSeconds, png)
}

// Preview renders a snapshot from the request body without storing it.
// With ?format=geojson the view is returned as GeoJSON.
func (h *MapHandler) Preview(c echo.Context) error {
	var req usecase.SnapshotInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.mapUC.Preview(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	if c.QueryParam("format") == "geojson" {
		return writeGeoJSON(c, view)
	}

	return response.OK(c, view, "Map rendered")
}

// ActivateLocation activates the marker of a location
func (h *MapHandler) ActivateLocation(c echo.Context) error {
	locationID := entity.ParseLocationID(c.Param("locationId"))
	if locationID.IsZero() {
		return domainerrors.ErrValidationFailed.WithDetails("locationId is required")
	}

	out, err := h.mapUC.ActivateLocation(c.Request().Context(), c.Param("id"), locationID)
	if err != nil {
		return err
	}

	return response.OK(c, out, "Location activated")
}

// ActivateAt activates the marker nearest to a clicked coordinate
func (h *MapHandler) ActivateAt(c echo.Context) error {
	var req usecase.ActivateAtInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.mapUC.ActivateAt(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return err
	}

	return response.OK(c, out, "Location activated")
}

func newMapViewResponse(out *usecase.MapOutput) MapViewResponse {
	return MapViewResponse{
		DeliveryID: out.Snapshot.DeliveryID,
		SnapshotID: out.Snapshot.ID,
		Version:    out.Snapshot.Version,
		UpdatedAt:  out.Snapshot.UpdatedAt,
		View:       out.View,
	}
}

func writeGeoJSON(c echo.Context, view *mapview.View) error {
	body, err := view.FeatureCollection().MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "failed to encode geojson")
	}

	return c.Blob(http.StatusOK, contentTypeGeoJSON, body)
}
