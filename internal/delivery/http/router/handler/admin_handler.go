package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "kuttyport/internal/delivery/context"
	"kuttyport/internal/delivery/http/response"
	"kuttyport/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	MapUC  usecase.MapUsecase
	Logger *slog.Logger
}

// AdminHandler publishes and maintains delivery map snapshots
type AdminHandler struct {
	mapUC  usecase.MapUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		mapUC:  params.MapUC,
		logger: params.Logger,
	}
}

// SaveSnapshot replaces the delivery's map snapshot
func (h *AdminHandler) SaveSnapshot(c echo.Context) error {
	var req usecase.SaveSnapshotInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	snapshot, err := h.mapUC.SaveSnapshot(ctx, c.Param("id"), &req)
	if err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Snapshot published",
		slog.String("delivery_id", snapshot.DeliveryID),
		slog.String("subject", deliverycontext.GetSubject(c)),
		slog.Int64("version", snapshot.Version),
	)

	status := http.StatusOK
	if snapshot.Version == 1 {
		status = http.StatusCreated
	}

	return response.Success(c, status, snapshot, "Snapshot saved")
}

// UpdatePosition replaces the courier position of the delivery's snapshot
func (h *AdminHandler) UpdatePosition(c echo.Context) error {
	var req usecase.UpdatePositionInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	snapshot, err := h.mapUC.UpdatePosition(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return err
	}

	return response.OK(c, snapshot, "Position updated")
}

// DeleteSnapshot removes the delivery's map
func (h *AdminHandler) DeleteSnapshot(c echo.Context) error {
	if err := h.mapUC.DeleteSnapshot(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// GetSnapshot returns the stored snapshot as published
func (h *AdminHandler) GetSnapshot(c echo.Context) error {
	snapshot, err := h.mapUC.GetSnapshot(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.OK(c, snapshot, "")
}
