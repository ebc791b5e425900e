// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kuttyport/internal/delivery/http/middleware"
	"kuttyport/internal/delivery/http/router/handler"
	"kuttyport/internal/domain/entity"
	"kuttyport/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MapHandler     *handler.MapHandler
	AdminHandler   *handler.AdminHandler
	TileHandler    *handler.TileHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Collector
}

// router holds all the handlers that need to be registered.
type router struct {
	mapHandler     *handler.MapHandler
	adminHandler   *handler.AdminHandler
	tileHandler    *handler.TileHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Collector
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		mapHandler:     params.MapHandler,
		adminHandler:   params.AdminHandler,
		tileHandler:    params.TileHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	e.POST("/maps/preview", r.mapHandler.Preview)
	e.GET("/tiles/:z/:x/:y", r.tileHandler.GetTile)

	// Customer map routes
	deliveryGroup := e.Group("/deliveries/:id")
	{
		deliveryGroup.GET("/map", r.mapHandler.GetMap)
		deliveryGroup.GET("/map.geojson", r.mapHandler.GetGeoJSON)
		deliveryGroup.GET("/map/page", r.mapHandler.GetPage)
		deliveryGroup.GET("/map/qrcode", r.mapHandler.GetQRCode)
		deliveryGroup.POST("/map/activate", r.mapHandler.ActivateAt)
		deliveryGroup.POST("/map/locations/:locationId/activate", r.mapHandler.ActivateLocation)
	}

	// Admin routes require a token; the position route also admits couriers
	adminGroup := e.Group("/admin/deliveries/:id")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		admin := r.authMiddleware.RequireRole(entity.RoleAdmin)
		adminGroup.PUT("/map", r.adminHandler.SaveSnapshot, admin)
		adminGroup.DELETE("/map", r.adminHandler.DeleteSnapshot, admin)
		adminGroup.GET("/map/snapshot", r.adminHandler.GetSnapshot, admin)
		adminGroup.PUT("/map/position", r.adminHandler.UpdatePosition,
			r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleCourier))
	}
}
