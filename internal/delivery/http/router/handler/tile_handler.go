package handler

import (
	"net/http"
	"strconv"
	"strings"

	domainerrors "kuttyport/internal/domain/errors"
	"kuttyport/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const tileMaxAgeSeconds = 86400

// TileHandlerParams holds dependencies for TileHandler, injected by Fx.
type TileHandlerParams struct {
	fx.In

	TileService service.TileService
}

// TileHandler serves the self-hosted map tiles
type TileHandler struct {
	tiles service.TileService
}

// NewTileHandler is the constructor for TileHandler
func NewTileHandler(params TileHandlerParams) *TileHandler {
	return &TileHandler{tiles: params.TileService}
}

// GetTile returns the tile at /tiles/:z/:x/:y. The y segment may carry a file
// extension such as 5461.mvt.
func (h *TileHandler) GetTile(c echo.Context) error {
	y, _, _ := strings.Cut(c.Param("y"), ".")

	var coords [3]uint32
	for i, raw := range []string{c.Param("z"), c.Param("x"), y} {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return domainerrors.ErrInvalidTile.WithDetails("tile coordinates must be non-negative integers")
		}
		coords[i] = uint32(n)
	}

	tile, err := h.tiles.GetTile(c.Request().Context(), coords[0], coords[1], coords[2])
	if err != nil {
		return err
	}

	header := c.Response().Header()
	contentType := echo.MIMEOctetStream
	for key, value := range tile.Headers {
		if strings.EqualFold(key, echo.HeaderContentType) {
			contentType = value

			continue
		}
		header.Set(key, value)
	}
	if header.Get("Cache-Control") == "" {
		header.Set("Cache-Control", "public, max-age="+strconv.Itoa(tileMaxAgeSeconds))
	}

	return c.Blob(http.StatusOK, contentType, tile.Data)
}
