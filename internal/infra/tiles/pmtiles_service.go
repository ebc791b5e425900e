// Package tiles serves the map's tile layer from a PMTiles archive.
package tiles

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"kuttyport/config"
	domainerrors "kuttyport/internal/domain/errors"
	"kuttyport/internal/domain/service"

	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
	"github.com/protomaps/go-pmtiles/pmtiles"
	"go.uber.org/fx"
)

const (
	defaultExtension = "mvt"
	defaultCacheSize = 64
	// maxZoom bounds z so that 1<<z fits the tile coordinate type.
	maxZoom = 24
)

// tileGetter is the part of *pmtiles.Server the service needs.
type tileGetter interface {
	Get(ctx context.Context, path string) (int, map[string]string, []byte)
}

// pmtilesService implements service.TileService using a PMTiles archive
type pmtilesService struct {
	tilesetName string
	extension   string
	server      tileGetter
	logger      *slog.Logger
}

// disabledService answers every request with ErrTilesDisabled.
type disabledService struct{}

func (disabledService) GetTile(context.Context, uint32, uint32, uint32) (*service.Tile, error) {
	return nil, domainerrors.ErrTilesDisabled
}

func (disabledService) Enabled() bool { return false }

// ServiceParams holds dependencies for the tile service
type ServiceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPMTilesService creates the tile service. Without an enabled pmtiles
// section it returns a service that reports tiles as disabled.
func NewPMTilesService(params ServiceParams) (service.TileService, error) {
	cfg := params.Config.PMTiles
	logger := params.Logger

	if cfg == nil || !cfg.Enabled {
		logger.Info("PMTiles tile layer disabled")

		return disabledService{}, nil
	}

	if cfg.Source == "" {
		return nil, errors.New("PMTiles source is required when enabled")
	}

	extension := strings.TrimPrefix(cfg.Extension, ".")
	if extension == "" {
		extension = defaultExtension
	}
	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}

	// The PMTiles server expects a bucket (directory) and looks for {name}.pmtiles files
	bucketPath, tilesetName := parseSourcePath(cfg.Source)

	// pmtiles logs through the standard logger; its output is dropped in favour of slog
	silentLogger := log.New(io.Discard, "", 0)

	server, err := pmtiles.NewServer(bucketPath, "", silentLogger, cacheSize, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PMTiles server")
	}
	server.Start()

	logger.Info("PMTiles tile layer initialized",
		slog.String("source", cfg.Source),
		slog.String("tileset", tilesetName),
		slog.String("extension", extension),
		slog.Int("cache_size", cacheSize),
	)

	return newPMTilesService(server, tilesetName, extension, logger), nil
}

func newPMTilesService(server tileGetter, tilesetName, extension string, logger *slog.Logger) *pmtilesService {
	return &pmtilesService{
		tilesetName: tilesetName,
		extension:   extension,
		server:      server,
		logger:      logger,
	}
}

// GetTile fetches one tile from the archive
func (s *pmtilesService) GetTile(ctx context.Context, z, x, y uint32) (*service.Tile, error) {
	tile, err := validTile(z, x, y)
	if err != nil {
		return nil, err
	}

	tilePath := fmt.Sprintf("/%s/%d/%d/%d.%s", s.tilesetName, tile.Z, tile.X, tile.Y, s.extension)
	statusCode, headers, data := s.server.Get(ctx, tilePath)

	switch {
	case statusCode == http.StatusOK:
		return &service.Tile{Data: data, Headers: headers}, nil
	case statusCode == http.StatusNoContent, statusCode == http.StatusNotFound:
		return nil, domainerrors.ErrTileNotFound
	default:
		s.logger.WarnContext(ctx, "PMTiles returned unexpected status",
			slog.String("path", tilePath),
			slog.Int("status", statusCode),
		)

		return nil, errors.Errorf("unexpected status code %d for tile %s", statusCode, tilePath)
	}
}

// Enabled reports that an archive is configured
func (s *pmtilesService) Enabled() bool {
	return true
}

// validTile checks that x and y exist at zoom z.
func validTile(z, x, y uint32) (maptile.Tile, error) {
	if z > maxZoom {
		return maptile.Tile{}, domainerrors.ErrInvalidTile.WithDetails(fmt.Sprintf("zoom %d exceeds %d", z, maxZoom))
	}

	limit := uint32(1) << z
	if x >= limit || y >= limit {
		return maptile.Tile{}, domainerrors.ErrInvalidTile.WithDetails(fmt.Sprintf("tile %d/%d/%d is outside the zoom level", z, x, y))
	}

	return maptile.New(x, y, maptile.Zoom(z)), nil
}

// parseSourcePath extracts the bucket directory and tileset name from a source path.
// Examples:
//   - "file:///path/to/city.pmtiles" -> ("file:///path/to", "city")
//   - "/path/to/city.pmtiles" -> ("file:///path/to", "city")
//   - "https://example.com/tiles/city.pmtiles" -> ("https://example.com/tiles", "city")
func parseSourcePath(source string) (bucketPath, tilesetName string) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if lastSlash := strings.LastIndex(source, "/"); lastSlash > strings.Index(source, "://")+2 {
			return source[:lastSlash], strings.TrimSuffix(source[lastSlash+1:], ".pmtiles")
		}
	}

	path := strings.TrimPrefix(source, "file://")
	tilesetName = strings.TrimSuffix(filepath.Base(path), ".pmtiles")

	return "file://" + filepath.Dir(path), tilesetName
}
