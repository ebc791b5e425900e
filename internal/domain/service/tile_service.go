package service

import "context"

// Tile is one encoded map tile.
type Tile struct {
	Data    []byte
	Headers map[string]string
}

// TileService serves tiles for the map surface's tile layer.
type TileService interface {
	// GetTile returns the tile at z/x/y.
	GetTile(ctx context.Context, z, x, y uint32) (*Tile, error)

	// Enabled reports whether a tile archive is configured.
	Enabled() bool
}
