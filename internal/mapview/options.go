// Package mapview turns a delivery snapshot into a renderable map view: the
// viewport that fits every stop, the route overlay, and the marker and popup
// descriptors the map surface draws.
package mapview

import (
	"kuttyport/config"
	"kuttyport/internal/domain/entity"
)

// Icon describes how a marker glyph is drawn by the map surface.
type Icon struct {
	Kind      string `json:"kind"`
	Glyph     string `json:"glyph"`
	Color     string `json:"color"`
	ClassName string `json:"className"`
	Size      [2]int `json:"size"`
	Anchor    [2]int `json:"anchor"`
	PopupAt   [2]int `json:"popupAnchor"`
}

// IconSet holds the three marker treatments.
type IconSet struct {
	Pickup  Icon
	Dropoff Icon
	Current Icon
}

// ForType picks the glyph for a location type. Anything that is not a pickup
// is drawn as a drop-off.
func (s IconSet) ForType(t entity.LocationType) Icon {
	if t == entity.LocationTypePickup {
		return s.Pickup
	}

	return s.Dropoff
}

// StatusIndicator is the status badge shown in a popup.
type StatusIndicator struct {
	Status entity.LocationStatus `json:"status"`
	Label  string                `json:"label"`
	Color  string                `json:"color"`
	Glyph  string                `json:"glyph"`
}

// StatusSet holds the three popup status treatments.
type StatusSet struct {
	Pending    StatusIndicator
	InProgress StatusIndicator
	Completed  StatusIndicator
}

// ForStatus picks the badge for a status. Unknown values read as pending.
func (s StatusSet) ForStatus(status entity.LocationStatus) StatusIndicator {
	switch status {
	case entity.LocationStatusCompleted:
		return s.Completed
	case entity.LocationStatusInProgress:
		return s.InProgress
	default:
		return s.Pending
	}
}

// RouteStyle is the stroke of the route overlay.
type RouteStyle struct {
	Color     string  `json:"color"`
	Weight    int     `json:"weight"`
	Opacity   float64 `json:"opacity"`
	DashArray string  `json:"dashArray,omitempty"`
}

// TileLayer is the tile source of the map surface.
type TileLayer struct {
	URLTemplate string `json:"urlTemplate"`
	Attribution string `json:"attribution"`
	MaxZoom     int    `json:"maxZoom"`
}

// Options is the read-only configuration of a Renderer. It is passed by value
// so a renderer never shares mutable state with its caller.
type Options struct {
	FallbackCenter    entity.Coordinate
	DefaultZoom       int
	BoundsPaddingDeg  float64
	ViewportPaddingPx int
	HitToleranceDeg   float64
	Route             RouteStyle
	Tiles             TileLayer
	Icons             IconSet
	Statuses          StatusSet
}

// DefaultOptions mirrors config.DefaultMapConfig with the stock icon set.
func DefaultOptions() Options {
	return NewOptions(config.DefaultMapConfig())
}

// NewOptions builds renderer options from the map configuration.
func NewOptions(cfg *config.MapConfig) Options {
	if cfg == nil {
		cfg = config.DefaultMapConfig()
	}

	return Options{
		FallbackCenter:    entity.Coordinate{Lat: cfg.FallbackCenter.Lat, Lng: cfg.FallbackCenter.Lng},
		DefaultZoom:       cfg.DefaultZoom,
		BoundsPaddingDeg:  cfg.BoundsPaddingDeg,
		ViewportPaddingPx: cfg.ViewportPaddingPx,
		HitToleranceDeg:   cfg.HitToleranceDeg,
		Route: RouteStyle{
			Color:     cfg.Route.Color,
			Weight:    cfg.Route.Weight,
			Opacity:   cfg.Route.Opacity,
			DashArray: cfg.Route.DashArray,
		},
		Tiles: TileLayer{
			URLTemplate: cfg.Tiles.URLTemplate,
			Attribution: cfg.Tiles.Attribution,
			MaxZoom:     cfg.Tiles.MaxZoom,
		},
		Icons:    defaultIcons(),
		Statuses: defaultStatuses(),
	}
}

func defaultIcons() IconSet {
	marker := func(kind, glyph, color string) Icon {
		return Icon{
			Kind:      kind,
			Glyph:     glyph,
			Color:     color,
			ClassName: "kp-marker kp-marker--" + kind,
			Size:      [2]int{32, 32},
			Anchor:    [2]int{16, 32},
			PopupAt:   [2]int{0, -32},
		}
	}

	current := marker("current", "🚚", "#3b82f6")
	current.ClassName = "kp-marker kp-marker--current kp-marker--pulse"
	current.Size = [2]int{24, 24}
	current.Anchor = [2]int{12, 12}
	current.PopupAt = [2]int{0, -12}

	return IconSet{
		Pickup:  marker("pickup", "📦", "#10b981"),
		Dropoff: marker("dropoff", "📍", "#ef4444"),
		Current: current,
	}
}

func defaultStatuses() StatusSet {
	return StatusSet{
		Pending:    StatusIndicator{Status: entity.LocationStatusPending, Label: "Pending", Color: "#f59e0b", Glyph: "⏳"},
		InProgress: StatusIndicator{Status: entity.LocationStatusInProgress, Label: "In Progress", Color: "#3b82f6", Glyph: "🚚"},
		Completed:  StatusIndicator{Status: entity.LocationStatusCompleted, Label: "Completed", Color: "#10b981", Glyph: "✅"},
	}
}

// TypeLabel is the popup label for a location type.
func TypeLabel(t entity.LocationType) string {
	if t == entity.LocationTypePickup {
		return "Pickup"
	}

	return "Drop-off"
}
