package mapview

import (
	"log/slog"

	"kuttyport/internal/domain/entity"
)

// Skip kinds reported in View.Skipped.
const (
	SkipKindLocation = "location"
	SkipKindCurrent  = "current"
	SkipKindRoute    = "route"
)

// ClickHandler receives the full location of an activated marker.
type ClickHandler func(entity.Location)

// Input is one render's snapshot of the map state.
type Input struct {
	Locations          []entity.Location
	Current            *entity.Coordinate
	RoutePath          []entity.Coordinate
	SelectedLocationID *entity.LocationID
}

// InputFromSnapshot builds render input from a stored snapshot.
func InputFromSnapshot(s *entity.Snapshot) Input {
	if s == nil {
		return Input{}
	}

	return Input{
		Locations:          s.Locations,
		Current:            s.CurrentLocation,
		RoutePath:          s.RoutePath,
		SelectedLocationID: s.SelectedLocationID,
	}
}

// Popup is the content shown when a marker is opened.
type Popup struct {
	Name      string          `json:"name"`
	TypeLabel string          `json:"typeLabel"`
	Status    StatusIndicator `json:"status"`
}

// Marker is a location pin.
type Marker struct {
	Key      string          `json:"key"`
	Position LatLng          `json:"position"`
	Icon     Icon            `json:"icon"`
	Popup    Popup           `json:"popup"`
	Location entity.Location `json:"location"`
}

// CurrentMarker is the live position indicator.
type CurrentMarker struct {
	Position LatLng `json:"position"`
	Icon     Icon   `json:"icon"`
}

// SkippedPoint records an input point left out because it is not finite.
type SkippedPoint struct {
	Kind       string `json:"kind"`
	Index      int    `json:"index"`
	LocationID string `json:"locationId,omitempty"`
}

// View is the output of a render.
type View struct {
	Viewport           Viewport           `json:"viewport"`
	Center             LatLng             `json:"center"`
	Zoom               int                `json:"zoom"`
	Tiles              TileLayer          `json:"tiles"`
	Markers            []Marker           `json:"markers"`
	Current            *CurrentMarker     `json:"current,omitempty"`
	Route              *Route             `json:"route,omitempty"`
	SelectedLocationID *entity.LocationID `json:"selectedLocationId,omitempty"`
	Skipped            []SkippedPoint     `json:"skipped,omitempty"`

	byKey map[string]int
	hits  *hitIndex
}

// Marker returns the marker that owns the id. When ids repeat the first
// marker wins.
func (v *View) Marker(id entity.LocationID) (Marker, bool) {
	i, ok := v.byKey[id.Key()]
	if !ok {
		return Marker{}, false
	}

	return v.Markers[i], true
}

// Activate dispatches the marker with the given id to handler exactly once
// and returns its location.
func (v *View) Activate(id entity.LocationID, handler ClickHandler) (entity.Location, bool) {
	marker, ok := v.Marker(id)
	if !ok {
		return entity.Location{}, false
	}

	return v.dispatch(marker, handler), true
}

// ActivateAt dispatches the marker nearest to the point, provided it lies
// within tolerance degrees on both axes.
func (v *View) ActivateAt(point entity.Coordinate, tolerance float64, handler ClickHandler) (entity.Location, bool) {
	if v.hits == nil || !point.IsFinite() {
		return entity.Location{}, false
	}

	i, ok := v.hits.nearest(FromCoordinate(point), tolerance)
	if !ok {
		return entity.Location{}, false
	}

	return v.dispatch(v.Markers[i], handler), true
}

func (v *View) dispatch(marker Marker, handler ClickHandler) entity.Location {
	loc := marker.Location.Clone()
	if handler != nil {
		handler(loc.Clone())
	}

	return loc
}

// Renderer builds views. It is safe for concurrent use; all state lives in
// the read-only options.
type Renderer struct {
	opts   Options
	logger *slog.Logger
}

// NewRenderer creates a renderer.
func NewRenderer(opts Options, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Renderer{opts: opts, logger: logger}
}

// Options returns the renderer's options.
func (r *Renderer) Options() Options {
	return r.opts
}

// Render computes the viewport, route and markers for one input snapshot.
func (r *Renderer) Render(in Input) *View {
	view := &View{
		Zoom:               r.opts.DefaultZoom,
		Tiles:              r.opts.Tiles,
		Markers:            make([]Marker, 0, len(in.Locations)),
		SelectedLocationID: in.SelectedLocationID,
		byKey:              make(map[string]int, len(in.Locations)),
	}

	coords := make([]entity.Coordinate, 0, len(in.Locations))
	for i, loc := range in.Locations {
		if !loc.Coordinate().IsFinite() {
			view.skip(SkipKindLocation, i, loc.ID.String())

			continue
		}

		key := loc.ID.Key()
		if _, dup := view.byKey[key]; dup {
			r.logger.Warn("duplicate location id, first marker keeps click dispatch",
				slog.String("location_id", key),
				slog.Int("index", i),
			)
		} else {
			view.byKey[key] = len(view.Markers)
		}

		coords = append(coords, loc.Coordinate())
		view.Markers = append(view.Markers, r.marker(loc))
	}

	current := in.Current
	if current != nil && !current.IsFinite() {
		view.skip(SkipKindCurrent, 0, "")
		current = nil
	}
	if current != nil {
		view.Current = &CurrentMarker{Position: FromCoordinate(*current), Icon: r.opts.Icons.Current}
	}

	var (
		path    []LatLng
		derived bool
	)
	if len(in.RoutePath) > 0 {
		explicit := make([]entity.Coordinate, 0, len(in.RoutePath))
		for i, c := range in.RoutePath {
			if !c.IsFinite() {
				view.skip(SkipKindRoute, i, "")

				continue
			}
			explicit = append(explicit, c)
		}
		// A supplied path is never replaced by a derived one, even when
		// none of its points survive.
		path, derived = DerivePath(explicit, nil, nil)
	} else {
		path, derived = DerivePath(nil, current, coords)
	}
	view.Route = BuildRoute(path, derived, r.opts.Route)

	view.Viewport = ComputeViewport(coords, current, r.opts)
	view.Center = view.Viewport.center()
	view.hits = newHitIndex(view.Markers, view.byKey)

	if len(view.Skipped) > 0 {
		r.logger.Warn("skipped non-finite points",
			slog.Int("count", len(view.Skipped)),
			slog.Any("skipped", view.Skipped),
		)
	}

	return view
}

func (r *Renderer) marker(loc entity.Location) Marker {
	return Marker{
		Key:      loc.ID.Key(),
		Position: FromCoordinate(loc.Coordinate()),
		Icon:     r.opts.Icons.ForType(loc.Type),
		Popup: Popup{
			Name:      loc.Name,
			TypeLabel: TypeLabel(loc.Type),
			Status:    r.opts.Statuses.ForStatus(loc.Status),
		},
		Location: loc.Clone(),
	}
}

func (v *View) skip(kind string, index int, id string) {
	v.Skipped = append(v.Skipped, SkippedPoint{Kind: kind, Index: index, LocationID: id})
}

func (v Viewport) center() LatLng {
	return LatLng{
		midpoint(v.SouthWest.Lat(), v.NorthEast.Lat()),
		midpoint(v.SouthWest.Lng(), v.NorthEast.Lng()),
	}
}

// midpoint halves before adding so that finite inputs stay finite.
func midpoint(a, b float64) float64 {
	return a/2 + b/2
}
