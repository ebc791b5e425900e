package mapview

import (
	"kuttyport/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// minRoutePoints is the shortest path that is drawn as a line.
const minRoutePoints = 2

// Route is the overlay connecting the stops.
type Route struct {
	Path         []LatLng   `json:"path"`
	Derived      bool       `json:"derived"`
	Style        RouteStyle `json:"style"`
	LengthMeters float64    `json:"lengthMeters"`
}

// LineString returns the route as an orb line string.
func (r *Route) LineString() orb.LineString {
	ls := make(orb.LineString, len(r.Path))
	for i, p := range r.Path {
		ls[i] = p.Point()
	}

	return ls
}

// DerivePath returns the explicit path when it has any point. Otherwise it
// starts at the current position, if known, and visits the locations in the
// order given. The second result reports whether the path was derived.
func DerivePath(explicit []entity.Coordinate, current *entity.Coordinate, locations []entity.Coordinate) ([]LatLng, bool) {
	if len(explicit) > 0 {
		path := make([]LatLng, len(explicit))
		for i, c := range explicit {
			path[i] = FromCoordinate(c)
		}

		return path, false
	}

	path := make([]LatLng, 0, len(locations)+1)
	if current != nil {
		path = append(path, FromCoordinate(*current))
	}
	for _, c := range locations {
		path = append(path, FromCoordinate(c))
	}

	return path, true
}

// BuildRoute wraps a path into an overlay, or returns nil when the path is
// too short to draw.
func BuildRoute(path []LatLng, derived bool, style RouteStyle) *Route {
	if len(path) < minRoutePoints {
		return nil
	}

	route := &Route{
		Path:    path,
		Derived: derived,
		Style:   style,
	}
	route.LengthMeters = geo.LengthHaversine(route.LineString())

	return route
}
