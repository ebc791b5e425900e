package mapview

import (
	"kuttyport/internal/domain/entity"

	"github.com/paulmach/orb"
)

// LatLng is a [lat, lng] pair, the order map surfaces expect.
type LatLng [2]float64

// Lat returns the latitude.
func (p LatLng) Lat() float64 { return p[0] }

// Lng returns the longitude.
func (p LatLng) Lng() float64 { return p[1] }

// Point converts to an orb point, which is [lng, lat].
func (p LatLng) Point() orb.Point { return orb.Point{p[1], p[0]} }

// FromCoordinate converts an entity coordinate.
func FromCoordinate(c entity.Coordinate) LatLng { return LatLng{c.Lat, c.Lng} }

func fromPoint(p orb.Point) LatLng { return LatLng{p.Lat(), p.Lon()} }

// Viewport is the geographic box the map is fit to.
type Viewport struct {
	SouthWest LatLng `json:"southWest"`
	NorthEast LatLng `json:"northEast"`
	PaddingPx int    `json:"paddingPx"`
	Fallback  bool   `json:"fallback"`
}

// Bounds returns the corners as [[swLat, swLng], [neLat, neLng]].
func (v Viewport) Bounds() [2]LatLng {
	return [2]LatLng{v.SouthWest, v.NorthEast}
}

// Bound returns the viewport as an orb bound.
func (v Viewport) Bound() orb.Bound {
	return orb.Bound{Min: v.SouthWest.Point(), Max: v.NorthEast.Point()}
}

// Contains reports whether the point lies inside the viewport.
func (v Viewport) Contains(p LatLng) bool {
	return v.Bound().Contains(p.Point())
}

// ComputeViewport fits a box around every location and the current position.
// With no locations the box collapses onto the fallback centre, even when a
// current position is known. pad is added on every side in degrees.
func ComputeViewport(locations []entity.Coordinate, current *entity.Coordinate, opts Options) Viewport {
	if len(locations) == 0 {
		center := FromCoordinate(opts.FallbackCenter)

		return Viewport{
			SouthWest: center,
			NorthEast: center,
			PaddingPx: opts.ViewportPaddingPx,
			Fallback:  true,
		}
	}

	points := make(orb.MultiPoint, 0, len(locations)+1)
	for _, c := range locations {
		points = append(points, FromCoordinate(c).Point())
	}
	if current != nil {
		points = append(points, FromCoordinate(*current).Point())
	}

	bound := points.Bound().Pad(opts.BoundsPaddingDeg)

	return Viewport{
		SouthWest: fromPoint(bound.Min),
		NorthEast: fromPoint(bound.Max),
		PaddingPx: opts.ViewportPaddingPx,
	}
}
