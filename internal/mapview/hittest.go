package mapview

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb/geo"
)

const (
	hitDimensions  = 2
	hitMinChildren = 4
	hitMaxChildren = 16
	// markerExtent gives each marker a non-degenerate box in the tree.
	markerExtent = 1e-9
)

// hitEntry is a marker stored in the tree. Points are indexed as [lng, lat].
type hitEntry struct {
	marker int
	pos    LatLng
	rect   *rtreego.Rect
}

func (e *hitEntry) Bounds() *rtreego.Rect {
	return e.rect
}

// hitIndex resolves map clicks to markers.
type hitIndex struct {
	tree *rtreego.Rtree
}

// newHitIndex indexes the markers that own click dispatch for their id.
func newHitIndex(markers []Marker, owners map[string]int) *hitIndex {
	tree := rtreego.NewTree(hitDimensions, hitMinChildren, hitMaxChildren)
	for _, i := range owners {
		pos := markers[i].Position
		tree.Insert(&hitEntry{
			marker: i,
			pos:    pos,
			rect:   rtreego.Point{pos.Lng(), pos.Lat()}.ToRect(markerExtent),
		})
	}

	return &hitIndex{tree: tree}
}

// nearest returns the marker closest to p among those within tol degrees.
// Ties go to the marker that came first in the input.
func (h *hitIndex) nearest(p LatLng, tol float64) (int, bool) {
	if tol <= 0 || math.IsNaN(tol) || h.tree.Size() == 0 {
		return 0, false
	}

	query := rtreego.Point{p.Lng(), p.Lat()}.ToRect(tol)
	hits := h.tree.SearchIntersect(query)
	if len(hits) == 0 {
		return 0, false
	}

	best, bestDist := -1, math.Inf(1)
	for _, hit := range hits {
		entry := hit.(*hitEntry)
		d := geo.Distance(p.Point(), entry.pos.Point())
		if d < bestDist || (d == bestDist && entry.marker < best) {
			best, bestDist = entry.marker, d
		}
	}

	return best, true
}
