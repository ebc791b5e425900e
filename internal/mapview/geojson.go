package mapview

import (
	"github.com/paulmach/orb/geojson"
)

// Feature kinds written to the "kind" property.
const (
	FeatureKindMarker  = "marker"
	FeatureKindCurrent = "current"
	FeatureKindRoute   = "route"
)

// FeatureCollection exports the view as GeoJSON. Markers become Points, the
// live position a Point, the route a LineString, and the viewport the bbox.
func (v *View) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.BBox = geojson.NewBBox(v.Viewport.Bound())

	for _, m := range v.Markers {
		f := geojson.NewFeature(m.Position.Point())
		f.ID = m.Key
		f.Properties = geojson.Properties{
			"kind":        FeatureKindMarker,
			"id":          m.Location.ID,
			"name":        m.Popup.Name,
			"type":        m.Location.Type,
			"typeLabel":   m.Popup.TypeLabel,
			"status":      m.Location.Status,
			"statusLabel": m.Popup.Status.Label,
			"icon":        m.Icon.Kind,
		}
		if len(m.Location.Extra) > 0 {
			f.Properties["extra"] = m.Location.Extra
		}
		fc.Append(f)
	}

	if v.Current != nil {
		f := geojson.NewFeature(v.Current.Position.Point())
		f.Properties = geojson.Properties{
			"kind": FeatureKindCurrent,
			"icon": v.Current.Icon.Kind,
		}
		fc.Append(f)
	}

	if v.Route != nil {
		f := geojson.NewFeature(v.Route.LineString())
		f.Properties = geojson.Properties{
			"kind":         FeatureKindRoute,
			"derived":      v.Route.Derived,
			"lengthMeters": v.Route.LengthMeters,
			"color":        v.Route.Style.Color,
			"weight":       v.Route.Style.Weight,
			"opacity":      v.Route.Style.Opacity,
			"dashArray":    v.Route.Style.DashArray,
		}
		fc.Append(f)
	}

	return fc
}
