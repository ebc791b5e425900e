package entity

import (
	"bytes"
	"encoding/json"
	"maps"
	"math"

	"kuttyport/internal/errors"
)

// ErrMissingCoordinate is returned when a location payload has no lat or lng.
var ErrMissingCoordinate = errors.New("location requires both lat and lng")

// Coordinate is a WGS84 position in degrees.
type Coordinate struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// IsFinite reports whether both components are real numbers.
func (c Coordinate) IsFinite() bool {
	return isFinite(c.Lat) && isFinite(c.Lng)
}

// UnmarshalJSON accepts {"lat":..,"lng":..} or a [lat, lng] pair.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) != 2 {
			return errors.Errorf("coordinate pair must have 2 elements, got %d", len(pair))
		}
		c.Lat, c.Lng = pair[0], pair[1]

		return nil
	}

	var obj struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.Wrap(err, "invalid coordinate")
	}
	if obj.Lat == nil || obj.Lng == nil {
		return ErrMissingCoordinate
	}
	c.Lat, c.Lng = *obj.Lat, *obj.Lng

	return nil
}

// Location is a stop shown on a delivery map. Keys the map does not know
// about are kept in Extra and written back unchanged.
type Location struct {
	ID     LocationID     `json:"id" validate:"required"`
	Lat    float64        `json:"lat" validate:"latitude"`
	Lng    float64        `json:"lng" validate:"longitude"`
	Name   string         `json:"name"`
	Type   LocationType   `json:"type" validate:"oneof=pickup dropoff"`
	Status LocationStatus `json:"status" validate:"oneof=pending in-progress completed"`
	Extra  map[string]any `json:"-"`
}

var knownLocationKeys = map[string]struct{}{
	"id": {}, "lat": {}, "lng": {}, "name": {}, "type": {}, "status": {},
}

// Coordinate returns the location's position.
func (l Location) Coordinate() Coordinate {
	return Coordinate{Lat: l.Lat, Lng: l.Lng}
}

// Clone copies the location so the copy's Extra map can be handed out safely.
func (l Location) Clone() Location {
	l.Extra = maps.Clone(l.Extra)

	return l
}

// MarshalJSON implements json.Marshaler, merging Extra into the object.
func (l Location) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(l.Extra)+len(knownLocationKeys))
	for k, v := range l.Extra {
		out[k] = v
	}
	out["id"] = l.ID
	out["lat"] = l.Lat
	out["lng"] = l.Lng
	out["name"] = l.Name
	out["type"] = l.Type
	out["status"] = l.Status

	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. lat and lng must be present;
// the remaining fields are checked by validation.
func (l *Location) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "invalid location")
	}

	var known struct {
		ID     LocationID     `json:"id"`
		Lat    *float64       `json:"lat"`
		Lng    *float64       `json:"lng"`
		Name   string         `json:"name"`
		Type   LocationType   `json:"type"`
		Status LocationStatus `json:"status"`
	}
	if err := json.Unmarshal(data, &known); err != nil {
		return errors.Wrap(err, "invalid location")
	}
	if known.Lat == nil || known.Lng == nil {
		return errors.Wrapf(ErrMissingCoordinate, "location %q", known.ID.String())
	}

	var extra map[string]any
	for key, value := range raw {
		if _, ok := knownLocationKeys[key]; ok {
			continue
		}
		decoded, err := decodeExtra(value)
		if err != nil {
			return errors.Wrapf(err, "invalid location field %q", key)
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key] = decoded
	}

	*l = Location{
		ID:     known.ID,
		Lat:    *known.Lat,
		Lng:    *known.Lng,
		Name:   known.Name,
		Type:   known.Type,
		Status: known.Status,
		Extra:  extra,
	}

	return nil
}

// decodeExtra keeps numbers as json.Number so that integers beyond float64
// precision are written back digit for digit.
func decodeExtra(value json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(value))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, err
	}

	return decoded, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
