package entity

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_UnmarshalKeepsExtraFields(t *testing.T) {
	payload := `{"id":1,"lat":10,"lng":20,"name":"A","type":"pickup","status":"pending","eta":"10:30","parcel":{"weightKg":2.5}}`

	var loc Location
	require.NoError(t, json.Unmarshal([]byte(payload), &loc))

	assert.Equal(t, NumericID(1), loc.ID)
	assert.Equal(t, 10.0, loc.Lat)
	assert.Equal(t, 20.0, loc.Lng)
	assert.Equal(t, LocationTypePickup, loc.Type)
	assert.Equal(t, LocationStatusPending, loc.Status)
	assert.Equal(t, "10:30", loc.Extra["eta"])
	assert.Equal(t, map[string]any{"weightKg": json.Number("2.5")}, loc.Extra["parcel"])
}

func TestLocation_RoundTripPreservesIDKindAndExtras(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "numeric id", payload: `{"id":7,"lat":1.5,"lng":2.5,"name":"Dock","type":"dropoff","status":"completed"}`},
		{name: "string id", payload: `{"id":"stop-7","lat":1.5,"lng":2.5,"name":"Dock","type":"dropoff","status":"completed","gate":"B"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var loc Location
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &loc))

			out, err := json.Marshal(loc)
			require.NoError(t, err)
			assert.JSONEq(t, tt.payload, string(out))
		})
	}
}

func TestLocation_RoundTripKeepsLargeIntegers(t *testing.T) {
	payload := `{"id":1,"lat":1,"lng":1,"name":"","type":"","status":"","ref":9007199254740993,"meta":{"seq":[18446744073709551615,0.1]}}`

	var loc Location
	require.NoError(t, json.Unmarshal([]byte(payload), &loc))
	assert.Equal(t, json.Number("9007199254740993"), loc.Extra["ref"])

	out, err := json.Marshal(loc)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"ref":9007199254740993`)
	assert.Contains(t, string(out), `"seq":[18446744073709551615,0.1]`)
}

func TestLocation_UnmarshalRequiresCoordinates(t *testing.T) {
	var loc Location
	err := json.Unmarshal([]byte(`{"id":1,"lat":10,"name":"A","type":"pickup","status":"pending"}`), &loc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingCoordinate)
}

func TestLocation_CloneDetachesExtra(t *testing.T) {
	loc := Location{ID: StringID("a"), Extra: map[string]any{"note": "fragile"}}
	clone := loc.Clone()
	clone.Extra["note"] = "changed"

	assert.Equal(t, "fragile", loc.Extra["note"])
}

func TestLocationID_UnmarshalRejectsOtherKinds(t *testing.T) {
	var id LocationID
	assert.Error(t, json.Unmarshal([]byte(`true`), &id))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &id))
}

func TestParseLocationID(t *testing.T) {
	assert.True(t, ParseLocationID("42").IsNumeric())
	assert.False(t, ParseLocationID("stop-42").IsNumeric())
	assert.False(t, ParseLocationID("NaN").IsNumeric())
	assert.Equal(t, NumericID(42).Key(), ParseLocationID("42").Key())
}

func TestCoordinate_UnmarshalAcceptsPairAndObject(t *testing.T) {
	var pair, obj Coordinate
	require.NoError(t, json.Unmarshal([]byte(`[12.5, 77.25]`), &pair))
	require.NoError(t, json.Unmarshal([]byte(`{"lat":12.5,"lng":77.25}`), &obj))
	assert.Equal(t, pair, obj)

	var bad Coordinate
	assert.Error(t, json.Unmarshal([]byte(`[12.5]`), &bad))
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"lat":12.5}`), &bad), ErrMissingCoordinate)
}

func TestCoordinate_IsFinite(t *testing.T) {
	assert.True(t, Coordinate{Lat: 1, Lng: 2}.IsFinite())
	assert.False(t, Coordinate{Lat: math.NaN(), Lng: 2}.IsFinite())
	assert.False(t, Coordinate{Lat: 1, Lng: math.Inf(-1)}.IsFinite())
}

func TestSnapshot_CloneIsIndependent(t *testing.T) {
	selected := StringID("a")
	snap := &Snapshot{
		Locations:          []Location{{ID: StringID("a"), Extra: map[string]any{"k": "v"}}},
		CurrentLocation:    &Coordinate{Lat: 1, Lng: 2},
		RoutePath:          []Coordinate{{Lat: 1, Lng: 2}},
		SelectedLocationID: &selected,
	}

	clone := snap.Clone()
	clone.Locations[0].Extra["k"] = "changed"
	clone.CurrentLocation.Lat = 9
	clone.RoutePath[0].Lat = 9

	assert.Equal(t, "v", snap.Locations[0].Extra["k"])
	assert.Equal(t, 1.0, snap.CurrentLocation.Lat)
	assert.Equal(t, 1.0, snap.RoutePath[0].Lat)
}
