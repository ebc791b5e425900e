package mapview

import (
	"encoding/json"
	"math"
	"testing"

	"kuttyport/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioLocations() []entity.Location {
	return []entity.Location{
		{ID: entity.NumericID(1), Lat: 10, Lng: 20, Type: entity.LocationTypePickup, Status: entity.LocationStatusPending, Name: "A"},
		{ID: entity.NumericID(2), Lat: 12, Lng: 24, Type: entity.LocationTypeDropoff, Status: entity.LocationStatusCompleted, Name: "B"},
	}
}

func newTestRenderer() *Renderer {
	return NewRenderer(DefaultOptions(), nil)
}

func assertLatLng(t *testing.T, expected, actual LatLng) {
	t.Helper()
	assert.InDelta(t, expected[0], actual[0], 1e-9)
	assert.InDelta(t, expected[1], actual[1], 1e-9)
}

func TestRender_TwoStopScenario(t *testing.T) {
	view := newTestRenderer().Render(Input{Locations: scenarioLocations()})

	bounds := view.Viewport.Bounds()
	assertLatLng(t, LatLng{9.98, 19.98}, bounds[0])
	assertLatLng(t, LatLng{12.02, 24.02}, bounds[1])
	assert.False(t, view.Viewport.Fallback)
	assert.Equal(t, 50, view.Viewport.PaddingPx)

	require.NotNil(t, view.Route)
	assert.Equal(t, []LatLng{{10, 20}, {12, 24}}, view.Route.Path)
	assert.True(t, view.Route.Derived)
	assert.Greater(t, view.Route.LengthMeters, 0.0)
	assert.Len(t, view.Markers, 2)
}

func TestRender_EmptyInputFallsBack(t *testing.T) {
	view := newTestRenderer().Render(Input{})

	bounds := view.Viewport.Bounds()
	assert.Equal(t, LatLng{40.7128, -74.0060}, bounds[0])
	assert.Equal(t, LatLng{40.7128, -74.0060}, bounds[1])
	assert.True(t, view.Viewport.Fallback)
	assert.Empty(t, view.Markers)
	assert.Nil(t, view.Route)
	assert.Nil(t, view.Current)
	assert.Equal(t, 13, view.Zoom)
}

func TestRender_ViewportContainsEveryPointWithPadding(t *testing.T) {
	current := &entity.Coordinate{Lat: -5.5, Lng: 130.25}
	locations := []entity.Location{
		{ID: entity.StringID("a"), Lat: 1.5, Lng: 100},
		{ID: entity.StringID("b"), Lat: -3, Lng: 101.75},
		{ID: entity.StringID("c"), Lat: 7.125, Lng: 99.5},
	}

	view := newTestRenderer().Render(Input{Locations: locations, Current: current})
	pad := DefaultOptions().BoundsPaddingDeg

	points := []entity.Coordinate{*current}
	for _, loc := range locations {
		points = append(points, loc.Coordinate())
	}
	for _, p := range points {
		assert.LessOrEqual(t, view.Viewport.SouthWest.Lat(), p.Lat-pad+1e-12)
		assert.LessOrEqual(t, view.Viewport.SouthWest.Lng(), p.Lng-pad+1e-12)
		assert.GreaterOrEqual(t, view.Viewport.NorthEast.Lat(), p.Lat+pad-1e-12)
		assert.GreaterOrEqual(t, view.Viewport.NorthEast.Lng(), p.Lng+pad-1e-12)
	}

	assertLatLng(t, LatLng{-5.52, 99.48}, view.Viewport.SouthWest)
	assertLatLng(t, LatLng{7.145, 130.27}, view.Viewport.NorthEast)
}

func TestRender_CurrentPositionIgnoredWithoutLocations(t *testing.T) {
	view := newTestRenderer().Render(Input{Current: &entity.Coordinate{Lat: 1, Lng: 2}})

	assert.True(t, view.Viewport.Fallback)
	require.NotNil(t, view.Current)
	assert.Equal(t, LatLng{1, 2}, view.Current.Position)
	assert.Nil(t, view.Route)
}

func TestRender_Route(t *testing.T) {
	current := &entity.Coordinate{Lat: 9, Lng: 19}
	explicit := []entity.Coordinate{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}, {Lat: 3, Lng: 3}}

	tests := []struct {
		name        string
		input       Input
		expected    []LatLng
		wantDerived bool
	}{
		{
			name:     "explicit path wins over locations and current",
			input:    Input{Locations: scenarioLocations(), Current: current, RoutePath: explicit},
			expected: []LatLng{{1, 1}, {2, 2}, {3, 3}},
		},
		{
			name:        "derived path starts at current position",
			input:       Input{Locations: scenarioLocations(), Current: current},
			expected:    []LatLng{{9, 19}, {10, 20}, {12, 24}},
			wantDerived: true,
		},
		{
			name: "derived path keeps input order",
			input: Input{Locations: []entity.Location{
				{ID: entity.NumericID(3), Lat: 50, Lng: 50},
				{ID: entity.NumericID(1), Lat: 0, Lng: 0},
				{ID: entity.NumericID(2), Lat: 49, Lng: 49},
			}},
			expected:    []LatLng{{50, 50}, {0, 0}, {49, 49}},
			wantDerived: true,
		},
		{
			name:        "current plus one location draws a line",
			input:       Input{Locations: scenarioLocations()[:1], Current: current},
			expected:    []LatLng{{9, 19}, {10, 20}},
			wantDerived: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := newTestRenderer().Render(tt.input)

			require.NotNil(t, view.Route)
			assert.Equal(t, tt.expected, view.Route.Path)
			assert.Equal(t, tt.wantDerived, view.Route.Derived)
			assert.Equal(t, DefaultOptions().Route, view.Route.Style)
		})
	}
}

func TestRender_NoRouteBelowTwoPoints(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{name: "nothing", input: Input{}},
		{name: "single location", input: Input{Locations: scenarioLocations()[:1]}},
		{name: "current only", input: Input{Current: &entity.Coordinate{Lat: 1, Lng: 1}}},
		{name: "single explicit point", input: Input{Locations: scenarioLocations(), RoutePath: []entity.Coordinate{{Lat: 5, Lng: 5}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, newTestRenderer().Render(tt.input).Route)
		})
	}
}

func TestRender_MarkersAndPopups(t *testing.T) {
	opts := DefaultOptions()
	current := &entity.Coordinate{Lat: 11, Lng: 22}
	locations := append(scenarioLocations(), entity.Location{
		ID: entity.StringID("c"), Lat: 11, Lng: 21, Name: "C",
		Type: entity.LocationTypeDropoff, Status: entity.LocationStatusInProgress,
	})

	view := NewRenderer(opts, nil).Render(Input{Locations: locations, Current: current})
	require.Len(t, view.Markers, 3)

	assert.Equal(t, opts.Icons.Pickup, view.Markers[0].Icon)
	assert.Equal(t, opts.Icons.Dropoff, view.Markers[1].Icon)
	assert.NotEqual(t, view.Markers[0].Icon, view.Markers[1].Icon)
	require.NotNil(t, view.Current)
	assert.NotEqual(t, view.Current.Icon, view.Markers[0].Icon)
	assert.NotEqual(t, view.Current.Icon, view.Markers[1].Icon)

	assert.Equal(t, Popup{Name: "A", TypeLabel: "Pickup", Status: opts.Statuses.Pending}, view.Markers[0].Popup)
	assert.Equal(t, Popup{Name: "B", TypeLabel: "Drop-off", Status: opts.Statuses.Completed}, view.Markers[1].Popup)
	assert.Equal(t, Popup{Name: "C", TypeLabel: "Drop-off", Status: opts.Statuses.InProgress}, view.Markers[2].Popup)

	labels := map[string]struct{}{}
	for _, s := range []StatusIndicator{opts.Statuses.Pending, opts.Statuses.InProgress, opts.Statuses.Completed} {
		labels[s.Label+s.Color] = struct{}{}
	}
	assert.Len(t, labels, 3)
}

func TestView_ActivateDispatchesFullLocationOnce(t *testing.T) {
	var loc entity.Location
	require.NoError(t, json.Unmarshal([]byte(
		`{"id":"stop-2","lat":12,"lng":24,"name":"B","type":"dropoff","status":"completed","eta":"10:30","parcel":{"count":3}}`,
	), &loc))
	input := Input{Locations: append(scenarioLocations(), loc)}

	view := newTestRenderer().Render(input)

	calls := 0
	var got entity.Location
	returned, ok := view.Activate(entity.StringID("stop-2"), func(l entity.Location) {
		calls++
		got = l
	})

	require.True(t, ok)
	assert.Equal(t, 1, calls)
	assert.Equal(t, loc, got)
	assert.Equal(t, loc, returned)
	assert.Equal(t, "10:30", got.Extra["eta"])
}

func TestView_ActivateUnknownIDDoesNotDispatch(t *testing.T) {
	view := newTestRenderer().Render(Input{Locations: scenarioLocations()})

	_, ok := view.Activate(entity.StringID("missing"), func(entity.Location) {
		t.Fatal("handler must not be called")
	})
	assert.False(t, ok)
}

func TestView_ActivateHandlerCannotMutateView(t *testing.T) {
	input := Input{Locations: []entity.Location{
		{ID: entity.NumericID(1), Lat: 1, Lng: 1, Extra: map[string]any{"note": "fragile"}},
	}}
	view := newTestRenderer().Render(input)

	_, ok := view.Activate(entity.NumericID(1), func(l entity.Location) {
		l.Extra["note"] = "changed"
	})
	require.True(t, ok)

	assert.Equal(t, "fragile", view.Markers[0].Location.Extra["note"])
	assert.Equal(t, "fragile", input.Locations[0].Extra["note"])
}

func TestView_DuplicateIDFirstMarkerWins(t *testing.T) {
	locations := []entity.Location{
		{ID: entity.NumericID(1), Lat: 1, Lng: 1, Name: "first"},
		{ID: entity.StringID("1"), Lat: 2, Lng: 2, Name: "second"},
	}
	view := newTestRenderer().Render(Input{Locations: locations})

	assert.Len(t, view.Markers, 2)
	got, ok := view.Activate(entity.NumericID(1), nil)
	require.True(t, ok)
	assert.Equal(t, "first", got.Name)

	_, ok = view.ActivateAt(entity.Coordinate{Lat: 2, Lng: 2}, 0.001, nil)
	assert.False(t, ok)
}

func TestView_ActivateAt(t *testing.T) {
	view := newTestRenderer().Render(Input{Locations: scenarioLocations()})

	tests := []struct {
		name      string
		point     entity.Coordinate
		tolerance float64
		wantName  string
		wantHit   bool
	}{
		{name: "exact hit", point: entity.Coordinate{Lat: 10, Lng: 20}, tolerance: 0.0005, wantName: "A", wantHit: true},
		{name: "within tolerance", point: entity.Coordinate{Lat: 12.0003, Lng: 23.9998}, tolerance: 0.0005, wantName: "B", wantHit: true},
		{name: "outside tolerance", point: entity.Coordinate{Lat: 11, Lng: 22}, tolerance: 0.0005},
		{name: "zero tolerance", point: entity.Coordinate{Lat: 10, Lng: 20}, tolerance: 0},
		{name: "non-finite point", point: entity.Coordinate{Lat: math.NaN(), Lng: 20}, tolerance: 1},
		{name: "wide tolerance picks nearest", point: entity.Coordinate{Lat: 11.9, Lng: 23.9}, tolerance: 5, wantName: "B", wantHit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			got, ok := view.ActivateAt(tt.point, tt.tolerance, func(entity.Location) { calls++ })

			assert.Equal(t, tt.wantHit, ok)
			if !tt.wantHit {
				assert.Zero(t, calls)

				return
			}
			assert.Equal(t, 1, calls)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestRender_SkipsNonFinitePoints(t *testing.T) {
	locations := append(scenarioLocations(), entity.Location{ID: entity.StringID("bad"), Lat: math.NaN(), Lng: 5})
	input := Input{
		Locations: locations,
		Current:   &entity.Coordinate{Lat: math.Inf(1), Lng: 0},
	}

	view := newTestRenderer().Render(input)

	assert.Len(t, view.Markers, 2)
	assert.Nil(t, view.Current)
	assertLatLng(t, LatLng{9.98, 19.98}, view.Viewport.SouthWest)
	assertLatLng(t, LatLng{12.02, 24.02}, view.Viewport.NorthEast)
	require.NotNil(t, view.Route)
	assert.Equal(t, []LatLng{{10, 20}, {12, 24}}, view.Route.Path)
	assert.Equal(t, []SkippedPoint{
		{Kind: SkipKindLocation, Index: 2, LocationID: "bad"},
		{Kind: SkipKindCurrent},
	}, view.Skipped)
}

func TestRender_AllLocationsNonFiniteFallsBack(t *testing.T) {
	view := newTestRenderer().Render(Input{Locations: []entity.Location{
		{ID: entity.NumericID(1), Lat: math.NaN(), Lng: math.NaN()},
	}})

	assert.True(t, view.Viewport.Fallback)
	assert.Empty(t, view.Markers)
	assert.Len(t, view.Skipped, 1)
}

func TestRender_ExplicitRouteDropsNonFinitePoints(t *testing.T) {
	view := newTestRenderer().Render(Input{RoutePath: []entity.Coordinate{
		{Lat: 1, Lng: 1}, {Lat: math.NaN(), Lng: 0}, {Lat: 2, Lng: 2},
	}})

	require.NotNil(t, view.Route)
	assert.Equal(t, []LatLng{{1, 1}, {2, 2}}, view.Route.Path)
	assert.False(t, view.Route.Derived)
	assert.Equal(t, []SkippedPoint{{Kind: SkipKindRoute, Index: 1}}, view.Skipped)
}

func TestRender_UnusableExplicitRouteIsNotDerived(t *testing.T) {
	view := newTestRenderer().Render(Input{
		Locations: scenarioLocations(),
		RoutePath: []entity.Coordinate{{Lat: math.Inf(1), Lng: 0}},
	})

	assert.Nil(t, view.Route)
	assert.Len(t, view.Skipped, 1)
}

func TestRender_HugeFiniteCoordinatesKeepCenterFinite(t *testing.T) {
	view := newTestRenderer().Render(Input{Locations: []entity.Location{
		{ID: entity.NumericID(1), Lat: 1.7e308, Lng: 1},
		{ID: entity.NumericID(2), Lat: 1.7e308, Lng: 2},
	}})

	assert.False(t, math.IsInf(view.Center.Lat(), 0))
	assert.InDelta(t, 1.5, view.Center.Lng(), 1e-9)

	_, err := json.Marshal(view)
	assert.NoError(t, err)
}

func TestRender_EchoesSelectedLocation(t *testing.T) {
	selected := entity.NumericID(2)
	view := newTestRenderer().Render(Input{Locations: scenarioLocations(), SelectedLocationID: &selected})

	require.NotNil(t, view.SelectedLocationID)
	assert.Equal(t, selected, *view.SelectedLocationID)
}

func TestRender_ConcurrentRendersDoNotInteract(t *testing.T) {
	r := newTestRenderer()
	done := make(chan *View, 2)

	go func() { done <- r.Render(Input{Locations: scenarioLocations()}) }()
	go func() { done <- r.Render(Input{}) }()

	first, second := <-done, <-done
	if first.Viewport.Fallback {
		first, second = second, first
	}
	assert.Len(t, first.Markers, 2)
	assert.Empty(t, second.Markers)
	assert.True(t, second.Viewport.Fallback)
}

func TestInputFromSnapshot(t *testing.T) {
	assert.Equal(t, Input{}, InputFromSnapshot(nil))

	selected := entity.NumericID(1)
	snap := &entity.Snapshot{
		Locations:          scenarioLocations(),
		CurrentLocation:    &entity.Coordinate{Lat: 1, Lng: 2},
		RoutePath:          []entity.Coordinate{{Lat: 3, Lng: 4}},
		SelectedLocationID: &selected,
	}
	in := InputFromSnapshot(snap)

	assert.Equal(t, snap.Locations, in.Locations)
	assert.Equal(t, snap.CurrentLocation, in.Current)
	assert.Equal(t, snap.RoutePath, in.RoutePath)
	assert.Equal(t, snap.SelectedLocationID, in.SelectedLocationID)
}
