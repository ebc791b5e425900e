package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"map": map[string]any{
			"boundsPaddingDeg": 0.02,
			"fallbackCenter": map[string]any{
				"lat": 40.7128,
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "MAP_BOUNDSPADDINGDEG", want: "map.boundsPaddingDeg"},
		{envKey: "MAP_FALLBACKCENTER_LAT", want: "map.fallbackCenter.lat"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Map == nil {
		t.Fatal("map section was not defaulted")
	}
	if cfg.Map.FallbackCenter.Lat != 40.7128 || cfg.Map.FallbackCenter.Lng != -74.0060 {
		t.Fatalf("fallback center = %+v", cfg.Map.FallbackCenter)
	}
	if cfg.Map.BoundsPaddingDeg != 0.02 {
		t.Fatalf("bounds padding = %v, want 0.02", cfg.Map.BoundsPaddingDeg)
	}
	if cfg.Map.ViewportPaddingPx != 50 {
		t.Fatalf("viewport padding = %d, want 50", cfg.Map.ViewportPaddingPx)
	}
	if cfg.Storage == nil || cfg.Storage.Driver != StorageDriverMemory {
		t.Fatalf("storage = %+v, want memory driver", cfg.Storage)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Map: &MapConfig{
			FallbackCenter:   CoordinateConfig{Lat: 13.0827, Lng: 80.2707},
			BoundsPaddingDeg: 0.05,
			Route:            RouteStyleConfig{Color: "#000000", Weight: 2},
		},
		Storage: &StorageConfig{Driver: StorageDriverPostgres},
	}
	applyDefaults(cfg)

	if cfg.Map.FallbackCenter.Lat != 13.0827 {
		t.Fatalf("fallback center overwritten: %+v", cfg.Map.FallbackCenter)
	}
	if cfg.Map.BoundsPaddingDeg != 0.05 {
		t.Fatalf("bounds padding overwritten: %v", cfg.Map.BoundsPaddingDeg)
	}
	if cfg.Map.Route.Color != "#000000" {
		t.Fatalf("route style overwritten: %+v", cfg.Map.Route)
	}
	if cfg.Map.DefaultZoom != 13 {
		t.Fatalf("default zoom = %d, want 13", cfg.Map.DefaultZoom)
	}
	if cfg.Storage.Driver != StorageDriverPostgres {
		t.Fatalf("storage driver overwritten: %s", cfg.Storage.Driver)
	}
}
