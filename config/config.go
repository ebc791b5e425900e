package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "1MB"
)

// Storage drivers for delivery map snapshots.
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// EnvConfig describes the running environment and its logging
type EnvConfig struct {
	Env         string `json:"env" yaml:"env"`
	ServiceName string `json:"serviceName" yaml:"serviceName"`
	Debug       bool   `json:"debug" yaml:"debug"`
	Log         Log    `json:"log" yaml:"log"`
}

type Config struct {
	Env EnvConfig `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Map holds the renderer tunables
	Map *MapConfig `json:"map" yaml:"map"`

	// Storage selects where delivery snapshots are kept
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Tracking configuration for public tracking links
	Tracking *TrackingConfig `json:"tracking" yaml:"tracking"`

	// QRCode configuration for tracking QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// PMTiles configuration for the self-hosted tile layer
	PMTiles *PMTilesConfig `json:"pmtiles" yaml:"pmtiles"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MapConfig defines the delivery map renderer tunables
type MapConfig struct {
	FallbackCenter    CoordinateConfig `json:"fallbackCenter" yaml:"fallbackCenter"`
	DefaultZoom       int              `json:"defaultZoom" yaml:"defaultZoom"`
	BoundsPaddingDeg  float64          `json:"boundsPaddingDeg" yaml:"boundsPaddingDeg"`
	ViewportPaddingPx int              `json:"viewportPaddingPx" yaml:"viewportPaddingPx"`

	// Maximum distance in degrees between a clicked point and a marker for the click to hit it
	HitToleranceDeg float64 `json:"hitToleranceDeg" yaml:"hitToleranceDeg"`

	Route RouteStyleConfig `json:"route" yaml:"route"`
	Tiles TileLayerConfig  `json:"tiles" yaml:"tiles"`
}

// CoordinateConfig is a lat/lng pair in configuration files
type CoordinateConfig struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// RouteStyleConfig defines how the route overlay is drawn
type RouteStyleConfig struct {
	Color     string  `json:"color" yaml:"color"`
	Weight    int     `json:"weight" yaml:"weight"`
	Opacity   float64 `json:"opacity" yaml:"opacity"`
	DashArray string  `json:"dashArray" yaml:"dashArray"`
}

// TileLayerConfig defines the tile source of the map surface
type TileLayerConfig struct {
	URLTemplate string `json:"urlTemplate" yaml:"urlTemplate"`
	Attribution string `json:"attribution" yaml:"attribution"`
	MaxZoom     int    `json:"maxZoom" yaml:"maxZoom"`
}

// StorageConfig defines snapshot storage
type StorageConfig struct {
	// Driver is "memory" or "postgres"
	Driver string `json:"driver" yaml:"driver"`

	// AutoMigrate creates the snapshot table on start when using postgres
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// SlowQueryThreshold logs statements slower than this at warn level
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// TrackingConfig defines public tracking page links
type TrackingConfig struct {
	// BaseURL is the public origin of this service, e.g. https://track.kuttyport.com
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// PMTilesConfig defines the PMTiles tile source
type PMTilesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// PMTiles source URL (local file path, HTTP URL, or GCS URL)
	Source string `json:"source" yaml:"source"`

	// Tile extension served by the archive, "mvt" or "png"
	Extension string `json:"extension" yaml:"extension"`

	// Number of directory entries cached in memory
	CacheSize int `json:"cacheSize" yaml:"cacheSize"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// DefaultMapConfig returns the renderer tunables used when the map section is absent.
func DefaultMapConfig() *MapConfig {
	return &MapConfig{
		FallbackCenter:    CoordinateConfig{Lat: 40.7128, Lng: -74.0060},
		DefaultZoom:       13,
		BoundsPaddingDeg:  0.02,
		ViewportPaddingPx: 50,
		HitToleranceDeg:   0.0005,
		Route: RouteStyleConfig{
			Color:     "#3b82f6",
			Weight:    4,
			Opacity:   0.7,
			DashArray: "10, 10",
		},
		Tiles: TileLayerConfig{
			URLTemplate: "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
			Attribution: `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`,
			MaxZoom:     19,
		},
	}
}

// applyDefaults fills optional sections and zero-valued tunables.
func applyDefaults(cfg *Config) {
	defaults := DefaultMapConfig()
	if cfg.Map == nil {
		cfg.Map = defaults
	} else {
		if cfg.Map.FallbackCenter == (CoordinateConfig{}) {
			cfg.Map.FallbackCenter = defaults.FallbackCenter
		}
		if cfg.Map.DefaultZoom == 0 {
			cfg.Map.DefaultZoom = defaults.DefaultZoom
		}
		if cfg.Map.BoundsPaddingDeg == 0 {
			cfg.Map.BoundsPaddingDeg = defaults.BoundsPaddingDeg
		}
		if cfg.Map.ViewportPaddingPx == 0 {
			cfg.Map.ViewportPaddingPx = defaults.ViewportPaddingPx
		}
		if cfg.Map.HitToleranceDeg == 0 {
			cfg.Map.HitToleranceDeg = defaults.HitToleranceDeg
		}
		if cfg.Map.Route == (RouteStyleConfig{}) {
			cfg.Map.Route = defaults.Route
		}
		if cfg.Map.Tiles.URLTemplate == "" {
			cfg.Map.Tiles = defaults.Tiles
		}
	}

	if cfg.Storage == nil || cfg.Storage.Driver == "" {
		cfg.Storage = &StorageConfig{Driver: StorageDriverMemory}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
