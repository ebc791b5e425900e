package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"kuttyport/config"
	"kuttyport/internal/domain/entity"
	logs "kuttyport/internal/infra/log"
	"kuttyport/internal/mapview"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	input       string
	geojson     bool
	pretty      bool
	paddingDeg  float64
	fallbackLat float64
	fallbackLng float64
	zoom        int
	logLevel    string
}

func newRootCmd() *cobra.Command {
	flags := &renderFlags{}
	defaults := config.DefaultMapConfig()

	rootCmd := &cobra.Command{
		Use:           "mapview",
		Short:         "Render delivery map snapshots without running the server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&flags.input, "input", "i", "-", "Snapshot JSON file, - for stdin")
	rootCmd.PersistentFlags().BoolVar(&flags.pretty, "pretty", false, "Indent JSON output")
	rootCmd.PersistentFlags().Float64Var(&flags.paddingDeg, "padding-deg", defaults.BoundsPaddingDeg, "Degrees added on each side of the bounding box")
	rootCmd.PersistentFlags().Float64Var(&flags.fallbackLat, "fallback-lat", defaults.FallbackCenter.Lat, "Latitude of the fallback center")
	rootCmd.PersistentFlags().Float64Var(&flags.fallbackLng, "fallback-lng", defaults.FallbackCenter.Lng, "Longitude of the fallback center")
	rootCmd.PersistentFlags().IntVar(&flags.zoom, "zoom", defaults.DefaultZoom, "Zoom used with the fallback center")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level for diagnostics written to stderr")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Print the rendered view as JSON or GeoJSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := flags.render(cmd)
			if err != nil {
				return err
			}
			if flags.geojson {
				return flags.write(cmd.OutOrStdout(), view.FeatureCollection())
			}

			return flags.write(cmd.OutOrStdout(), view)
		},
	}
	renderCmd.Flags().BoolVar(&flags.geojson, "geojson", false, "Print a GeoJSON FeatureCollection")

	boundsCmd := &cobra.Command{
		Use:   "bounds",
		Short: "Print only the viewport",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := flags.render(cmd)
			if err != nil {
				return err
			}

			return flags.write(cmd.OutOrStdout(), view.Viewport)
		},
	}

	rootCmd.AddCommand(renderCmd, boundsCmd)

	return rootCmd
}

func (f *renderFlags) render(cmd *cobra.Command) (*mapview.View, error) {
	logger, err := logs.NewWithWriter(cmd.ErrOrStderr(), config.EnvConfig{
		ServiceName: "mapview",
		Log:         config.Log{Level: f.logLevel},
	})
	if err != nil {
		return nil, err
	}

	snapshot, err := f.readSnapshot(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}

	cfg := config.DefaultMapConfig()
	cfg.BoundsPaddingDeg = f.paddingDeg
	cfg.FallbackCenter = config.CoordinateConfig{Lat: f.fallbackLat, Lng: f.fallbackLng}
	cfg.DefaultZoom = f.zoom

	view := mapview.NewRenderer(mapview.NewOptions(cfg), logger).Render(mapview.InputFromSnapshot(snapshot))
	logger.Debug("Rendered snapshot",
		slog.String("input", f.input),
		slog.Int("markers", len(view.Markers)),
		slog.Int("skipped", len(view.Skipped)),
	)

	return view, nil
}

func (f *renderFlags) readSnapshot(stdin io.Reader) (*entity.Snapshot, error) {
	r := stdin
	if f.input != "-" {
		file, err := os.Open(f.input)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open snapshot")
		}
		defer file.Close()
		r = file
	}

	var snapshot entity.Snapshot
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return nil, errors.Wrapf(err, "failed to decode snapshot %s", f.input)
	}

	return &snapshot, nil
}

func (f *renderFlags) write(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if f.pretty {
		enc.SetIndent("", "  ")
	}

	return errors.WithStack(enc.Encode(v))
}
