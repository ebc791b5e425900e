package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"kuttyport/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := parseLogLevel(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestNewWithWriter_JSONCarriesServiceAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, config.EnvConfig{
		Env:         "test",
		ServiceName: "mapd",
		Log:         config.Log{Level: "warn"},
	})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", slog.String("delivery_id", "DLV-1"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "mapd", line["service"])
	assert.Equal(t, "test", line["env"])
	assert.Equal(t, "DLV-1", line["delivery_id"])
}
