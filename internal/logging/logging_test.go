package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLevelFiltersOutput(t *testing.T) {
	t.Cleanup(func() { SetLevel(slog.LevelInfo) })
	var buf bytes.Buffer
	logger := New(&buf)

	SetLevel(slog.LevelWarn)
	logger.Info("hidden")
	logger.Warn("shown", "field", "GarageArea")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown field=GarageArea")
}

func TestConfigureWritesFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	t.Cleanup(func() { SetLevel(slog.LevelInfo) })

	path := filepath.Join(t.TempDir(), "houseprice.log")
	logger, closer, err := Configure("debug", path)
	require.NoError(t, err)
	logger.Debug("model loaded", "type", "forest")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=DEBUG")
	assert.Contains(t, string(data), "type=forest")

	_, _, err = Configure("loud", path)
	assert.Error(t, err)
}
