package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"agrimarket-delivery/internal/config"
	"agrimarket-delivery/internal/logx"
)

func TestNewLogger_WritesJSONToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "delivery.log")
	cfg := &config.Config{Log: config.Log{Level: "debug", File: path}}

	logger := NewLogger(cfg)
	logger.Debug("schedule proposed", logx.String("event", "schedule_proposed"), logx.Int64("order_id", 42))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"schedule proposed"`)
	require.Contains(t, string(data), `"event":"schedule_proposed"`)
	require.Contains(t, string(data), `"order_id":42`)
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "delivery.log")
	cfg := &config.Config{Log: config.Log{Level: "warn", File: path}}

	logger := NewLogger(cfg)
	logger.Info("dropped")
	logger.Warn("kept")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "dropped")
	require.Contains(t, string(data), "kept")
}
