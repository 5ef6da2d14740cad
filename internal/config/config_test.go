package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/config"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/itemlist"
)

func TestLoadYAML(t *testing.T) {
	c := &config.ConfigImpl{}
	cfg, err := c.LoadYAML("../../samples/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Wheel.MinLaps)
	assert.Equal(t, 10, cfg.Wheel.MaxLaps)
	assert.Equal(t, 4*time.Second, cfg.Wheel.AnimationDuration)
	assert.Equal(t, itemlist.DefaultItems(), cfg.Items)
	assert.Equal(t, "mmap", cfg.Journal.Storage)
}

func TestLoadItems(t *testing.T) {
	c := &config.ConfigImpl{}
	items, err := c.LoadItems("../../samples/items.json")
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "Headphones", items[3].Name)
}

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("WHEEL_HTTP_ADDR", ":9999")
	t.Setenv("WHEEL_LOG_LEVEL", "debug")
	t.Setenv("WHEEL_ANIMATION_DURATION", "1500ms")

	cfg, err := (&config.ConfigImpl{}).Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, config.DefaultGRPCAddr, cfg.GRPCAddr)
	assert.Equal(t, 1500*time.Millisecond, cfg.Wheel.AnimationDuration)
	assert.Equal(t, "file", cfg.Journal.Storage)
	assert.Equal(t, itemlist.DefaultItems(), cfg.Items)

	level, err := config.ParseLogLevel(cfg.LogLevel)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_ItemsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items_file: ../../samples/items.json\n"), 0644))

	cfg, err := (&config.ConfigImpl{}).Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Items, 4)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"laps":    "wheel:\n  min_laps: 9\n  max_laps: 6\n",
		"storage": "journal:\n  storage: tape\n",
		"level":   "log_level: loud\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))
			_, err := (&config.ConfigImpl{}).Load(path)
			assert.Error(t, err)
		})
	}

	t.Setenv("WHEEL_SEED", "abc")
	_, err := (&config.ConfigImpl{}).Load("")
	assert.Error(t, err)
}
