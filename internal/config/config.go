package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/itemlist"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/wheel"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAnimationDuration = 4 * time.Second
	DefaultHTTPAddr          = ":8080"
	DefaultGRPCAddr          = ":50051"
	DefaultMaxFileSize       = 1024 * 1024
)

type ConfigImpl struct{}

// LoadItems reads a JSON array of items.
func (c *ConfigImpl) LoadItems(path string) ([]types.Item, error) {
	return itemlist.LoadItemsFile(path)
}

func (c *ConfigImpl) LoadYAML(path string) (YAMLConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return YAMLConfig{}, err
	}
	defer file.Close()
	var cfg YAMLConfig
	err = yaml.NewDecoder(file).Decode(&cfg)
	return cfg, err
}

// Load reads the YAML file at path (optional), applies environment overrides
// and fills defaults.
func (c *ConfigImpl) Load(path string) (YAMLConfig, error) {
	// Load .env file if it exists, real env vars still win.
	_ = godotenv.Load()

	var cfg YAMLConfig
	if path != "" {
		loaded, err := c.LoadYAML(path)
		if err != nil {
			return YAMLConfig{}, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		cfg = loaded
	}

	if err := applyEnv(&cfg); err != nil {
		return YAMLConfig{}, err
	}
	cfg.applyDefaults()

	if len(cfg.Items) == 0 && cfg.ItemsFile != "" {
		items, err := c.LoadItems(cfg.ItemsFile)
		if err != nil {
			return YAMLConfig{}, err
		}
		cfg.Items = items
	}
	return cfg, cfg.Validate()
}

func (cfg *YAMLConfig) applyDefaults() {
	if cfg.WorkingDir == "" {
		cfg.WorkingDir = "./tmp"
	}
	if cfg.Wheel.MinLaps <= 0 {
		cfg.Wheel.MinLaps = wheel.DefaultMinLaps
	}
	if cfg.Wheel.MaxLaps <= 0 {
		cfg.Wheel.MaxLaps = wheel.DefaultMaxLaps
	}
	if cfg.Wheel.AnimationDuration <= 0 {
		cfg.Wheel.AnimationDuration = DefaultAnimationDuration
	}
	if cfg.Journal.Storage == "" {
		cfg.Journal.Storage = "file"
	}
	if cfg.Journal.MaxFileSize <= 0 {
		cfg.Journal.MaxFileSize = DefaultMaxFileSize
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = DefaultHTTPAddr
	}
	if cfg.GRPCAddr == "" {
		cfg.GRPCAddr = DefaultGRPCAddr
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "INFO"
	}
	if len(cfg.Items) == 0 && cfg.ItemsFile == "" {
		cfg.Items = itemlist.DefaultItems()
	}
}

// Validate checks values that defaults cannot repair.
func (cfg *YAMLConfig) Validate() error {
	if cfg.Wheel.MinLaps > cfg.Wheel.MaxLaps {
		return fmt.Errorf("wheel.min_laps %d is greater than wheel.max_laps %d", cfg.Wheel.MinLaps, cfg.Wheel.MaxLaps)
	}
	switch cfg.Journal.Storage {
	case "file", "mmap":
	default:
		return fmt.Errorf("unknown journal.storage %q", cfg.Journal.Storage)
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel maps DEBUG/INFO/WARN/ERROR to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

func applyEnv(cfg *YAMLConfig) error {
	if v, ok := os.LookupEnv("WHEEL_WORKING_DIR"); ok {
		cfg.WorkingDir = v
	}
	if v, ok := os.LookupEnv("WHEEL_HTTP_ADDR"); ok {
		cfg.HTTPAddr = v
	}
	if v, ok := os.LookupEnv("WHEEL_GRPC_ADDR"); ok {
		cfg.GRPCAddr = v
	}
	if v, ok := os.LookupEnv("WHEEL_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("WHEEL_JOURNAL_STORAGE"); ok {
		cfg.Journal.Storage = v
	}
	if v, ok := os.LookupEnv("WHEEL_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid WHEEL_SEED value: %w", err)
		}
		cfg.Wheel.Seed = seed
	}
	if v, ok := os.LookupEnv("WHEEL_ANIMATION_DURATION"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid WHEEL_ANIMATION_DURATION value: %w", err)
		}
		cfg.Wheel.AnimationDuration = d
	}
	return nil
}
