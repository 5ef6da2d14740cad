package config

import (
	"time"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
)

// YAMLConfig represents the application's configuration.
type YAMLConfig struct {
	WorkingDir string            `yaml:"working_dir"`
	Wheel      YAMLConfigWheel   `yaml:"wheel"`
	Items      []types.Item      `yaml:"items"`
	ItemsFile  string            `yaml:"items_file"`
	Journal    YAMLConfigJournal `yaml:"journal"`
	HTTPAddr   string            `yaml:"http_addr"`
	GRPCAddr   string            `yaml:"grpc_addr"`
	LogLevel   string            `yaml:"log_level"`
}

// YAMLConfigWheel tunes spins and their animation.
type YAMLConfigWheel struct {
	MinLaps           int           `yaml:"min_laps"`
	MaxLaps           int           `yaml:"max_laps"`
	AnimationDuration time.Duration `yaml:"animation_duration"`
	// Seed fixes the random source. Zero seeds from the clock.
	Seed int64 `yaml:"seed"`
}

// YAMLConfigJournal represents the configuration for the journal.
type YAMLConfigJournal struct {
	// Storage is "file" or "mmap".
	Storage     string `yaml:"storage"`
	MaxFileSize int    `yaml:"max_file_size"`
	// FlushAfterN flushes after this many buffered update and snapshot entries.
	// Resolutions always flush.
	FlushAfterN int `yaml:"flush_after_n"`
}
