// Package bootstrap assembles a running wheel from configuration: recovery,
// journal, actor system.
package bootstrap

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/actor"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/config"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/journal"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/journal/formatter"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/journal/storage"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/recovery"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/utils"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/walstream"
)

// Options tweak how the wheel is opened.
type Options struct {
	LogWriter io.Writer
	Streamer  walstream.Streamer
	// Rand overrides the seeded random source.
	Rand types.RandSource
	// OnResolved runs on the actor goroutine after each resolution.
	OnResolved func(types.Resolution)
}

// Open recovers the wheel stored in cfg.WorkingDir and starts its actor system.
func Open(cfg config.YAMLConfig, opt Options) (*actor.System, *utils.DefaultUtils, error) {
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(cfg.WorkingDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create working dir: %w", err)
	}
	u := utils.NewDefaultUtils(cfg.WorkingDir, cfg.WorkingDir, level, opt.LogWriter)

	jsonFormatter := formatter.NewJSONFormatter()
	state, lastJournalPath, err := recovery.RecoverWheel(*u.GenSnapshotPath(), cfg.Items, jsonFormatter, u)
	if err != nil {
		return nil, nil, fmt.Errorf("recovery failed: %w", err)
	}

	var seqNo uint64
	if lastJournalPath == "" {
		lastJournalPath, seqNo, err = u.GenNextJournalPath()
	} else {
		seqNo, err = utils.SeqFromPath(lastJournalPath)
	}
	if err != nil {
		return nil, nil, err
	}

	var factory journal.StorageFactory
	switch cfg.Journal.Storage {
	case "mmap":
		factory = journal.MMapStorageFactory(storage.FileMMapStorageOps{MMapFileSizeInBytes: int64(cfg.Journal.MaxFileSize)})
	default:
		factory = journal.FileStorageFactory(storage.FileStorageOpt{SizeFileInBytes: cfg.Journal.MaxFileSize})
	}
	j, err := journal.NewJournal(lastJournalPath, seqNo, jsonFormatter, factory)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open journal %s: %w", lastJournalPath, err)
	}

	rnd := opt.Rand
	if rnd == nil {
		seed := cfg.Wheel.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rnd = rand.New(rand.NewSource(seed))
	}

	ctx := &types.Context{Journal: j, Utils: u}
	sys, err := actor.NewSystem(ctx, state.List, rnd, &actor.SystemOptional{
		FlushAfterN:     cfg.Journal.FlushAfterN,
		Streamer:        opt.Streamer,
		MinLaps:         cfg.Wheel.MinLaps,
		MaxLaps:         cfg.Wheel.MaxLaps,
		InitialRotation: state.Rotation,
		Spins:           state.Spins,
		OnResolved:      opt.OnResolved,
	})
	if err != nil {
		return nil, nil, err
	}
	return sys, u, nil
}
