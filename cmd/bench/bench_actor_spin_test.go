package main

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/actor"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/itemlist"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/journal"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/journal/storage"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/utils"
)

func newBenchSystem(b *testing.B, j types.Journal) *actor.System {
	b.Helper()
	list, err := itemlist.NewList([]types.Item{
		{Name: "gold", Quantity: b.N},
		{Name: "silver", Quantity: b.N},
		{Name: "rock", Quantity: b.N},
	})
	if err != nil {
		b.Fatal(err)
	}
	ctx := &types.Context{Journal: j, Utils: &utils.MockUtils{}}
	sys, err := actor.NewSystem(ctx, list, rand.New(rand.NewSource(1)), nil)
	if err != nil {
		b.Fatal(err)
	}
	return sys
}

func spinCycles(b *testing.B, sys *actor.System) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sys.Spin(); err != nil {
			b.Fatal(err)
		}
		if _, err := sys.AnimationComplete(); err != nil {
			b.Fatal(err)
		}
		if err := sys.Acknowledge(); err != nil {
			b.Fatal(err)
		}
	}
	b.StopTimer()
}

func BenchmarkSpinCycleNoJournal(b *testing.B) {
	sys := newBenchSystem(b, &utils.MockJournal{})
	defer sys.Stop()
	spinCycles(b, sys)
}

func BenchmarkSpinCycleFileJournal(b *testing.B) {
	path := filepath.Join(b.TempDir(), types.JournalBaseName)
	j, err := journal.NewJournal(path, 0, nil, journal.FileStorageFactory())
	if err != nil {
		b.Fatal(err)
	}
	sys := newBenchSystem(b, j)
	defer sys.Stop()
	spinCycles(b, sys)
}

func BenchmarkSpinCycleMMapJournal(b *testing.B) {
	path := filepath.Join(b.TempDir(), types.JournalBaseName)
	j, err := journal.NewJournal(path, 0, nil, journal.MMapStorageFactory(storage.FileMMapStorageOps{MMapFileSizeInBytes: 1 << 28}))
	if err != nil {
		b.Fatal(err)
	}
	sys := newBenchSystem(b, j)
	defer sys.Stop()
	spinCycles(b, sys)
}
