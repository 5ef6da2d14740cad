package recovery

import (
	"fmt"
	"os"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/itemlist"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/journal"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/replay"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
)

// RecoverWheel loads the wheel state from the latest snapshot and replays any subsequent journal entries.
// When no snapshot exists, initialItems seed the list. It returns the recovered state,
// the path of the last journal file, and any error that occurred.
func RecoverWheel(snapshotPath string, initialItems []types.Item, formatter types.LogFormatter, utils types.Utils) (*replay.State, string, error) {
	// 1. Get all journal files, sorted by sequence number.
	journalFiles, err := utils.GetJournalFiles()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get journal files: %w", err)
	}

	// 2. Parse all journal files to get all entries.
	var allEntries []types.JournalEntry
	for _, journalFile := range journalFiles {
		entries, _, err := journal.ParseJournal(journalFile, formatter)
		if err != nil {
			return nil, "", fmt.Errorf("error parsing journal file %s: %w", journalFile, err)
		}
		allEntries = append(allEntries, entries...)
	}

	// 3. Determine the starting point for recovery.
	snapshotToLoad := snapshotPath
	toReplay := allEntries
	for i := len(allEntries) - 1; i >= 0; i-- {
		if s, ok := allEntries[i].(*types.JournalSnapshotItem); ok {
			snapshotToLoad = s.Path
			toReplay = allEntries[i+1:]
			break
		}
	}

	// 4. Load the initial state.
	state, err := loadState(snapshotToLoad, initialItems)
	if err != nil {
		return nil, "", err
	}

	// 5. Replay entries to bring the wheel to its most recent state.
	if err := replay.ReplayLogs(state, toReplay); err != nil {
		return nil, "", fmt.Errorf("failed to replay journal: %w", err)
	}

	var lastJournalPath string
	if len(journalFiles) > 0 {
		lastJournalPath = journalFiles[len(journalFiles)-1]
	}

	if logger := utils.GetLogger(); logger != nil {
		logger.Info("Wheel recovered.",
			"snapshot", snapshotToLoad,
			"journal_files", len(journalFiles),
			"replayed", len(toReplay),
			"rotation", state.Rotation,
			"spins", state.Spins)
	}
	return state, lastJournalPath, nil
}

func loadState(snapshotPath string, initialItems []types.Item) (*replay.State, error) {
	if snapshotPath != "" {
		snap, err := itemlist.LoadSnapshot(snapshotPath)
		switch {
		case err == nil:
			list, err := itemlist.NewList(snap.Items)
			if err != nil {
				return nil, fmt.Errorf("invalid snapshot %s: %w", snapshotPath, err)
			}
			return &replay.State{List: list, Rotation: snap.Rotation, Spins: snap.Spins}, nil
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to load snapshot file %s: %w", snapshotPath, err)
		}
	}

	// Snapshot doesn't exist, fall back to the initial items.
	list, err := itemlist.NewList(initialItems)
	if err != nil {
		return nil, fmt.Errorf("failed to load initial items: %w", err)
	}
	return &replay.State{List: list}, nil
}
