package replay

import (
	"errors"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/itemlist"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
)

// State is the wheel state rebuilt from a snapshot and journal entries.
type State struct {
	List     *itemlist.List
	Rotation float64
	Spins    uint64
}

// ApplyLog applies a single journal entry to the state.
func ApplyLog(state *State, entry types.JournalEntry) error {
	switch v := entry.(type) {
	case *types.JournalSpinItem:
		// Mismatched spins still moved the wheel.
		state.Rotation = v.Rotation
		if !v.Success {
			return nil
		}
		state.Spins++
		if _, err := state.List.Decrement(v.ItemName); err != nil {
			// The item may have been edited away after the spin started.
			if errors.Is(err, types.ErrItemNotFound) {
				return nil
			}
			return err
		}
	case *types.JournalUpdateItem:
		return state.List.Load(v.Items)
		// Rotate and Snapshot entries do not change the wheel.
	}
	return nil
}

// ReplayLogs applies a series of journal entries in order.
func ReplayLogs(state *State, entries []types.JournalEntry) error {
	for _, item := range entries {
		if err := ApplyLog(state, item); err != nil {
			return err
		}
	}
	return nil
}
