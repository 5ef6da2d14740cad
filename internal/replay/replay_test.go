package replay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/itemlist"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/replay"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
)

func TestReplayLogsWithRealList(t *testing.T) {
	list, err := itemlist.NewList([]types.Item{
		{Name: "gold", Quantity: 3},
		{Name: "silver", Quantity: 1},
	})
	require.NoError(t, err)
	state := &replay.State{List: list}

	logs := []types.JournalEntry{
		// Successful spin of gold
		&types.JournalSpinItem{
			JournalEntryBase: types.JournalEntryBase{Type: types.LogTypeSpin},
			SpinID:           "s1",
			ItemName:         "gold",
			Rotation:         1845,
			Success:          true,
		},
		// Mismatched spin moves the wheel but keeps quantities
		&types.JournalSpinItem{
			JournalEntryBase: types.JournalEntryBase{Type: types.LogTypeSpin, Error: types.ErrorPointerMismatch},
			SpinID:           "s2",
			ItemName:         "silver",
			Rotation:         3900,
			Success:          false,
		},
		&types.JournalSnapshotItem{
			JournalEntryBase: types.JournalEntryBase{Type: types.LogTypeSnapshot},
			Path:             "/some/path",
		},
		// Spin of silver brings it to zero; a second one stays clamped
		&types.JournalSpinItem{
			JournalEntryBase: types.JournalEntryBase{Type: types.LogTypeSpin},
			ItemName:         "silver",
			Rotation:         5800,
			Success:          true,
		},
		&types.JournalSpinItem{
			JournalEntryBase: types.JournalEntryBase{Type: types.LogTypeSpin},
			ItemName:         "silver",
			Rotation:         7700,
			Success:          true,
		},
	}

	require.NoError(t, replay.ReplayLogs(state, logs))

	gold, _ := list.Get("gold")
	silver, _ := list.Get("silver")
	assert.Equal(t, 2, gold.Quantity)
	assert.Equal(t, 0, silver.Quantity)
	assert.Equal(t, 7700.0, state.Rotation)
	assert.Equal(t, uint64(3), state.Spins)
}

func TestReplayUpdateReplacesList(t *testing.T) {
	list, err := itemlist.NewList(itemlist.DefaultItems())
	require.NoError(t, err)
	state := &replay.State{List: list}

	require.NoError(t, replay.ReplayLogs(state, []types.JournalEntry{
		&types.JournalUpdateItem{
			JournalEntryBase: types.JournalEntryBase{Type: types.LogTypeUpdate},
			Items:            []types.Item{{Name: "car", Quantity: 1}},
		},
		// Spin of an item that was edited away is ignored
		&types.JournalSpinItem{
			JournalEntryBase: types.JournalEntryBase{Type: types.LogTypeSpin},
			ItemName:         "Prize 1",
			Success:          true,
		},
	}))

	assert.Equal(t, []types.Item{{Name: "car", Quantity: 1}}, list.Items())
	assert.Equal(t, uint64(1), state.Spins)
}
