package itemlist_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/itemlist"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
)

func TestNewList_Validation(t *testing.T) {
	_, err := itemlist.NewList([]types.Item{{Name: " ", Quantity: 1}})
	assert.ErrorIs(t, err, types.ErrInvalidItem)

	_, err = itemlist.NewList([]types.Item{{Name: "gold", Quantity: -1}})
	assert.ErrorIs(t, err, types.ErrInvalidItem)

	_, err = itemlist.NewList([]types.Item{{Name: "gold", Quantity: 1}, {Name: " gold ", Quantity: 2}})
	assert.ErrorIs(t, err, types.ErrDuplicateItem)

	l, err := itemlist.NewList([]types.Item{{Name: " gold ", Quantity: 1}, {Name: "rock", Quantity: 0}})
	require.NoError(t, err)
	assert.Equal(t, []types.Item{{Name: "gold", Quantity: 1}, {Name: "rock", Quantity: 0}}, l.Items())
}

func TestList_DecrementClamped(t *testing.T) {
	l, err := itemlist.NewList([]types.Item{{Name: "gold", Quantity: 1}})
	require.NoError(t, err)

	item, err := l.Decrement("gold")
	require.NoError(t, err)
	assert.Equal(t, 0, item.Quantity)

	item, err = l.Decrement("gold")
	require.NoError(t, err)
	assert.Equal(t, 0, item.Quantity)

	_, err = l.Decrement("silver")
	assert.ErrorIs(t, err, types.ErrItemNotFound)
}

func TestList_ItemsIsACopy(t *testing.T) {
	l, err := itemlist.NewList([]types.Item{{Name: "gold", Quantity: 5}})
	require.NoError(t, err)
	items := l.Items()
	items[0].Quantity = 100
	got, ok := l.Get("gold")
	require.True(t, ok)
	assert.Equal(t, 5, got.Quantity)
}

func TestList_ReplaceDropsBlankAndEmptyRows(t *testing.T) {
	l, err := itemlist.NewList(itemlist.DefaultItems())
	require.NoError(t, err)
	assert.Equal(t, 14, l.Total())

	err = l.Replace([]types.Item{
		{Name: "gold", Quantity: 2},
		{Name: "   ", Quantity: 4},
		{Name: "rock", Quantity: 0},
		{Name: " silver", Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []types.Item{{Name: "gold", Quantity: 2}, {Name: "silver", Quantity: 1}}, l.Items())

	err = l.Replace([]types.Item{{Name: "gold", Quantity: -2}})
	assert.ErrorIs(t, err, types.ErrInvalidItem)
	// A rejected save leaves the list untouched.
	assert.Len(t, l.Items(), 2)
}

func TestSnapshotSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	snap := &types.WheelSnapshot{
		Items:    []types.Item{{Name: "gold", Quantity: 10}},
		Rotation: 1234.5,
		Spins:    7,
	}
	require.NoError(t, itemlist.SaveSnapshot(path, snap))

	loaded, err := itemlist.LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)

	_, err = itemlist.LoadSnapshot(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadItemsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"gold","quantity":3},{"name":"rock","quantity":0}]`), 0644))

	items, err := itemlist.LoadItemsFile(path)
	require.NoError(t, err)
	assert.Equal(t, []types.Item{{Name: "gold", Quantity: 3}, {Name: "rock", Quantity: 0}}, items)
}
