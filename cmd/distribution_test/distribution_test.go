package distributiontest

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/actor"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/itemlist"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/selector"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/utils"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/wheel"
)

// Draws without decrementing so the proportions stay fixed, and checks that
// the sector under the pointer after each planned rotation is the selected one.
func TestSpinDistributionReport(t *testing.T) {
	items := []types.Item{
		{Name: "gold", Quantity: 10},
		{Name: "silver", Quantity: 20},
		{Name: "rock", Quantity: 70},
	}
	const totalSpins = 200000

	sel, err := selector.NewPrefixSumSelector(items)
	require.NoError(t, err)
	sectors, err := wheel.Layout(items)
	require.NoError(t, err)

	rnd := rand.New(rand.NewSource(42))
	counts := make(map[string]int)
	rotation := 0.0
	for i := 0; i < totalSpins; i++ {
		_, item := sel.Select(rnd)
		target := sectors[wheel.Find(sectors, item.Name)]
		rotation = wheel.Plan(rotation, target, wheel.DrawLaps(rnd, 5, 10))
		landed, err := wheel.SectorAt(rotation, sectors)
		require.NoError(t, err)
		require.Equal(t, item.Name, landed.Item.Name)
		counts[landed.Item.Name]++
	}

	fmt.Println("\n--- Spin Distribution Report ---")
	fmt.Println("|   Item   |   Count   | Proportion |")
	fmt.Println("|----------|-----------|------------|")
	for _, it := range items {
		expected := float64(it.Quantity) / 100
		actual := float64(counts[it.Name]) / totalSpins
		fmt.Printf("| %-8s | %9d |   %.4f   (expected %.4f) |\n", it.Name, counts[it.Name], actual, expected)
		assert.InDelta(t, expected, actual, 0.01)
	}
	fmt.Println("--------------------------------")
}

func TestQuantityExhaustion(t *testing.T) {
	items := []types.Item{
		{Name: "gold", Quantity: 3},
		{Name: "silver", Quantity: 5},
		{Name: "rock", Quantity: 12},
	}
	list, err := itemlist.NewList(items)
	require.NoError(t, err)

	ctx := &types.Context{Journal: &utils.MockJournal{}, Utils: &utils.MockUtils{}}
	sys, err := actor.NewSystem(ctx, list, rand.New(rand.NewSource(7)), &actor.SystemOptional{FlushAfterN: 10})
	require.NoError(t, err)
	defer sys.Stop()

	counts := make(map[string]int)
	for i := 0; i < 20; i++ {
		_, err := sys.Spin()
		require.NoError(t, err)
		res, err := sys.AnimationComplete()
		require.NoError(t, err)
		counts[res.Item.Name]++
		require.NoError(t, sys.Acknowledge())
	}

	for _, it := range items {
		assert.Equal(t, it.Quantity, counts[it.Name], "every unit of %s should be won exactly once", it.Name)
	}

	_, err = sys.Spin()
	assert.ErrorIs(t, err, types.ErrNothingToDraw)

	state, err := sys.State()
	require.NoError(t, err)
	assert.Empty(t, state.Sectors)
	assert.Equal(t, uint64(20), state.Spins)
}
