package selector

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/utils"
)

func TestNewPrefixSumSelector(t *testing.T) {
	pss, err := NewPrefixSumSelector([]types.Item{
		{Name: "itemA", Quantity: 10},
		{Name: "itemB", Quantity: 20},
		{Name: "itemC", Quantity: 30},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 30, 60}, pss.prefixSums)
	assert.Equal(t, int64(60), pss.Total())
}

func TestNewPrefixSumSelector_Empty(t *testing.T) {
	_, err := NewPrefixSumSelector(nil)
	assert.ErrorIs(t, err, types.ErrNothingToDraw)

	_, err = NewPrefixSumSelector([]types.Item{{Name: "itemA", Quantity: 0}})
	assert.ErrorIs(t, err, types.ErrNothingToDraw)
}

func TestPrefixSumSelector_PickBoundaries(t *testing.T) {
	pss, err := NewPrefixSumSelector([]types.Item{
		{Name: "itemA", Quantity: 1},
		{Name: "itemB", Quantity: 3},
	})
	require.NoError(t, err)

	tests := []struct {
		u        float64
		expected int
	}{
		{0, 0},
		{0.1, 0},
		{0.25, 0}, // r == 1 closes itemA's range
		{0.2500001, 1},
		{0.5, 1},
		{0.9999999, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, pss.Pick(tt.u), "u=%v", tt.u)
	}
}

func TestPrefixSumSelector_Select(t *testing.T) {
	pss, err := NewPrefixSumSelector([]types.Item{
		{Name: "itemA", Quantity: 10},
		{Name: "itemB", Quantity: 20},
		{Name: "itemC", Quantity: 30},
	})
	require.NoError(t, err)

	// Cumulative: A: 10, B: 30, C: 60
	mock := &utils.MockRandSource{Floats: []float64{0.01, 0.3, 0.9}}

	_, item := pss.Select(mock)
	assert.Equal(t, "itemA", item.Name)
	_, item = pss.Select(mock)
	assert.Equal(t, "itemB", item.Name)
	idx, item := pss.Select(mock)
	assert.Equal(t, "itemC", item.Name)
	assert.Equal(t, 2, idx)
}

func TestSelect_Distribution(t *testing.T) {
	items := []types.Item{
		{Name: "A", Quantity: 1},
		{Name: "B", Quantity: 3},
	}
	rnd := rand.New(rand.NewSource(42))

	counts := make(map[string]int)
	numSelections := 10000
	for i := 0; i < numSelections; i++ {
		_, item, err := Select(items, rnd.Float64())
		require.NoError(t, err)
		counts[item.Name]++
	}

	assert.InDelta(t, 2500, counts["A"], float64(numSelections)*0.02)
	assert.InDelta(t, 7500, counts["B"], float64(numSelections)*0.02)
}

func TestSelect_NeverPicksUnlistedItem(t *testing.T) {
	items := []types.Item{{Name: "only", Quantity: 1}}
	for _, u := range []float64{0, 0.5, 0.999999999} {
		idx, item, err := Select(items, u)
		require.NoError(t, err)
		assert.Equal(t, 0, idx)
		assert.Equal(t, "only", item.Name)
	}
}
