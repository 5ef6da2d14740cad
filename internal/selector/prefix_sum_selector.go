package selector

import (
	"fmt"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
)

// PrefixSumSelector picks items with probability proportional to their quantity
// using a prefix sum array.
type PrefixSumSelector struct {
	// prefixSums stores the cumulative sums of item quantities.
	prefixSums []int64

	items []types.Item

	// total stores the sum of all quantities in the selector.
	total int64
}

// NewPrefixSumSelector builds a selector over items, which must all have a
// positive quantity.
func NewPrefixSumSelector(items []types.Item) (*PrefixSumSelector, error) {
	pss := &PrefixSumSelector{
		prefixSums: make([]int64, len(items)),
		items:      make([]types.Item, len(items)),
	}
	copy(pss.items, items)

	var currentSum int64
	for i, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: %q has quantity %d", types.ErrNothingToDraw, item.Name, item.Quantity)
		}
		currentSum += int64(item.Quantity)
		pss.prefixSums[i] = currentSum
	}
	if currentSum <= 0 {
		return nil, types.ErrNothingToDraw
	}
	pss.total = currentSum
	return pss, nil
}

// Total returns the sum of all quantities.
func (pss *PrefixSumSelector) Total() int64 {
	return pss.total
}

// Pick maps a uniform value u in [0,1) to an item index. The item whose
// cumulative sum first reaches u*total wins, so a boundary belongs to the
// item whose range it closes.
func (pss *PrefixSumSelector) Pick(u float64) int {
	if u < 0 {
		u = 0
	}
	r := u * float64(pss.total)

	low := 0
	high := len(pss.prefixSums) - 1
	resultIdx := high
	for low <= high {
		mid := low + (high-low)/2
		if float64(pss.prefixSums[mid]) >= r {
			resultIdx = mid
			high = mid - 1
		} else {
			low = mid + 1
		}
	}
	return resultIdx
}

// Select draws one item from rnd.
func (pss *PrefixSumSelector) Select(rnd types.RandSource) (int, types.Item) {
	idx := pss.Pick(rnd.Float64())
	return idx, pss.items[idx]
}

// Select is the one-shot form: it picks an item from items with the uniform value u.
func Select(items []types.Item, u float64) (int, types.Item, error) {
	pss, err := NewPrefixSumSelector(items)
	if err != nil {
		return -1, types.Item{}, err
	}
	idx := pss.Pick(u)
	return idx, pss.items[idx], nil
}
