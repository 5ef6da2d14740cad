package wheel

import (
	"fmt"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
)

// Eligible returns the items that can still be drawn, preserving order.
func Eligible(items []types.Item) []types.Item {
	out := make([]types.Item, 0, len(items))
	for _, item := range items {
		if item.Quantity > 0 {
			out = append(out, item)
		}
	}
	return out
}

// Layout partitions the circle into one sector per item, in item order, each
// sector's width proportional to the item's quantity.
//
// Callers must drop zero-quantity items first (see Eligible); a non-positive
// quantity or a zero total is a contract violation and returns ErrEmptyWheel.
func Layout(items []types.Item) ([]types.Sector, error) {
	var total int64
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: %q has quantity %d", types.ErrEmptyWheel, item.Name, item.Quantity)
		}
		total += int64(item.Quantity)
	}
	if total <= 0 {
		return nil, types.ErrEmptyWheel
	}

	sectors := make([]types.Sector, len(items))
	current := 0.0
	for i, item := range items {
		end := current + FullTurn*float64(item.Quantity)/float64(total)
		if i == len(items)-1 {
			// Rounding must not leave a gap before 360.
			end = FullTurn
		}
		sectors[i] = types.Sector{
			Item:       item,
			StartAngle: current,
			EndAngle:   end,
			Color:      Palette[i%len(Palette)],
		}
		current = end
	}
	return sectors, nil
}

// Find returns the index of the sector holding the named item, or -1.
func Find(sectors []types.Sector, name string) int {
	for i, s := range sectors {
		if s.Item.Name == name {
			return i
		}
	}
	return -1
}
