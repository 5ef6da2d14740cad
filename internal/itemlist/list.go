package itemlist

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
)

// List is the ordered prize list the wheel draws from.
type List struct {
	items []types.Item
	index map[string]int
}

var _ types.Inventory = (*List)(nil)

// DefaultItems is the catalog used when nothing has been stored yet.
func DefaultItems() []types.Item {
	return []types.Item{
		{Name: "Prize 1", Quantity: 3},
		{Name: "Prize 2", Quantity: 2},
		{Name: "Prize 3", Quantity: 4},
		{Name: "Prize 4", Quantity: 2},
		{Name: "Prize 5", Quantity: 3},
	}
}

// NewList validates items and builds a list. Zero quantities are kept.
func NewList(items []types.Item) (*List, error) {
	l := &List{}
	if err := l.Load(items); err != nil {
		return nil, err
	}
	return l, nil
}

// Load replaces the list as-is after validating every item.
func (l *List) Load(items []types.Item) error {
	validated := make([]types.Item, 0, len(items))
	index := make(map[string]int, len(items))
	for _, raw := range items {
		item, err := types.NewItem(raw.Name, raw.Quantity)
		if err != nil {
			return err
		}
		if _, ok := index[item.Name]; ok {
			return fmt.Errorf("%w: %q", types.ErrDuplicateItem, item.Name)
		}
		index[item.Name] = len(validated)
		validated = append(validated, item)
	}
	l.items = validated
	l.index = index
	return nil
}

// Replace applies an editor save: names are trimmed and rows with a blank
// name or a zero quantity are dropped before loading.
func (l *List) Replace(items []types.Item) error {
	kept := make([]types.Item, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" || item.Quantity == 0 {
			continue
		}
		kept = append(kept, item)
	}
	return l.Load(kept)
}

// Items returns a copy of the ordered items.
func (l *List) Items() []types.Item {
	out := make([]types.Item, len(l.items))
	copy(out, l.items)
	return out
}

// Get returns the named item.
func (l *List) Get(name string) (types.Item, bool) {
	idx, ok := l.index[name]
	if !ok {
		return types.Item{}, false
	}
	return l.items[idx], true
}

// Decrement lowers the named item's quantity by one, clamped at zero.
func (l *List) Decrement(name string) (types.Item, error) {
	idx, ok := l.index[name]
	if !ok {
		return types.Item{}, fmt.Errorf("%w: %q", types.ErrItemNotFound, name)
	}
	if l.items[idx].Quantity > 0 {
		l.items[idx].Quantity--
	}
	return l.items[idx], nil
}

// Total returns the sum of all quantities.
func (l *List) Total() int {
	total := 0
	for _, item := range l.items {
		total += item.Quantity
	}
	return total
}

// LoadItemsFile reads a JSON array of items.
func LoadItemsFile(path string) ([]types.Item, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var items []types.Item
	if err := json.NewDecoder(file).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode items %s: %w", path, err)
	}
	return items, nil
}

// SaveSnapshot writes snap to path as JSON.
func SaveSnapshot(path string, snap *types.WheelSnapshot) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return json.NewEncoder(file).Encode(snap)
}

// LoadSnapshot reads a snapshot written by SaveSnapshot.
func LoadSnapshot(path string) (*types.WheelSnapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var snap types.WheelSnapshot
	if err := json.NewDecoder(file).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}
	return &snap, nil
}
