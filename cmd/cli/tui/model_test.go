package tui

import (
	"testing"
	"time"

	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/actor"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/itemlist"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/utils"
)

func newModel(t *testing.T, items []types.Item) (Model, *actor.System, *time.Time) {
	t.Helper()
	list, err := itemlist.NewList(items)
	require.NoError(t, err)
	sys, err := actor.NewSystem(&types.Context{Journal: &utils.MockJournal{}, Utils: &utils.MockUtils{}}, list,
		&utils.MockRandSource{Floats: []float64{0.5, 0.5}}, nil)
	require.NoError(t, err)
	t.Cleanup(sys.Stop)

	clock := time.Unix(1000, 0)
	m := NewModel(sys, 4*time.Second, nil, nil)
	m.now = func() time.Time { return clock }
	return m, sys, &clock
}

func press(m Model, key string) Model {
	var msg bubbletea.KeyMsg
	switch key {
	case "enter":
		msg = bubbletea.KeyMsg{Type: bubbletea.KeyEnter}
	case "space":
		msg = bubbletea.KeyMsg{Type: bubbletea.KeySpace, Runes: []rune{' '}}
	default:
		msg = bubbletea.KeyMsg{Type: bubbletea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModel_SpinAnimatesThenResolves(t *testing.T) {
	m, sys, clock := newModel(t, []types.Item{{Name: "gold", Quantity: 2}})

	m = press(m, "space")
	require.True(t, m.spinning)
	assert.Greater(t, m.to, m.from)

	// Spin key is ignored while the wheel turns.
	m = press(m, "s")
	state, err := sys.State()
	require.NoError(t, err)
	assert.Equal(t, "spinning", state.Phase)

	*clock = clock.Add(2 * time.Second)
	next, _ := m.Update(tickMsg(*clock))
	m = next.(Model)
	assert.True(t, m.spinning)
	assert.Greater(t, m.rotation, m.from)
	assert.Less(t, m.rotation, m.to)

	*clock = clock.Add(3 * time.Second)
	next, _ = m.Update(tickMsg(*clock))
	m = next.(Model)
	assert.False(t, m.spinning)
	assert.Equal(t, m.to, m.rotation)
	require.NotNil(t, m.result)
	assert.Equal(t, "gold", m.result.Item.Name)
	assert.Contains(t, m.View(), "You won: gold")

	// A late tick does not complete twice.
	next, _ = m.Update(tickMsg(*clock))
	m = next.(Model)
	assert.Nil(t, m.err)

	m = press(m, "enter")
	assert.Nil(t, m.result)
	state, err = sys.State()
	require.NoError(t, err)
	assert.Equal(t, "idle", state.Phase)
	assert.Equal(t, 1, state.Items[0].Quantity)
}

func TestModel_PlaceholderWhenNothingToDraw(t *testing.T) {
	m, _, _ := newModel(t, []types.Item{{Name: "gold", Quantity: 0}})
	assert.Contains(t, m.View(), placeholderText)

	m = press(m, "space")
	assert.False(t, m.spinning)
	assert.ErrorIs(t, m.err, types.ErrNothingToDraw)
}

func TestEaseOutCubic(t *testing.T) {
	assert.Equal(t, 0.0, EaseOutCubic(-1))
	assert.Equal(t, 1.0, EaseOutCubic(2))
	assert.InDelta(t, 0.875, EaseOutCubic(0.5), 1e-9)
	assert.Equal(t, 10.0, Interpolate(10, 370, 0))
	assert.Equal(t, 370.0, Interpolate(10, 370, 1))
}

func TestRenderWheel_PointerSectorAtTop(t *testing.T) {
	sectors := []types.Sector{
		{Item: types.Item{Name: "A", Quantity: 1}, StartAngle: 0, EndAngle: 180, Color: "#FF0000"},
		{Item: types.Item{Name: "B", Quantity: 1}, StartAngle: 180, EndAngle: 360, Color: "#0000FF"},
	}
	out := renderWheel(sectors, 0, 4)
	assert.Contains(t, out, "▼")
	assert.Contains(t, out, "█")
	assert.Equal(t, placeholderText, renderWheel(nil, 0, 4))
}

func TestChannelWriter_DropsWhenFull(t *testing.T) {
	ch := make(chan string, 1)
	w := &ChannelWriter{Ch: ch}

	n, err := w.Write([]byte("first\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	_, err = w.Write([]byte("second\n"))
	require.NoError(t, err)

	assert.Equal(t, "first\n", <-ch)
	assert.Equal(t, 1, w.Dropped)
}

func TestModel_LogLinesAppendToHistory(t *testing.T) {
	m, _, _ := newModel(t, []types.Item{{Name: "gold", Quantity: 1}})
	next, _ := m.Update(logMsg("level=INFO msg=hello\n"))
	m = next.(Model)
	assert.Equal(t, "level=INFO msg=hello", m.history[len(m.history)-1])
}

func TestModel_JournalEntriesAppendToHistory(t *testing.T) {
	m, _, _ := newModel(t, []types.Item{{Name: "gold", Quantity: 1}})

	next, _ := m.Update(journalMsg{entry: &types.JournalSpinItem{SpinID: "0123456789ab", ItemName: "gold", Remaining: 0, Success: true}})
	m = next.(Model)
	assert.Equal(t, "journal: spin 01234567 gold (0 left)", m.history[len(m.history)-1])

	next, _ = m.Update(journalMsg{entry: &types.JournalSpinItem{SpinID: "abc"}})
	m = next.(Model)
	assert.Equal(t, "journal: spin abc abandoned", m.history[len(m.history)-1])
}
