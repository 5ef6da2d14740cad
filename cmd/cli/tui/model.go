package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/actor"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/spin"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
)

const frameInterval = 33 * time.Millisecond

var (
	cmdStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff66ff"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#FFD93D")).
			Padding(0, 2)
)

// WheelSystem is an interface that actor.System implements.
type WheelSystem interface {
	State() (actor.State, error)
	Spin() (spin.Record, error)
	AnimationComplete() (types.Resolution, error)
	Acknowledge() error
}

type tickMsg time.Time

type logMsg string

type journalMsg struct{ entry types.JournalEntry }

type Model struct {
	system   WheelSystem
	duration time.Duration
	radius   int
	now      func() time.Time
	logs     <-chan string
	entries  <-chan types.JournalEntry

	state    actor.State
	rotation float64

	spinning bool
	from, to float64
	started  time.Time

	result *types.Resolution

	viewport viewport.Model
	history  []string
	ready    bool
	err      error
}

// NewModel creates the wheel TUI. logs and entries may be nil; entries feeds
// flushed journal entries into the history pane.
func NewModel(system WheelSystem, duration time.Duration, logs <-chan string, entries <-chan types.JournalEntry) Model {
	m := Model{
		system:   system,
		duration: duration,
		radius:   7,
		now:      time.Now,
		logs:     logs,
		entries:  entries,
		history:  []string{},
	}
	m.refresh()
	return m
}

func (m Model) Init() bubbletea.Cmd {
	return bubbletea.Batch(m.waitForLog(), m.waitForJournal())
}

func (m Model) Update(msg bubbletea.Msg) (bubbletea.Model, bubbletea.Cmd) {
	var cmds []bubbletea.Cmd

	switch msg := msg.(type) {
	case bubbletea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, bubbletea.Quit
		case " ", "s":
			cmds = append(cmds, m.startSpin())
		case "enter":
			m.acknowledge()
		}
	case tickMsg:
		cmds = append(cmds, m.advance())
	case logMsg:
		m.appendHistory(strings.TrimRight(string(msg), "\n"))
		cmds = append(cmds, m.waitForLog())
	case journalMsg:
		if line := describeEntry(msg.entry); line != "" {
			m.appendHistory(line)
		}
		cmds = append(cmds, m.waitForJournal())
	case bubbletea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, 6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
		}
		m.viewport.SetContent(strings.Join(m.history, "\n"))
	}

	if m.ready {
		var cmd bubbletea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, bubbletea.Batch(cmds...)
}

// startSpin commits a spin and starts the animation. It is ignored while a
// spin is animating or its result is still shown.
func (m *Model) startSpin() bubbletea.Cmd {
	if m.spinning || m.result != nil {
		return nil
	}
	rec, err := m.system.Spin()
	if err != nil {
		m.err = err
		m.refresh()
		return nil
	}
	m.err = nil
	m.spinning = true
	m.from = rec.BaseRotation
	m.to = rec.TargetRotation
	m.rotation = rec.BaseRotation
	m.started = m.now()
	m.state.Sectors = rec.Sectors
	m.appendHistory(cmdStyle.Render("spin") + fmt.Sprintf(" %d laps", rec.Laps))
	return tick()
}

// advance moves the animation one frame and delivers the completion signal
// exactly once, when the animation reaches the target.
func (m *Model) advance() bubbletea.Cmd {
	if !m.spinning {
		return nil
	}
	progress := 1.0
	if m.duration > 0 {
		progress = float64(m.now().Sub(m.started)) / float64(m.duration)
	}
	if progress < 1 {
		m.rotation = Interpolate(m.from, m.to, progress)
		return tick()
	}

	m.rotation = m.to
	m.spinning = false
	res, err := m.system.AnimationComplete()
	if err != nil {
		m.err = err
		m.appendHistory(errStyle.Render(err.Error()))
	} else {
		m.result = &res
		m.appendHistory(fmt.Sprintf("won %s (%d left)", res.Item.Name, res.Remaining))
	}
	m.refresh()
	return nil
}

func (m *Model) acknowledge() {
	if m.result == nil {
		return
	}
	if err := m.system.Acknowledge(); err != nil {
		m.err = err
	}
	m.result = nil
	m.refresh()
}

func (m *Model) refresh() {
	state, err := m.system.State()
	if err != nil {
		m.err = err
		return
	}
	m.state = state
	if !m.spinning {
		m.rotation = state.TargetRotation
	}
}

func (m *Model) appendHistory(line string) {
	m.history = append(m.history, line)
	if m.ready {
		m.viewport.SetContent(strings.Join(m.history, "\n"))
		m.viewport.GotoBottom()
	}
}

func (m Model) waitForLog() bubbletea.Cmd {
	if m.logs == nil {
		return nil
	}
	ch := m.logs
	return func() bubbletea.Msg {
		return logMsg(<-ch)
	}
}

func (m Model) waitForJournal() bubbletea.Cmd {
	if m.entries == nil {
		return nil
	}
	ch := m.entries
	return func() bubbletea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return journalMsg{entry: entry}
	}
}

func describeEntry(entry types.JournalEntry) string {
	switch e := entry.(type) {
	case *types.JournalSpinItem:
		if !e.Success {
			return fmt.Sprintf("journal: spin %s abandoned", shortID(e.SpinID))
		}
		return fmt.Sprintf("journal: spin %s %s (%d left)", shortID(e.SpinID), e.ItemName, e.Remaining)
	case *types.JournalUpdateItem:
		return fmt.Sprintf("journal: %d items saved", len(e.Items))
	case *types.JournalSnapshotItem:
		return "journal: snapshot " + e.Path
	default:
		return ""
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func tick() bubbletea.Cmd {
	return bubbletea.Tick(frameInterval, func(t time.Time) bubbletea.Msg {
		return tickMsg(t)
	})
}

func (m Model) View() string {
	parts := []string{
		m.headerView(),
		renderWheel(m.state.Sectors, m.rotation, m.radius),
		renderLegend(m.state.Sectors, m.state.Items),
		m.statusView(),
	}
	if m.ready {
		parts = append(parts, m.viewport.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) headerView() string {
	var style = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4"))
	return style.Render("Prize Wheel")
}

func (m Model) statusView() string {
	switch {
	case m.result != nil:
		return bannerStyle.Render(fmt.Sprintf("You won: %s", m.result.Item.Name)) + "  [enter] continue"
	case m.spinning:
		return "Spinning..."
	case m.err != nil:
		return errStyle.Render(m.err.Error()) + "  [space] spin  [q] quit"
	default:
		return "[space] spin  [q] quit"
	}
}
