// Package spin sequences one wheel spin: selection, animation, settle,
// resolution and quantity decrement. A Machine is not safe for concurrent use;
// callers that share it wrap it in a single owner such as the actor package.
package spin

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/selector"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/wheel"
)

// Planner computes the target rotation for a spin. wheel.Plan is the default.
type Planner func(current float64, target types.Sector, laps int) float64

// MachineOptional provides optional parameters for creating a new Machine.
type MachineOptional struct {
	MinLaps int
	MaxLaps int

	// InitialRotation restores the rotation baseline of a previous session.
	InitialRotation float64

	// OnResolved is called once per spin, after the decrement.
	OnResolved func(types.Resolution)

	Planner Planner
	Logger  *slog.Logger
	NewID   func() string
}

// Machine is the spin lifecycle state machine:
// Idle → Spinning → Settling → Resolved → Idle.
type Machine struct {
	inventory types.Inventory
	rand      types.RandSource

	minLaps    int
	maxLaps    int
	planner    Planner
	onResolved func(types.Resolution)
	logger     *slog.Logger
	newID      func() string

	phase      Phase
	record     *Record
	resolution *types.Resolution
	rotation   float64
	spins      uint64
}

// NewMachine creates an idle machine drawing from inventory with randomness from rnd.
func NewMachine(inventory types.Inventory, rnd types.RandSource, opt *MachineOptional) *Machine {
	m := &Machine{
		inventory: inventory,
		rand:      rnd,
		minLaps:   wheel.DefaultMinLaps,
		maxLaps:   wheel.DefaultMaxLaps,
		planner:   wheel.Plan,
		newID:     uuid.NewString,
	}
	if opt == nil {
		return m
	}
	if opt.MinLaps > 0 {
		m.minLaps = opt.MinLaps
	}
	if opt.MaxLaps > 0 {
		m.maxLaps = opt.MaxLaps
	}
	if opt.Planner != nil {
		m.planner = opt.Planner
	}
	if opt.NewID != nil {
		m.newID = opt.NewID
	}
	m.onResolved = opt.OnResolved
	m.logger = opt.Logger
	m.rotation = opt.InitialRotation
	return m
}

// Spin commits a new spin. The winner is chosen here, before any animation.
// Outside Idle it is a no-op returning ErrSpinInProgress; with no drawable
// items it returns ErrNothingToDraw and stays Idle.
func (m *Machine) Spin() (Record, error) {
	if m.phase != PhaseIdle {
		m.debug("Spin ignored.", "phase", m.phase.String())
		return Record{}, types.ErrSpinInProgress
	}

	eligible := wheel.Eligible(m.inventory.Items())
	if len(eligible) == 0 {
		return Record{}, types.ErrNothingToDraw
	}

	sectors, err := wheel.Layout(eligible)
	if err != nil {
		return Record{}, err
	}
	pss, err := selector.NewPrefixSumSelector(eligible)
	if err != nil {
		return Record{}, err
	}
	idx, selected := pss.Select(m.rand)
	laps := wheel.DrawLaps(m.rand, m.minLaps, m.maxLaps)

	m.record = &Record{
		ID:             m.newID(),
		Phase:          PhaseSpinning,
		Selected:       selected,
		Sectors:        sectors,
		BaseRotation:   m.rotation,
		TargetRotation: m.planner(m.rotation, sectors[idx], laps),
		Laps:           laps,
	}
	m.resolution = nil
	m.phase = PhaseSpinning

	m.debug("Spin committed.", "spin_id", m.record.ID, "item", selected.Name,
		"from", m.record.BaseRotation, "to", m.record.TargetRotation)
	return m.record.clone(), nil
}

// AnimationComplete is the single signal that the wheel has stopped at the
// target rotation. It settles and resolves the spin. A signal delivered
// outside Spinning is ignored with ErrNotSpinning, so a duplicate can never
// decrement twice.
func (m *Machine) AnimationComplete() (types.Resolution, error) {
	if m.phase != PhaseSpinning {
		return types.Resolution{}, types.ErrNotSpinning
	}
	m.setPhase(PhaseSettling)
	rec := m.record

	landed, err := wheel.SectorAt(rec.TargetRotation, rec.Sectors)
	if err == nil && landed.Item.Name != rec.Selected.Name {
		err = fmt.Errorf("%w: selected %q, pointer shows %q at rotation %.6f",
			types.ErrPointerMismatch, rec.Selected.Name, landed.Item.Name, rec.TargetRotation)
	}
	if err != nil {
		if m.logger != nil {
			m.logger.Error("Spin could not be resolved.", "spin_id", rec.ID, "error", err)
		}
		// The wheel did stop at the target, keep it as the baseline.
		m.rotation = rec.TargetRotation
		m.record = nil
		m.phase = PhaseIdle
		return types.Resolution{}, err
	}

	remaining := 0
	updated, err := m.inventory.Decrement(rec.Selected.Name)
	if err != nil {
		// The item was removed from the list while the wheel was turning.
		if m.logger != nil {
			m.logger.Warn("Winner no longer in item list.", "spin_id", rec.ID, "item", rec.Selected.Name, "error", err)
		}
	} else {
		remaining = updated.Quantity
	}

	res := types.Resolution{
		SpinID:    rec.ID,
		Item:      rec.Selected,
		Remaining: remaining,
		Rotation:  rec.TargetRotation,
	}
	m.resolution = &res
	m.spins++
	m.setPhase(PhaseResolved)

	if m.onResolved != nil {
		m.onResolved(res)
	}
	return res, nil
}

// Acknowledge returns a resolved machine to Idle. The target rotation becomes
// the baseline of the next spin.
func (m *Machine) Acknowledge() error {
	if m.phase != PhaseResolved {
		return types.ErrNotResolved
	}
	m.rotation = m.record.TargetRotation
	m.record = nil
	m.phase = PhaseIdle
	return nil
}

// Phase returns the current lifecycle phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// IsSpinning reports whether a committed spin has not resolved yet.
func (m *Machine) IsSpinning() bool {
	return m.phase == PhaseSpinning || m.phase == PhaseSettling
}

// CurrentRotation is the rotation the wheel rests at before the active spin,
// or its resting rotation when idle.
func (m *Machine) CurrentRotation() float64 {
	if m.record != nil {
		return m.record.BaseRotation
	}
	return m.rotation
}

// TargetRotation is the rotation the active spin ends at. Without an active
// spin it equals CurrentRotation.
func (m *Machine) TargetRotation() float64 {
	if m.record != nil {
		return m.record.TargetRotation
	}
	return m.rotation
}

// Sectors returns the layout to render: the one captured by the active spin,
// otherwise a fresh layout of the drawable items. It is empty when nothing
// can be drawn.
func (m *Machine) Sectors() []types.Sector {
	if m.record != nil {
		return append([]types.Sector(nil), m.record.Sectors...)
	}
	sectors, err := wheel.Layout(wheel.Eligible(m.inventory.Items()))
	if err != nil {
		return nil
	}
	return sectors
}

// Record returns the active spin, if any.
func (m *Machine) Record() (Record, bool) {
	if m.record == nil {
		return Record{}, false
	}
	return m.record.clone(), true
}

// Resolution returns the outcome of the spin waiting to be acknowledged.
func (m *Machine) Resolution() (types.Resolution, bool) {
	if m.phase != PhaseResolved || m.resolution == nil {
		return types.Resolution{}, false
	}
	return *m.resolution, true
}

// Spins returns how many spins have resolved on this machine.
func (m *Machine) Spins() uint64 {
	return m.spins
}

// Restore sets the rotation baseline and spin count. Only valid while idle.
func (m *Machine) Restore(rotation float64, spins uint64) error {
	if m.phase != PhaseIdle {
		return types.ErrSpinInProgress
	}
	m.rotation = rotation
	m.spins = spins
	return nil
}

func (m *Machine) setPhase(p Phase) {
	m.phase = p
	if m.record != nil {
		m.record.Phase = p
	}
}

func (m *Machine) debug(msg string, args ...any) {
	if m.logger != nil {
		m.logger.Debug(msg, args...)
	}
}
