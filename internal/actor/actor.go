package actor

import (
	"context"
	"errors"
	"fmt"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/itemlist"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/metrics"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/spin"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
)

// WheelActor owns the item list, the spin machine and the journal.
// It is designed to be run in a single goroutine, processing messages from its mailbox.
type WheelActor struct {
	ctx         *types.Context
	list        *itemlist.List
	machine     *spin.Machine
	mailbox     chan interface{}
	flushAfterN int
	pendingLogs []types.JournalEntry
	streamChan  chan<- types.JournalEntry
}

// NewWheelActor creates a new actor instance.
func NewWheelActor(ctx *types.Context, list *itemlist.List, machine *spin.Machine, mailboxSize, flushAfterN int) *WheelActor {
	return &WheelActor{
		ctx:         ctx,
		list:        list,
		machine:     machine,
		mailbox:     make(chan interface{}, mailboxSize),
		flushAfterN: flushAfterN,
		pendingLogs: make([]types.JournalEntry, 0, flushAfterN*2),
	}
}

// SetStreamChannel forwards every flushed entry to ch.
func (a *WheelActor) SetStreamChannel(ch chan<- types.JournalEntry) {
	a.streamChan = ch
}

// Init performs the initial setup for the actor, like creating an initial
// snapshot if the journal is empty. It's called once when the actor starts.
func (a *WheelActor) Init() error {
	a.publishRemaining()

	size, err := a.ctx.Journal.Size()
	if err != nil {
		return fmt.Errorf("could not determine journal size: %w", err)
	}

	if size == 0 {
		a.logInfo("Journal is empty, creating initial snapshot.")
		if err := a.snapshot(); err != nil {
			return fmt.Errorf("failed to create initial snapshot: %w", err)
		}
		return a.flush()
	}

	return nil
}

// Receive starts the actor's message processing loop.
// This method is expected to be called in its own goroutine.
func (a *WheelActor) Receive(ctx context.Context) {
	for {
		select {
		case msg := <-a.mailbox:
			a.handleMessage(msg)
		case <-ctx.Done():
			a.shutdown()
			return
		}
	}
}

func (a *WheelActor) handleMessage(msg interface{}) {
	switch m := msg.(type) {
	case SpinMessage:
		m.ResponseChan <- a.handleSpin()
	case CompleteMessage:
		m.ResponseChan <- a.handleComplete()
	case AckMessage:
		m.ResponseChan <- a.machine.Acknowledge()
	case FlushMessage:
		m.ResponseChan <- a.flush()
	case SnapshotMessage:
		err := a.snapshot()
		if err == nil {
			err = a.flush()
		}
		m.ResponseChan <- err
	case UpdateItemsMessage:
		m.ResponseChan <- a.handleUpdate(m.Items)
	case StateMessage:
		m.ResponseChan <- a.state()
	}
}

func (a *WheelActor) handleSpin() SpinResponse {
	rec, err := a.machine.Spin()
	switch {
	case err == nil:
		metrics.SpinsStarted.Inc()
	case errors.Is(err, types.ErrNothingToDraw):
		metrics.SpinsRejected.WithLabelValues("nothing_to_draw").Inc()
	case errors.Is(err, types.ErrSpinInProgress):
		metrics.SpinsRejected.WithLabelValues("in_progress").Inc()
	}
	return SpinResponse{Record: rec, Err: err}
}

func (a *WheelActor) handleComplete() CompleteResponse {
	rec, active := a.machine.Record()
	res, err := a.machine.AnimationComplete()
	if !active {
		return CompleteResponse{Err: err}
	}

	logItem := types.JournalSpinItem{
		JournalEntryBase: types.JournalEntryBase{Type: types.LogTypeSpin},
		SpinID:           rec.ID,
		ItemName:         rec.Selected.Name,
		Rotation:         rec.TargetRotation,
		Success:          err == nil,
	}
	if err == nil {
		logItem.Remaining = res.Remaining
		metrics.SpinsResolved.WithLabelValues(res.Item.Name).Inc()
		a.publishRemaining()
	} else {
		logItem.Error = resolveLogError(err)
		if logItem.Error == types.ErrorPointerMismatch {
			metrics.PointerMismatches.Inc()
		}
	}

	// Resolutions are flushed regardless of FlushAfterN.
	logErr := a.log(&logItem)
	if logErr == nil {
		logErr = a.flush()
	}
	if logErr != nil && err == nil {
		// The wheel already resolved; the caller still gets its result.
		if logger := a.ctx.Utils.GetLogger(); logger != nil {
			logger.Error("[Actor] Resolution not persisted.", "spin_id", rec.ID, "error", logErr)
		}
	}
	return CompleteResponse{Resolution: res, Err: err}
}

func resolveLogError(err error) types.LogError {
	switch {
	case errors.Is(err, types.ErrPointerMismatch):
		return types.ErrorPointerMismatch
	case errors.Is(err, types.ErrNoSectorAtPointer):
		return types.ErrorNoSectorAtPointer
	default:
		return types.ErrorNone
	}
}

func (a *WheelActor) handleUpdate(items []types.Item) error {
	if err := a.list.Replace(items); err != nil {
		return err
	}
	a.publishRemaining()

	return a.log(&types.JournalUpdateItem{
		JournalEntryBase: types.JournalEntryBase{Type: types.LogTypeUpdate},
		Items:            a.list.Items(),
	})
}

// log stages entry in the journal and flushes once enough entries are pending.
func (a *WheelActor) log(entry types.JournalEntry) error {
	var err error
	switch v := entry.(type) {
	case *types.JournalSpinItem:
		err = a.ctx.Journal.LogSpin(*v)
	case *types.JournalUpdateItem:
		err = a.ctx.Journal.LogUpdate(*v)
	case *types.JournalSnapshotItem:
		err = a.ctx.Journal.LogSnapshot(*v)
	}
	if err != nil {
		return err
	}
	a.pendingLogs = append(a.pendingLogs, entry)

	if len(a.pendingLogs) >= a.flushAfterN {
		return a.flush()
	}
	return nil
}

func (a *WheelActor) flush() error {
	if len(a.pendingLogs) == 0 {
		return nil
	}

	flushErr := a.ctx.Journal.Flush()
	if flushErr != nil {
		if errors.Is(flushErr, types.ErrJournalFull) {
			return a.handleJournalFull()
		}

		// In-memory state stays; the next snapshot will cover it.
		a.pendingLogs = a.pendingLogs[:0]
		a.ctx.Journal.Reset()
		if logger := a.ctx.Utils.GetLogger(); logger != nil {
			logger.Error("[Actor] Journal flush failed, dropping pending entries.", "error", flushErr)
		}
		return flushErr
	}

	if logger := a.ctx.Utils.GetLogger(); logger != nil {
		logger.Debug(fmt.Sprintf("[Actor] Journal flush - %d entries", len(a.pendingLogs)))
	}
	a.stream(a.pendingLogs)
	a.pendingLogs = a.pendingLogs[:0]
	return nil
}

// handleJournalFull rotates to a new journal file that starts with a snapshot.
// The snapshot already contains the effect of the entries that did not fit.
func (a *WheelActor) handleJournalFull() error {
	a.logInfo("Journal is full. Rotating and snapshotting.")

	covered := make([]types.JournalEntry, len(a.pendingLogs))
	copy(covered, a.pendingLogs)
	a.pendingLogs = a.pendingLogs[:0]
	a.ctx.Journal.Reset()

	rotatedPath := a.ctx.Utils.GenRotatedJournalPath()
	if rotatedPath != nil {
		if err := a.ctx.Journal.Rotate(*rotatedPath); err != nil {
			if logger := a.ctx.Utils.GetLogger(); logger != nil {
				logger.Error("Failed to rotate journal.", "error", err)
			}
			return err
		}
	}

	if err := a.snapshot(); err != nil {
		return err
	}
	if err := a.ctx.Journal.Flush(); err != nil {
		if logger := a.ctx.Utils.GetLogger(); logger != nil {
			logger.Error("CRITICAL: Could not flush snapshot to new journal. State may be inconsistent.", "error", err)
		}
		a.pendingLogs = a.pendingLogs[:0]
		a.ctx.Journal.Reset()
		return err
	}

	a.stream(covered)
	a.stream(a.pendingLogs)
	a.pendingLogs = a.pendingLogs[:0]
	return nil
}

func (a *WheelActor) stream(entries []types.JournalEntry) {
	if a.streamChan == nil {
		return
	}
	for _, entry := range entries {
		a.streamChan <- entry
	}
}

// snapshot writes the wheel state to disk and stages a snapshot entry.
func (a *WheelActor) snapshot() error {
	snapshotPath := a.ctx.Utils.GenSnapshotPath()
	if snapshotPath == nil {
		return nil // Snapshotting is disabled
	}

	a.logInfo("Creating snapshot.", "path", *snapshotPath)

	rotation := a.machine.CurrentRotation()
	if a.machine.Phase() == spin.PhaseResolved {
		rotation = a.machine.TargetRotation()
	}
	snap := &types.WheelSnapshot{
		Items:    a.list.Items(),
		Rotation: rotation,
		Spins:    a.machine.Spins(),
	}
	if err := itemlist.SaveSnapshot(*snapshotPath, snap); err != nil {
		if logger := a.ctx.Utils.GetLogger(); logger != nil {
			logger.Error("Failed to write snapshot.", "error", err)
		}
		return err
	}

	logItem := &types.JournalSnapshotItem{
		JournalEntryBase: types.JournalEntryBase{Type: types.LogTypeSnapshot},
		Path:             *snapshotPath,
	}
	if err := a.ctx.Journal.LogSnapshot(*logItem); err != nil {
		if logger := a.ctx.Utils.GetLogger(); logger != nil {
			logger.Error("Failed to log snapshot to journal.", "error", err)
		}
		return err
	}
	a.pendingLogs = append(a.pendingLogs, logItem)
	return nil
}

func (a *WheelActor) state() State {
	s := State{
		Phase:           a.machine.Phase().String(),
		Spinning:        a.machine.IsSpinning(),
		Items:           a.list.Items(),
		Sectors:         a.machine.Sectors(),
		CurrentRotation: a.machine.CurrentRotation(),
		TargetRotation:  a.machine.TargetRotation(),
		Spins:           a.machine.Spins(),
	}
	if rec, ok := a.machine.Record(); ok {
		s.Spin = &rec
	}
	if res, ok := a.machine.Resolution(); ok {
		s.Resolution = &res
	}
	return s
}

func (a *WheelActor) publishRemaining() {
	remaining := make(map[string]int)
	for _, item := range a.list.Items() {
		remaining[item.Name] = item.Quantity
	}
	metrics.SetRemaining(remaining)
}

func (a *WheelActor) logInfo(msg string, args ...any) {
	if logger := a.ctx.Utils.GetLogger(); logger != nil {
		logger.Info(msg, args...)
	}
}

func (a *WheelActor) shutdown() {
	if a.ctx.Utils.GetLogger() != nil {
		a.ctx.Utils.GetLogger().Debug("[Actor] Shutdown")
	}

	// Cancel queued requests.
drain:
	for {
		select {
		case msg := <-a.mailbox:
			reject(msg)
		default:
			break drain
		}
	}

	a.flush()
	a.ctx.Journal.Close()
}

func reject(msg interface{}) {
	switch m := msg.(type) {
	case SpinMessage:
		m.ResponseChan <- SpinResponse{Err: types.ErrShutingDown}
	case CompleteMessage:
		m.ResponseChan <- CompleteResponse{Err: types.ErrShutingDown}
	case AckMessage:
		m.ResponseChan <- types.ErrShutingDown
	case FlushMessage:
		m.ResponseChan <- types.ErrShutingDown
	case SnapshotMessage:
		m.ResponseChan <- types.ErrShutingDown
	case UpdateItemsMessage:
		m.ResponseChan <- types.ErrShutingDown
	case StateMessage:
		close(m.ResponseChan)
	}
}
