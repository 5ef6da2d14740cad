package actor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/itemlist"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/spin"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/walstream"
)

// System manages the lifecycle of the wheel actor and provides a client-facing API.
// It is safe for concurrent use.
type System struct {
	wheelActor     *WheelActor
	streamingActor *StreamingActor
	cancel         context.CancelFunc
	done           chan struct{}
	wg             sync.WaitGroup
	stopOnce       sync.Once
}

// SystemOptional provides optional parameters for creating a new System.
type SystemOptional struct {
	FlushAfterN       int
	RequestBufferSize int
	Streamer          walstream.Streamer

	MinLaps         int
	MaxLaps         int
	InitialRotation float64
	Spins           uint64
	Planner         spin.Planner
	NewID           func() string
	// OnResolved runs on the actor goroutine after each resolution.
	OnResolved func(types.Resolution)
}

// NewSystem creates, starts, and returns a new actor system.
func NewSystem(ctx *types.Context, list *itemlist.List, rnd types.RandSource, opt *SystemOptional) (*System, error) {
	if opt == nil {
		opt = &SystemOptional{}
	}
	flushN := 1
	if opt.FlushAfterN > 0 {
		flushN = opt.FlushAfterN
	}
	bufSize := 100
	if opt.RequestBufferSize > 0 {
		bufSize = opt.RequestBufferSize
	}

	var logger *slog.Logger
	if ctx.Utils != nil {
		logger = ctx.Utils.GetLogger()
	}
	machine := spin.NewMachine(list, rnd, &spin.MachineOptional{
		MinLaps:         opt.MinLaps,
		MaxLaps:         opt.MaxLaps,
		InitialRotation: opt.InitialRotation,
		OnResolved:      opt.OnResolved,
		Planner:         opt.Planner,
		Logger:          logger,
		NewID:           opt.NewID,
	})
	if err := machine.Restore(opt.InitialRotation, opt.Spins); err != nil {
		return nil, err
	}

	wheelActor := NewWheelActor(ctx, list, machine, bufSize, flushN)

	var streamingActor *StreamingActor
	if opt.Streamer != nil {
		streamingActor = NewStreamingActor(opt.Streamer, bufSize)
		wheelActor.SetStreamChannel(streamingActor.mailbox)
	}

	if err := wheelActor.Init(); err != nil {
		// If init fails, we must ensure the journal is closed.
		ctx.Journal.Close()
		if streamingActor != nil {
			close(streamingActor.mailbox)
		}
		return nil, fmt.Errorf("actor initialization failed: %w", err)
	}

	actorCtx, cancel := context.WithCancel(context.Background())
	sys := &System{
		wheelActor:     wheelActor,
		streamingActor: streamingActor,
		cancel:         cancel,
		done:           make(chan struct{}),
	}

	sys.wg.Add(2)
	go func() {
		defer sys.wg.Done()
		defer close(sys.done)
		sys.wheelActor.Receive(actorCtx)
		if sys.streamingActor != nil {
			close(sys.streamingActor.mailbox)
		}
	}()
	go func() {
		defer sys.wg.Done()
		if sys.streamingActor == nil {
			return
		}
		sys.streamingActor.Receive()
	}()

	return sys, nil
}

// request delivers a message built around a fresh response channel and waits for the reply.
func request[R any](s *System, build func(chan R) interface{}) (R, error) {
	var zero R
	respChan := make(chan R, 1)
	select {
	case s.wheelActor.mailbox <- build(respChan):
	case <-s.done:
		return zero, types.ErrShutingDown
	}

	select {
	case resp, ok := <-respChan:
		if !ok {
			return zero, types.ErrShutingDown
		}
		return resp, nil
	case <-s.done:
		select {
		case resp, ok := <-respChan:
			if ok {
				return resp, nil
			}
		default:
		}
		return zero, types.ErrShutingDown
	}
}

// Spin starts a spin. The winner is already fixed in the returned record.
func (s *System) Spin() (spin.Record, error) {
	resp, err := request(s, func(ch chan SpinResponse) interface{} { return SpinMessage{ResponseChan: ch} })
	if err != nil {
		return spin.Record{}, err
	}
	return resp.Record, resp.Err
}

// AnimationComplete signals that the wheel stopped at the target rotation.
func (s *System) AnimationComplete() (types.Resolution, error) {
	resp, err := request(s, func(ch chan CompleteResponse) interface{} { return CompleteMessage{ResponseChan: ch} })
	if err != nil {
		return types.Resolution{}, err
	}
	return resp.Resolution, resp.Err
}

// Acknowledge dismisses the resolved spin.
func (s *System) Acknowledge() error {
	return s.requestErr(func(ch chan error) interface{} { return AckMessage{ResponseChan: ch} })
}

// Flush manually triggers a journal flush.
func (s *System) Flush() error {
	return s.requestErr(func(ch chan error) interface{} { return FlushMessage{ResponseChan: ch} })
}

// Snapshot manually triggers a snapshot.
func (s *System) Snapshot() error {
	return s.requestErr(func(ch chan error) interface{} { return SnapshotMessage{ResponseChan: ch} })
}

// UpdateItems replaces the item list.
func (s *System) UpdateItems(items []types.Item) error {
	return s.requestErr(func(ch chan error) interface{} {
		return UpdateItemsMessage{Items: items, ResponseChan: ch}
	})
}

// State returns the current state of the wheel.
func (s *System) State() (State, error) {
	return request(s, func(ch chan State) interface{} { return StateMessage{ResponseChan: ch} })
}

func (s *System) requestErr(build func(chan error) interface{}) error {
	resp, err := request(s, build)
	if err != nil {
		return err
	}
	return resp
}

// Stop gracefully shuts down the actor system.
func (s *System) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()  // Signal the actor to stop
		s.wg.Wait() // Wait for the actor's goroutine to finish
	})
}
