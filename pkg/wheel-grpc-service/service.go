package wheel_grpc_service

import (
	"context"
	"encoding/json"
	"errors"
	"net"

	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/actor"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/spin"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// WheelSystem is an interface that actor.System implements.
type WheelSystem interface {
	State() (actor.State, error)
	Spin() (spin.Record, error)
	AnimationComplete() (types.Resolution, error)
	Acknowledge() error
}

// WheelService is a gRPC service that exposes the wheel.
type WheelService struct {
	system WheelSystem
}

var _ WheelServiceServer = (*WheelService)(nil)

// NewWheelService creates a new WheelService.
func NewWheelService(system WheelSystem) *WheelService {
	return &WheelService{
		system: system,
	}
}

// ListenAndServe starts the gRPC server and stops it when ctx is done.
func ListenAndServe(ctx context.Context, system WheelSystem, listenAddress string) error {
	lis, err := net.Listen("tcp", listenAddress)
	if err != nil {
		return err
	}
	return Serve(ctx, system, lis)
}

// Serve runs the gRPC server on lis.
func Serve(ctx context.Context, system WheelSystem, lis net.Listener) error {
	s := grpc.NewServer()
	RegisterWheelServiceServer(s, NewWheelService(system))

	go func() {
		<-ctx.Done()
		s.GracefulStop()
	}()

	return s.Serve(lis)
}

// GetState returns the current state of the wheel.
func (s *WheelService) GetState(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	state, err := s.system.State()
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(state)
}

// Spin starts a spin and returns its record.
func (s *WheelService) Spin(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	rec, err := s.system.Spin()
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(rec)
}

// CompleteSpin delivers the animation complete signal and returns the resolution.
func (s *WheelService) CompleteSpin(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	res, err := s.system.AnimationComplete()
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(res)
}

// Acknowledge dismisses the resolved spin.
func (s *WheelService) Acknowledge(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if err := s.system.Acknowledge(); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func toStruct(v interface{}) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	out := &structpb.Struct{}
	if err := out.UnmarshalJSON(b); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func toStatus(err error) error {
	code := codes.Internal
	switch {
	case errors.Is(err, types.ErrSpinInProgress),
		errors.Is(err, types.ErrNotSpinning),
		errors.Is(err, types.ErrNotResolved),
		errors.Is(err, types.ErrNothingToDraw):
		code = codes.FailedPrecondition
	case errors.Is(err, types.ErrShutingDown):
		code = codes.Unavailable
	}
	return status.Error(code, err.Error())
}
