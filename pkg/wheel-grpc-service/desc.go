package wheel_grpc_service

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "wheel.v1.WheelService"

const (
	MethodGetState     = "/" + ServiceName + "/GetState"
	MethodSpin         = "/" + ServiceName + "/Spin"
	MethodCompleteSpin = "/" + ServiceName + "/CompleteSpin"
	MethodAcknowledge  = "/" + ServiceName + "/Acknowledge"
)

// WheelServiceServer is the server API for wheel.v1.WheelService.
// Requests are empty; responses are JSON-shaped structs.
type WheelServiceServer interface {
	GetState(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	Spin(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	CompleteSpin(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	Acknowledge(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
}

// RegisterWheelServiceServer registers srv on s.
func RegisterWheelServiceServer(s grpc.ServiceRegistrar, srv WheelServiceServer) {
	s.RegisterService(&WheelService_ServiceDesc, srv)
}

func unaryHandler[R any](fullMethod string, call func(WheelServiceServer, context.Context, *emptypb.Empty) (R, error)) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(emptypb.Empty)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(WheelServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(WheelServiceServer), ctx, req.(*emptypb.Empty))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// WheelService_ServiceDesc is the grpc.ServiceDesc for wheel.v1.WheelService.
var WheelService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*WheelServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetState", Handler: unaryHandler(MethodGetState, WheelServiceServer.GetState)},
		{MethodName: "Spin", Handler: unaryHandler(MethodSpin, WheelServiceServer.Spin)},
		{MethodName: "CompleteSpin", Handler: unaryHandler(MethodCompleteSpin, WheelServiceServer.CompleteSpin)},
		{MethodName: "Acknowledge", Handler: unaryHandler(MethodAcknowledge, WheelServiceServer.Acknowledge)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "wheel/v1/wheel.proto",
}

// WheelServiceClient calls wheel.v1.WheelService.
type WheelServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewWheelServiceClient(cc grpc.ClientConnInterface) *WheelServiceClient {
	return &WheelServiceClient{cc: cc}
}

func (c *WheelServiceClient) GetState(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodGetState, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *WheelServiceClient) Spin(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodSpin, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *WheelServiceClient) CompleteSpin(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodCompleteSpin, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *WheelServiceClient) Acknowledge(ctx context.Context, opts ...grpc.CallOption) error {
	return c.cc.Invoke(ctx, MethodAcknowledge, &emptypb.Empty{}, new(emptypb.Empty), opts...)
}
