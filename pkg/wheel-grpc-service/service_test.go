package wheel_grpc_service_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/actor"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/itemlist"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/types"
	"github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/internal/utils"
	grpc_service "github.com/tinnguyenhuuletrong/my-small-app-playground/tiny-prize-wheel-go/pkg/wheel-grpc-service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newClient(t *testing.T, items []types.Item) *grpc_service.WheelServiceClient {
	t.Helper()
	list, err := itemlist.NewList(items)
	require.NoError(t, err)
	sys, err := actor.NewSystem(&types.Context{Journal: &utils.MockJournal{}, Utils: &utils.MockUtils{}}, list,
		&utils.MockRandSource{Floats: []float64{0.5, 0.5, 0.5}, Ints: []int{3}}, nil)
	require.NoError(t, err)

	lis := bufconn.Listen(1024 * 1024)
	ctx, cancel := context.WithCancel(context.Background())
	go grpc_service.Serve(ctx, sys, lis)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		cancel()
		sys.Stop()
	})
	return grpc_service.NewWheelServiceClient(conn)
}

func TestWheelService_SpinCycle(t *testing.T) {
	client := newClient(t, []types.Item{{Name: "gold", Quantity: 2}})
	ctx := context.Background()

	state, err := client.GetState(ctx)
	require.NoError(t, err)
	assert.Equal(t, "idle", state.Fields["phase"].GetStringValue())
	assert.Len(t, state.Fields["sectors"].GetListValue().GetValues(), 1)

	rec, err := client.Spin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "gold", rec.Fields["selected"].GetStructValue().Fields["name"].GetStringValue())
	// Default laps are 5..10; Intn(6) returns 3.
	assert.Equal(t, 8.0, rec.Fields["laps"].GetNumberValue())

	_, err = client.Spin(ctx)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	res, err := client.CompleteSpin(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Fields["remaining"].GetNumberValue())

	require.NoError(t, client.Acknowledge(ctx))
	err = client.Acknowledge(ctx)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestWheelService_NothingToDraw(t *testing.T) {
	client := newClient(t, []types.Item{{Name: "gold", Quantity: 0}})

	_, err := client.Spin(context.Background())
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}
