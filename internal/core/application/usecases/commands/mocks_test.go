package commands_test

import (
	"context"
	"testing"
	"time"

	"shipment/internal/core/application/usecases/commands"
	"shipment/internal/core/domain/model/actor"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/order"
	"shipment/internal/core/domain/model/refund"
	"shipment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) UpdateIfStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

type MockRefundRepository struct{ mock.Mock }

func (m *MockRefundRepository) Add(ctx context.Context, r *refund.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRefundRepository) Get(ctx context.Context, id kernel.UUID) (*refund.Request, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*refund.Request)
	return r, args.Error(1)
}

func (m *MockRefundRepository) FindPendingByOrder(ctx context.Context, orderID kernel.UUID) (*refund.Request, error) {
	args := m.Called(ctx, orderID)
	r, _ := args.Get(0).(*refund.Request)
	return r, args.Error(1)
}

func (m *MockRefundRepository) UpdateIfStatus(ctx context.Context, r *refund.Request, expected refund.Status) error {
	args := m.Called(ctx, r, expected)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct {
	MockOrderUoW
}

func (m *MockUoW) RefundRepository() ports.RefundRepository {
	args := m.Called()
	return args.Get(0).(ports.RefundRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockBlobStorage struct{ mock.Mock }

func (m *MockBlobStorage) Store(ctx context.Context, blob ports.Blob) (string, error) {
	args := m.Called(ctx, blob)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStorage) Delete(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

func (m *MockBlobStorage) PresignedURL(ctx context.Context, ref string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, ref, ttl)
	return args.String(0), args.Error(1)
}

type parties struct {
	buyer, seller, rider, admin actor.Actor
}

func newParties(t *testing.T) parties {
	t.Helper()
	mk := func(r actor.Role) actor.Actor {
		a, err := actor.NewActor(kernel.NewUUID(), r)
		require.NoError(t, err)
		return a
	}
	return parties{buyer: mk(actor.Consumer), seller: mk(actor.Farmer), rider: mk(actor.Rider), admin: mk(actor.Admin)}
}

func storedOrder(t *testing.T, p parties, status order.Status, proof string) *order.Order {
	t.Helper()
	total, err := kernel.MoneyFromString("450.50")
	require.NoError(t, err)
	shipTo, err := kernel.NewAddress("12 Rizal St, Lipa City")
	require.NoError(t, err)

	var rider *kernel.UUID
	if status != order.OrderPlaced && status != order.WaitingForCourier {
		id := p.rider.ID()
		rider = &id
	}

	at := time.Date(2026, 6, 1, 9, 30, 0, 0, time.UTC)
	o, err := order.RestoreOrder(kernel.NewUUID(), order.Details{
		Number:        order.GenerateNumber(at),
		AccountID:     p.buyer.ID(),
		ProductID:     kernel.NewUUID(),
		SellerID:      p.seller.ID(),
		Quantity:      3,
		TotalAmount:   total,
		PaymentMethod: "Cash on Delivery",
		ShipTo:        shipTo,
	}, status, rider, proof, at, at)
	require.NoError(t, err)
	return o
}

func pendingRequest(t *testing.T, o *order.Order, solution refund.Solution) *refund.Request {
	t.Helper()
	r, err := refund.NewRequest(kernel.NewUUID(), o, refund.Claim{
		Reason:        "Wrong variety delivered",
		Solution:      solution,
		ReturnMethod:  refund.DropOff,
		PaymentMethod: "GCash",
	}, time.Now())
	require.NoError(t, err)
	return r
}
