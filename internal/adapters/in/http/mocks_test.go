package http_test

import (
	"context"

	"shipment/internal/core/application/usecases/commands"
	"shipment/internal/core/application/usecases/queries"
	"shipment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockAuditLog struct{ mock.Mock }

func (m *MockAuditLog) Record(ctx context.Context, entry ports.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockPlaceOrderHandler struct{ mock.Mock }

func (m *MockPlaceOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.OrderView, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.OrderView), args.Error(1)
}

type MockApplyTransitionHandler struct{ mock.Mock }

func (m *MockApplyTransitionHandler) Handle(ctx context.Context, cmd commands.ApplyTransitionCommand) (commands.OrderView, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.OrderView), args.Error(1)
}

type MockRequestRefundHandler struct{ mock.Mock }

func (m *MockRequestRefundHandler) Handle(ctx context.Context, cmd commands.RequestRefundCommand) (commands.RefundOutcome, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.RefundOutcome), args.Error(1)
}

type MockApproveRefundHandler struct{ mock.Mock }

func (m *MockApproveRefundHandler) Handle(ctx context.Context, cmd commands.ApproveRefundCommand) (commands.RefundOutcome, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.RefundOutcome), args.Error(1)
}

type MockRejectRefundHandler struct{ mock.Mock }

func (m *MockRejectRefundHandler) Handle(ctx context.Context, cmd commands.RejectRefundCommand) (commands.RefundOutcome, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.RefundOutcome), args.Error(1)
}

type MockOrderDetailsReader struct{ mock.Mock }

func (m *MockOrderDetailsReader) Handle(ctx context.Context, query queries.GetOrderDetailsQuery) (queries.OrderDetails, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderDetails), args.Error(1)
}

type MockOrderLister struct{ mock.Mock }

func (m *MockOrderLister) Handle(ctx context.Context, query queries.ListOrdersByStatusQuery) ([]queries.OrderDetails, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.OrderDetails), args.Error(1)
}

type MockStatusHistoryReader struct{ mock.Mock }

func (m *MockStatusHistoryReader) Handle(ctx context.Context, query queries.GetStatusHistoryQuery) ([]queries.StatusHistoryEntry, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.StatusHistoryEntry), args.Error(1)
}

type MockDeliveryProofReader struct{ mock.Mock }

func (m *MockDeliveryProofReader) Handle(ctx context.Context, query queries.GetDeliveryProofQuery) (queries.DeliveryProof, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.DeliveryProof), args.Error(1)
}

type MockRiderHistoryReader struct{ mock.Mock }

func (m *MockRiderHistoryReader) Handle(ctx context.Context, query queries.GetRiderHistoryQuery) ([]queries.OrderDetails, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.OrderDetails), args.Error(1)
}

type MockRefundRequestLister struct{ mock.Mock }

func (m *MockRefundRequestLister) Handle(ctx context.Context, query queries.ListRefundRequestsQuery) ([]queries.RefundRequestDetails, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.RefundRequestDetails), args.Error(1)
}
