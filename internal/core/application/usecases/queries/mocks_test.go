package queries_test

import (
	"context"
	"time"

	"shipment/internal/core/application/usecases/queries"
	"shipment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderDetailsCache struct{ mock.Mock }

func (m *MockOrderDetailsCache) Get(ctx context.Context, number string) (queries.OrderDetails, int64, bool, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(queries.OrderDetails), args.Get(1).(int64), args.Bool(2), args.Error(3)
}

func (m *MockOrderDetailsCache) Set(ctx context.Context, details queries.OrderDetails, generation int64) error {
	args := m.Called(ctx, details, generation)
	return args.Error(0)
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
