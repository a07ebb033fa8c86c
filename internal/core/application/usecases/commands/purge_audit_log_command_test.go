package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shipment/internal/core/application/usecases/commands"
	"shipment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuditLogPurger struct{ mock.Mock }

func (m *MockAuditLogPurger) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func TestPurgeAuditLogCommandHandler_Handle(t *testing.T) {
	t.Run("should purge entries older than the retention", func(t *testing.T) {
		ctx := t.Context()
		retention := 30 * 24 * time.Hour
		cmd, err := commands.NewPurgeAuditLogCommand(retention)
		require.NoError(t, err)
		purger := new(MockAuditLogPurger)
		before := time.Now().Add(-retention)
		purger.On("PurgeOlderThan", ctx, mock.MatchedBy(func(cutoff time.Time) bool {
			return !cutoff.Before(before) && cutoff.Before(time.Now().Add(-retention+time.Minute))
		})).Return(int64(42), nil).Once()

		n, err := commands.NewPurgeAuditLogCommandHandler(purger).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, int64(42), n)
		purger.AssertExpectations(t)
	})

	t.Run("should return purger error", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewPurgeAuditLogCommand(7 * 24 * time.Hour)
		require.NoError(t, err)
		purger := new(MockAuditLogPurger)
		purger.On("PurgeOlderThan", ctx, mock.Anything).Return(int64(0), errors.New("db down")).Once()

		_, err = commands.NewPurgeAuditLogCommandHandler(purger).Handle(ctx, cmd)

		require.EqualError(t, err, "db down")
	})

	t.Run("should refuse a retention shorter than a day", func(t *testing.T) {
		_, err := commands.NewPurgeAuditLogCommand(time.Hour)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
