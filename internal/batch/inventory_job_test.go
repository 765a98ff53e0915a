package batch_test

import (
	"bank-services/internal/batch"
	"bank-services/internal/infrastructure/database/memory"
	"bank-services/internal/infrastructure/monitoring"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCounter struct {
	mock.Mock
}

func (m *MockCounter) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNewInventoryJob_PanicsWithoutStores(t *testing.T) {
	assert.Panics(t, func() { batch.NewInventoryJob(nil, logger) })
	assert.Panics(t, func() { batch.NewInventoryJob(map[string]batch.Counter{"homeloan": nil}, logger) })
	assert.Panics(t, func() {
		batch.NewInventoryJob(map[string]batch.Counter{"homeloan": new(MockCounter)}, nil)
	})
}

func TestInventoryJob_Run(t *testing.T) {
	t.Run("sets the gauge for every store", func(t *testing.T) {
		homeLoans := memory.NewHomeLoanRepository(true)
		accounts := memory.NewSavingsAccountRepository(false)

		job := batch.NewInventoryJob(map[string]batch.Counter{
			"inventory_test_homeloan":       homeLoans,
			"inventory_test_savingsaccount": accounts,
		}, logger)

		require.NoError(t, job.Run(context.Background()))
		assert.Equal(t, 4.0, testutil.ToFloat64(monitoring.Business.RecordsStored.WithLabelValues("inventory_test_homeloan")))
		assert.Equal(t, 0.0, testutil.ToFloat64(monitoring.Business.RecordsStored.WithLabelValues("inventory_test_savingsaccount")))
	})

	t.Run("one failing store does not stop the others", func(t *testing.T) {
		failing := new(MockCounter)
		failing.On("Count", mock.Anything).Return(0, errors.New("connection refused"))
		healthy := new(MockCounter)
		healthy.On("Count", mock.Anything).Return(7, nil)

		job := batch.NewInventoryJob(map[string]batch.Counter{
			"inventory_test_failing": failing,
			"inventory_test_healthy": healthy,
		}, logger)

		err := job.Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 errors")
		assert.Equal(t, 7.0, testutil.ToFloat64(monitoring.Business.RecordsStored.WithLabelValues("inventory_test_healthy")))
		failing.AssertExpectations(t)
		healthy.AssertExpectations(t)
	})
}
