package homeloan_test

import (
	"bank-services/internal/domain/biz"
	"bank-services/internal/domain/homeloan"
	"bank-services/internal/infrastructure/database/memory"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryService(seed bool) homeloan.HomeLoanService {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return homeloan.NewHomeLoanService(memory.NewHomeLoanRepository(seed), homeloan.NewBizValidator(), nil, logger)
}

func TestHomeLoanLifecycle(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService(false)

	added, err := service.AddHomeLoan(ctx, &homeloan.HomeLoan{
		CustomerName: "John Doe",
		CustomerID:   1,
		LoanAmount:   decimal.NewFromInt(50000),
		Location:     "Sydney",
		LoanTenure:   10,
	})
	require.NoError(t, err)
	require.Equal(t, biz.StatusCreated, added.Status)
	id := added.Data.ID
	assert.Equal(t, int64(1), id)

	got, err := service.GetHomeLoanByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, biz.StatusSpecificItemFound, got.Status)
	assert.Equal(t, "John Doe", got.Data.CustomerName)

	modified := got.Data.Clone()
	modified.Location = "Perth"
	modResp, err := service.ModifyHomeLoan(ctx, modified)
	require.NoError(t, err)
	assert.Equal(t, biz.StatusModified, modResp.Status)

	got, err = service.GetHomeLoanByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Perth", got.Data.Location)

	delResp, err := service.DeleteHomeLoan(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, biz.StatusDeleted, delResp.Status)

	got, err = service.GetHomeLoanByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, biz.StatusSpecificItemNotFound, got.Status)

	delResp, err = service.DeleteHomeLoan(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, biz.StatusSpecificItemNotFound, delResp.Status)
}

func TestHomeLoanFailedValidationLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService(true)

	resp, err := service.AddHomeLoan(ctx, &homeloan.HomeLoan{CustomerName: "Low", CustomerID: 7, Location: "Darwin", LoanAmount: decimal.NewFromInt(500)})
	require.NoError(t, err)
	assert.Equal(t, biz.StatusValidationFailed, resp.Status)

	all, err := service.SearchHomeLoans(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all.Data, 4)

	original, err := service.GetHomeLoanByID(ctx, 1)
	require.NoError(t, err)
	broken := original.Data.Clone()
	broken.CustomerName = ""
	modResp, err := service.ModifyHomeLoan(ctx, broken)
	require.NoError(t, err)
	assert.Equal(t, biz.StatusValidationFailed, modResp.Status)

	after, err := service.GetHomeLoanByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, original.Data, after.Data)
}

func TestHomeLoanModifyUnknownIDDoesNotInsert(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService(true)

	resp, err := service.ModifyHomeLoan(ctx, &homeloan.HomeLoan{ID: 99, CustomerName: "Ghost", CustomerID: 9, Location: "Nowhere"})
	require.NoError(t, err)
	assert.Equal(t, biz.StatusSpecificItemNotFound, resp.Status)

	all, err := service.SearchHomeLoans(ctx, map[string]string{})
	require.NoError(t, err)
	assert.Len(t, all.Data, 4)
}

func TestHomeLoanSearchSeededStore(t *testing.T) {
	ctx := context.Background()
	service := newMemoryService(true)

	resp, err := service.SearchHomeLoans(ctx, map[string]string{"location": "Canberra"})
	require.NoError(t, err)
	assert.Equal(t, biz.StatusMatchingItemsFound, resp.Status)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Alice Johnson", resp.Data[0].CustomerName)

	resp, err = service.SearchHomeLoans(ctx, map[string]string{"location": "Auckland"})
	require.NoError(t, err)
	assert.Equal(t, biz.StatusMatchingItemsNotFound, resp.Status)
	assert.Empty(t, resp.Data)
}
