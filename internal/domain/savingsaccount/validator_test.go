package savingsaccount

import (
	"bank-services/internal/domain/biz"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAccount() *SavingsAccount {
	return &SavingsAccount{
		ID:            1,
		CustomerName:  "Chuck Johns",
		CustomerID:    1024,
		DepositAmount: decimal.NewFromInt(12000),
		Location:      "Sydney",
		BranchCode:    "Syd001",
	}
}

func failedFields(failures []biz.ValidationFailure) []string {
	out := make([]string, len(failures))
	for i, f := range failures {
		out[i] = f.Field
	}
	return out
}

func TestBizValidator_Valid(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, NewBizValidator().Validate(ctx, validAccount(), biz.StateNew))
	assert.Empty(t, NewBizValidator().Validate(ctx, validAccount(), biz.StateExisting))
}

func TestBizValidator_EmptyRecordReportsRulesInOrder(t *testing.T) {
	failures := NewBizValidator().Validate(context.Background(), &SavingsAccount{}, biz.StateExisting)

	require.Len(t, failures, 5)
	assert.Equal(t, []string{"CustomerName", "Location", "BranchCode", "CustomerId", "Id"}, failedFields(failures))
	assert.Equal(t, "The Branch Location should not be empty.", failures[1].Message)
	assert.Equal(t, "The Branch Code should not be empty.", failures[2].Message)
	assert.Equal(t, "ID of the Savings Bank Account should not be null or undefined for modifications.", failures[4].Message)
}

func TestBizValidator_DepositMinimum(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected []string
	}{
		{"at minimum", decimal.NewFromInt(1000), []string{}},
		{"below minimum", decimal.NewFromInt(999), []string{"DepositAmount"}},
		{"zero skips minimum", decimal.Zero, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := validAccount()
			account.DepositAmount = tt.amount

			failures := NewBizValidator().Validate(context.Background(), account, biz.StateNew)
			assert.Equal(t, tt.expected, failedFields(failures))
		})
	}
}

func TestBizValidator_DepositMessage(t *testing.T) {
	account := validAccount()
	account.DepositAmount = decimal.NewFromInt(10)

	failures := NewBizValidator().Validate(context.Background(), account, biz.StateNew)
	require.Len(t, failures, 1)
	assert.Equal(t, "The Deposit Amount must be at least AUD 1,000.", failures[0].Message)
}
