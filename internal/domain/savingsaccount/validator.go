package savingsaccount

import (
	"bank-services/internal/domain/biz"
	"context"
	"strings"
)

type Validator interface {
	Validate(ctx context.Context, account *SavingsAccount, state biz.InstanceState) []biz.ValidationFailure
}

type BizValidator struct{}

var _ Validator = BizValidator{}

func NewBizValidator() BizValidator {
	return BizValidator{}
}

func (BizValidator) Validate(_ context.Context, account *SavingsAccount, state biz.InstanceState) []biz.ValidationFailure {
	failures := []biz.ValidationFailure{}

	if strings.TrimSpace(account.CustomerName) == "" {
		failures = append(failures, biz.NewValidationFailure("CustomerName", "Name of the customer should not be empty."))
	}

	if strings.TrimSpace(account.Location) == "" {
		failures = append(failures, biz.NewValidationFailure("Location", "The Branch Location should not be empty."))
	}

	if strings.TrimSpace(account.BranchCode) == "" {
		failures = append(failures, biz.NewValidationFailure("BranchCode", "The Branch Code should not be empty."))
	}

	if account.CustomerID == 0 {
		failures = append(failures, biz.NewValidationFailure("CustomerId", "Customer ID should be specified."))
	}

	if state == biz.StateExisting && account.ID == 0 {
		failures = append(failures, biz.NewValidationFailure("Id", "ID of the Savings Bank Account should not be null or undefined for modifications."))
	}

	// Zero deposits skip the minimum check.
	if !account.DepositAmount.IsZero() && account.DepositAmount.LessThan(MinimumDepositAmount) {
		failures = append(failures, biz.NewValidationFailure("DepositAmount", "The Deposit Amount must be at least AUD 1,000."))
	}

	return failures
}
