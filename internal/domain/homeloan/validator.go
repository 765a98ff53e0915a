package homeloan

import (
	"bank-services/internal/domain/biz"
	"context"
	"strings"
)

type Validator interface {
	Validate(ctx context.Context, loan *HomeLoan, state biz.InstanceState) []biz.ValidationFailure
}

type BizValidator struct{}

var _ Validator = BizValidator{}

func NewBizValidator() BizValidator {
	return BizValidator{}
}

// Validate reports every rule the loan breaks, in a fixed order. The amount and
// tenure minimums only apply to non-zero values; a zero amount or tenure is
// accepted as is.
func (BizValidator) Validate(_ context.Context, loan *HomeLoan, state biz.InstanceState) []biz.ValidationFailure {
	failures := []biz.ValidationFailure{}

	if strings.TrimSpace(loan.CustomerName) == "" {
		failures = append(failures, biz.NewValidationFailure("CustomerName", "Name of the customer should not be empty."))
	}

	if strings.TrimSpace(loan.Location) == "" {
		failures = append(failures, biz.NewValidationFailure("Location", "Property Location of the home loan should not be empty."))
	}

	if loan.CustomerID == 0 {
		failures = append(failures, biz.NewValidationFailure("CustomerId", "Customer ID should be specified."))
	}

	if state == biz.StateExisting && loan.ID == 0 {
		failures = append(failures, biz.NewValidationFailure("Id", "ID of the Home Loan should not be null or undefined for modifications."))
	}

	if !loan.LoanAmount.IsZero() && loan.LoanAmount.LessThan(MinimumLoanAmount) {
		failures = append(failures, biz.NewValidationFailure("LoanAmount", "The Loan Amount must be at least AUD 10,000."))
	}

	if loan.LoanTenure != 0 && loan.LoanTenure < MinimumLoanTenure {
		failures = append(failures, biz.NewValidationFailure("LoanTenure", "Home Loan tenure must be at least 5 years."))
	}

	return failures
}
