package dto

import (
	"bank-services/internal/domain/homeloan"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// HomeLoanRequest is the body of POST and PUT /homeloans. Amounts, identifiers
// and the tenure are accepted as JSON numbers or numeric strings.
type HomeLoanRequest struct {
	ID           FlexibleInt     `json:"id" swaggertype:"integer"`
	CustomerName string          `json:"customerName"`
	CustomerID   FlexibleInt     `json:"customerId" swaggertype:"integer"`
	LoanAmount   decimal.Decimal `json:"loanAmount" swaggertype:"number"`
	Location     string          `json:"location"`
	LoanTenure   FlexibleInt     `json:"loanTenure" swaggertype:"integer"`
}

func (r HomeLoanRequest) ToDomain() *homeloan.HomeLoan {
	return &homeloan.HomeLoan{
		ID:           int64(r.ID),
		CustomerName: r.CustomerName,
		CustomerID:   int64(r.CustomerID),
		LoanAmount:   r.LoanAmount,
		Location:     r.Location,
		LoanTenure:   int(r.LoanTenure),
	}
}

type HomeLoanResponse struct {
	ID           int64       `json:"id"`
	CustomerName string      `json:"customerName"`
	CustomerID   int64       `json:"customerId"`
	LoanAmount   json.Number `json:"loanAmount" swaggertype:"number"`
	Location     string      `json:"location"`
	LoanTenure   int         `json:"loanTenure"`
}

func NewHomeLoanResponse(loan *homeloan.HomeLoan) HomeLoanResponse {
	return HomeLoanResponse{
		ID:           loan.ID,
		CustomerName: loan.CustomerName,
		CustomerID:   loan.CustomerID,
		LoanAmount:   amount(loan.LoanAmount),
		Location:     loan.Location,
		LoanTenure:   loan.LoanTenure,
	}
}

func NewHomeLoanResponses(loans []*homeloan.HomeLoan) []HomeLoanResponse {
	resp := make([]HomeLoanResponse, len(loans))
	for i, loan := range loans {
		resp[i] = NewHomeLoanResponse(loan)
	}
	return resp
}
