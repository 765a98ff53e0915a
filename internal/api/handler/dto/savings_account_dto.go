package dto

import (
	"bank-services/internal/domain/savingsaccount"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// SavingsAccountRequest is the body of POST and PUT /savingsbankaccounts.
type SavingsAccountRequest struct {
	ID            FlexibleInt     `json:"id" swaggertype:"integer"`
	CustomerName  string          `json:"customerName"`
	CustomerID    FlexibleInt     `json:"customerId" swaggertype:"integer"`
	DepositAmount decimal.Decimal `json:"depositAmount" swaggertype:"number"`
	Location      string          `json:"location"`
	BranchCode    string          `json:"branchCode"`
}

func (r SavingsAccountRequest) ToDomain() *savingsaccount.SavingsAccount {
	return &savingsaccount.SavingsAccount{
		ID:            int64(r.ID),
		CustomerName:  r.CustomerName,
		CustomerID:    int64(r.CustomerID),
		DepositAmount: r.DepositAmount,
		Location:      r.Location,
		BranchCode:    r.BranchCode,
	}
}

type SavingsAccountResponse struct {
	ID            int64       `json:"id"`
	CustomerName  string      `json:"customerName"`
	CustomerID    int64       `json:"customerId"`
	DepositAmount json.Number `json:"depositAmount" swaggertype:"number"`
	Location      string      `json:"location"`
	BranchCode    string      `json:"branchCode"`
}

func NewSavingsAccountResponse(account *savingsaccount.SavingsAccount) SavingsAccountResponse {
	return SavingsAccountResponse{
		ID:            account.ID,
		CustomerName:  account.CustomerName,
		CustomerID:    account.CustomerID,
		DepositAmount: amount(account.DepositAmount),
		Location:      account.Location,
		BranchCode:    account.BranchCode,
	}
}

func NewSavingsAccountResponses(accounts []*savingsaccount.SavingsAccount) []SavingsAccountResponse {
	resp := make([]SavingsAccountResponse, len(accounts))
	for i, account := range accounts {
		resp[i] = NewSavingsAccountResponse(account)
	}
	return resp
}
