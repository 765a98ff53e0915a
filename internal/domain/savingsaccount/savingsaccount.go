package savingsaccount

import (
	"strconv"

	"github.com/shopspring/decimal"
)

const ResourceName = "savingsaccount"

var MinimumDepositAmount = decimal.NewFromInt(1000)

type SavingsAccount struct {
	ID            int64           `json:"id"`
	CustomerName  string          `json:"customerName"`
	CustomerID    int64           `json:"customerId"`
	DepositAmount decimal.Decimal `json:"depositAmount"`
	Location      string          `json:"location"`
	BranchCode    string          `json:"branchCode"`
}

func (a *SavingsAccount) EntityID() int64 {
	return a.ID
}

func (a *SavingsAccount) AssignID(id int64) {
	a.ID = id
}

func (a *SavingsAccount) Clone() *SavingsAccount {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func (a *SavingsAccount) SearchFields() map[string]string {
	return map[string]string{
		"id":            strconv.FormatInt(a.ID, 10),
		"customerName":  a.CustomerName,
		"customerId":    strconv.FormatInt(a.CustomerID, 10),
		"depositAmount": a.DepositAmount.String(),
		"location":      a.Location,
		"branchCode":    a.BranchCode,
	}
}
