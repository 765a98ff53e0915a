package homeloan

import (
	"strconv"

	"github.com/shopspring/decimal"
)

const ResourceName = "homeloan"

var MinimumLoanAmount = decimal.NewFromInt(10000)

const MinimumLoanTenure = 5

type HomeLoan struct {
	ID           int64           `json:"id"`
	CustomerName string          `json:"customerName"`
	CustomerID   int64           `json:"customerId"`
	LoanAmount   decimal.Decimal `json:"loanAmount"`
	Location     string          `json:"location"`
	LoanTenure   int             `json:"loanTenure"`
}

func (l *HomeLoan) EntityID() int64 {
	return l.ID
}

func (l *HomeLoan) AssignID(id int64) {
	l.ID = id
}

func (l *HomeLoan) Clone() *HomeLoan {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}

// SearchFields returns the loan's fields keyed by their JSON names, with
// numbers rendered the way they appear on the wire.
func (l *HomeLoan) SearchFields() map[string]string {
	return map[string]string{
		"id":           strconv.FormatInt(l.ID, 10),
		"customerName": l.CustomerName,
		"customerId":   strconv.FormatInt(l.CustomerID, 10),
		"loanAmount":   l.LoanAmount.String(),
		"location":     l.Location,
		"loanTenure":   strconv.Itoa(l.LoanTenure),
	}
}
