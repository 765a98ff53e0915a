package memory

import (
	"bank-services/internal/domain/homeloan"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

type HomeLoanRepository struct {
	store *Store[*homeloan.HomeLoan]
}

var _ homeloan.Repository = (*HomeLoanRepository)(nil)

func NewHomeLoanRepository(seed bool) *HomeLoanRepository {
	store := NewStore[*homeloan.HomeLoan]()
	if seed {
		store.Seed(sampleHomeLoans()...)
	}
	return &HomeLoanRepository{store: store}
}

func (r *HomeLoanRepository) Insert(ctx context.Context, loan *homeloan.HomeLoan) (*homeloan.HomeLoan, error) {
	return r.store.Insert(ctx, loan), nil
}

func (r *HomeLoanRepository) Replace(ctx context.Context, loan *homeloan.HomeLoan) error {
	if err := r.store.Replace(ctx, loan); err != nil {
		return fmt.Errorf("%w: id %d", homeloan.ErrNotFound, loan.ID)
	}
	return nil
}

func (r *HomeLoanRepository) FindByID(ctx context.Context, id int64) (*homeloan.HomeLoan, error) {
	loan, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: id %d", homeloan.ErrNotFound, id)
	}
	return loan, nil
}

func (r *HomeLoanRepository) FindAll(ctx context.Context) ([]*homeloan.HomeLoan, error) {
	return r.store.FindAll(ctx), nil
}

func (r *HomeLoanRepository) Delete(ctx context.Context, id int64) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: id %d", homeloan.ErrNotFound, id)
	}
	return nil
}

func (r *HomeLoanRepository) Count(_ context.Context) (int, error) {
	return r.store.Len(), nil
}

func sampleHomeLoans() []*homeloan.HomeLoan {
	return []*homeloan.HomeLoan{
		{ID: 1, CustomerName: "Chuck Johns", CustomerID: 1024, LoanAmount: decimal.NewFromInt(12000), Location: "Sydney", LoanTenure: 10},
		{ID: 2, CustomerName: "Jane Smith", CustomerID: 2048, LoanAmount: decimal.NewFromInt(15000), Location: "Melbourne", LoanTenure: 8},
		{ID: 3, CustomerName: "Alice Johnson", CustomerID: 4096, LoanAmount: decimal.NewFromInt(18000), Location: "Canberra", LoanTenure: 12},
		{ID: 4, CustomerName: "Bob Brown", CustomerID: 8192, LoanAmount: decimal.NewFromInt(10000), Location: "Brisbane", LoanTenure: 16},
	}
}
