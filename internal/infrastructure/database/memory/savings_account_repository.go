package memory

import (
	"bank-services/internal/domain/savingsaccount"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

type SavingsAccountRepository struct {
	store *Store[*savingsaccount.SavingsAccount]
}

var _ savingsaccount.Repository = (*SavingsAccountRepository)(nil)

func NewSavingsAccountRepository(seed bool) *SavingsAccountRepository {
	store := NewStore[*savingsaccount.SavingsAccount]()
	if seed {
		store.Seed(sampleSavingsAccounts()...)
	}
	return &SavingsAccountRepository{store: store}
}

func (r *SavingsAccountRepository) Insert(ctx context.Context, account *savingsaccount.SavingsAccount) (*savingsaccount.SavingsAccount, error) {
	return r.store.Insert(ctx, account), nil
}

func (r *SavingsAccountRepository) Replace(ctx context.Context, account *savingsaccount.SavingsAccount) error {
	if err := r.store.Replace(ctx, account); err != nil {
		return fmt.Errorf("%w: id %d", savingsaccount.ErrNotFound, account.ID)
	}
	return nil
}

func (r *SavingsAccountRepository) FindByID(ctx context.Context, id int64) (*savingsaccount.SavingsAccount, error) {
	account, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: id %d", savingsaccount.ErrNotFound, id)
	}
	return account, nil
}

func (r *SavingsAccountRepository) FindAll(ctx context.Context) ([]*savingsaccount.SavingsAccount, error) {
	return r.store.FindAll(ctx), nil
}

func (r *SavingsAccountRepository) Delete(ctx context.Context, id int64) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: id %d", savingsaccount.ErrNotFound, id)
	}
	return nil
}

func (r *SavingsAccountRepository) Count(_ context.Context) (int, error) {
	return r.store.Len(), nil
}

func sampleSavingsAccounts() []*savingsaccount.SavingsAccount {
	return []*savingsaccount.SavingsAccount{
		{ID: 1, CustomerName: "Chuck Johns", CustomerID: 1024, DepositAmount: decimal.NewFromInt(12000), Location: "Sydney", BranchCode: "Syd001"},
		{ID: 2, CustomerName: "Jane Smith", CustomerID: 2048, DepositAmount: decimal.NewFromInt(15000), Location: "Melbourne", BranchCode: "Mel001"},
		{ID: 3, CustomerName: "Alice Johnson", CustomerID: 4096, DepositAmount: decimal.NewFromInt(18000), Location: "Canberra", BranchCode: "Can001"},
		{ID: 4, CustomerName: "Bob Brown", CustomerID: 8192, DepositAmount: decimal.NewFromInt(10000), Location: "Brisbane", BranchCode: "Bri001"},
	}
}
