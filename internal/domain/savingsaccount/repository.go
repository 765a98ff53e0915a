package savingsaccount

import (
	"bank-services/internal/pkg/apperrors"
	"context"
	"fmt"
)

var ErrNotFound = fmt.Errorf("savings bank account %w", apperrors.ErrNotFound)

type Repository interface {
	Insert(ctx context.Context, account *SavingsAccount) (*SavingsAccount, error)

	Replace(ctx context.Context, account *SavingsAccount) error

	FindByID(ctx context.Context, id int64) (*SavingsAccount, error)

	FindAll(ctx context.Context) ([]*SavingsAccount, error)

	Delete(ctx context.Context, id int64) error

	Count(ctx context.Context) (int, error)
}
