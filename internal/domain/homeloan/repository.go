package homeloan

import (
	"bank-services/internal/pkg/apperrors"
	"context"
	"fmt"
)

var ErrNotFound = fmt.Errorf("home loan %w", apperrors.ErrNotFound)

// Repository is the home loan entity store. Implementations must hand out
// sequential IDs that are never reused and keep records in insertion order.
type Repository interface {
	Insert(ctx context.Context, loan *HomeLoan) (*HomeLoan, error)

	Replace(ctx context.Context, loan *HomeLoan) error

	FindByID(ctx context.Context, id int64) (*HomeLoan, error)

	FindAll(ctx context.Context) ([]*HomeLoan, error)

	Delete(ctx context.Context, id int64) error

	Count(ctx context.Context) (int, error)
}
