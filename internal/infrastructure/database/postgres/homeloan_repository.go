package postgres

import (
	"bank-services/internal/domain/homeloan"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
)

const homeLoanColumns = `id, customer_name, customer_id, loan_amount, location, loan_tenure`

type HomeLoanRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ homeloan.Repository = (*HomeLoanRepository)(nil)

func NewHomeLoanRepository(db DBPool, logger *slog.Logger) *HomeLoanRepository {
	if db == nil {
		panic("DBPool cannot be nil for HomeLoanRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewHomeLoanRepository, using default stderr handler")
	}
	return &HomeLoanRepository{db: db, logger: logger.With("component", "HomeLoanRepository")}
}

func (r *HomeLoanRepository) Insert(ctx context.Context, loan *homeloan.HomeLoan) (*homeloan.HomeLoan, error) {
	query := `
        INSERT INTO home_loans (customer_name, customer_id, loan_amount, location, loan_tenure)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	stored := loan.Clone()
	start := time.Now()
	err := r.db.QueryRow(ctx, query,
		loan.CustomerName, loan.CustomerID, loan.LoanAmount, loan.Location, loan.LoanTenure,
	).Scan(&stored.ID)
	observe("InsertHomeLoan", start, err)

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert home loan", slog.Any("error", err))
		return nil, fmt.Errorf("failed to insert home loan: %w", translateDBError(err, r.logger))
	}

	r.logger.InfoContext(ctx, "Home loan inserted", slog.Int64("homeLoanID", stored.ID))
	return stored, nil
}

func (r *HomeLoanRepository) Replace(ctx context.Context, loan *homeloan.HomeLoan) error {
	query := `
        UPDATE home_loans
        SET customer_name = $1,
            customer_id = $2,
            loan_amount = $3,
            location = $4,
            loan_tenure = $5
        WHERE id = $6`

	start := time.Now()
	cmdTag, err := r.db.Exec(ctx, query,
		loan.CustomerName, loan.CustomerID, loan.LoanAmount, loan.Location, loan.LoanTenure, loan.ID,
	)
	observe("ReplaceHomeLoan", start, err)

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to update home loan", slog.Int64("homeLoanID", loan.ID), slog.Any("error", err))
		return fmt.Errorf("failed to update home loan %d: %w", loan.ID, translateDBError(err, r.logger))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", homeloan.ErrNotFound, loan.ID)
	}
	return nil
}

func (r *HomeLoanRepository) FindByID(ctx context.Context, id int64) (*homeloan.HomeLoan, error) {
	query := `SELECT ` + homeLoanColumns + ` FROM home_loans WHERE id = $1`

	start := time.Now()
	loan, err := scanHomeLoan(r.db.QueryRow(ctx, query, id))
	observe("FindHomeLoanByID", start, err)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", homeloan.ErrNotFound, id)
		}
		r.logger.ErrorContext(ctx, "Failed to get home loan by ID", slog.Int64("homeLoanID", id), slog.Any("error", err))
		return nil, fmt.Errorf("failed to get home loan %d: %w", id, translateDBError(err, r.logger))
	}
	return loan, nil
}

func (r *HomeLoanRepository) FindAll(ctx context.Context) ([]*homeloan.HomeLoan, error) {
	query := `SELECT ` + homeLoanColumns + ` FROM home_loans ORDER BY id`

	start := time.Now()
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		observe("FindAllHomeLoans", start, err)
		r.logger.ErrorContext(ctx, "Failed to query home loans", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list home loans: %w", translateDBError(err, r.logger))
	}
	defer rows.Close()

	loans := make([]*homeloan.HomeLoan, 0)
	for rows.Next() {
		loan, err := scanHomeLoan(rows)
		if err != nil {
			observe("FindAllHomeLoans", start, err)
			r.logger.ErrorContext(ctx, "Failed to scan home loan row", slog.Any("error", err))
			return nil, fmt.Errorf("failed to list home loans: %w", translateDBError(err, r.logger))
		}
		loans = append(loans, loan)
	}

	err = rows.Err()
	observe("FindAllHomeLoans", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Error iterating home loan rows", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list home loans: %w", translateDBError(err, r.logger))
	}

	return loans, nil
}

func (r *HomeLoanRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM home_loans WHERE id = $1`

	start := time.Now()
	cmdTag, err := r.db.Exec(ctx, query, id)
	observe("DeleteHomeLoan", start, err)

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete home loan", slog.Int64("homeLoanID", id), slog.Any("error", err))
		return fmt.Errorf("failed to delete home loan %d: %w", id, translateDBError(err, r.logger))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", homeloan.ErrNotFound, id)
	}
	return nil
}

func (r *HomeLoanRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM home_loans`

	var count int
	start := time.Now()
	err := r.db.QueryRow(ctx, query).Scan(&count)
	observe("CountHomeLoans", start, err)

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to count home loans", slog.Any("error", err))
		return 0, fmt.Errorf("failed to count home loans: %w", translateDBError(err, r.logger))
	}
	return count, nil
}

func scanHomeLoan(row pgx.Row) (*homeloan.HomeLoan, error) {
	var l homeloan.HomeLoan
	err := row.Scan(&l.ID, &l.CustomerName, &l.CustomerID, &l.LoanAmount, &l.Location, &l.LoanTenure)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
