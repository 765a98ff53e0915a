package postgres

import (
	"bank-services/internal/domain/savingsaccount"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
)

const savingsAccountColumns = `id, customer_name, customer_id, deposit_amount, location, branch_code`

type SavingsAccountRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ savingsaccount.Repository = (*SavingsAccountRepository)(nil)

func NewSavingsAccountRepository(db DBPool, logger *slog.Logger) *SavingsAccountRepository {
	if db == nil {
		panic("DBPool cannot be nil for SavingsAccountRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewSavingsAccountRepository, using default stderr handler")
	}
	return &SavingsAccountRepository{db: db, logger: logger.With("component", "SavingsAccountRepository")}
}

func (r *SavingsAccountRepository) Insert(ctx context.Context, account *savingsaccount.SavingsAccount) (*savingsaccount.SavingsAccount, error) {
	query := `
        INSERT INTO savings_accounts (customer_name, customer_id, deposit_amount, location, branch_code)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	stored := account.Clone()
	start := time.Now()
	err := r.db.QueryRow(ctx, query,
		account.CustomerName, account.CustomerID, account.DepositAmount, account.Location, account.BranchCode,
	).Scan(&stored.ID)
	observe("InsertSavingsAccount", start, err)

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert savings bank account", slog.Any("error", err))
		return nil, fmt.Errorf("failed to insert savings bank account: %w", translateDBError(err, r.logger))
	}

	r.logger.InfoContext(ctx, "Savings bank account inserted", slog.Int64("savingsAccountID", stored.ID))
	return stored, nil
}

func (r *SavingsAccountRepository) Replace(ctx context.Context, account *savingsaccount.SavingsAccount) error {
	query := `
        UPDATE savings_accounts
        SET customer_name = $1,
            customer_id = $2,
            deposit_amount = $3,
            location = $4,
            branch_code = $5
        WHERE id = $6`

	start := time.Now()
	cmdTag, err := r.db.Exec(ctx, query,
		account.CustomerName, account.CustomerID, account.DepositAmount, account.Location, account.BranchCode, account.ID,
	)
	observe("ReplaceSavingsAccount", start, err)

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to update savings bank account", slog.Int64("savingsAccountID", account.ID), slog.Any("error", err))
		return fmt.Errorf("failed to update savings bank account %d: %w", account.ID, translateDBError(err, r.logger))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", savingsaccount.ErrNotFound, account.ID)
	}
	return nil
}

func (r *SavingsAccountRepository) FindByID(ctx context.Context, id int64) (*savingsaccount.SavingsAccount, error) {
	query := `SELECT ` + savingsAccountColumns + ` FROM savings_accounts WHERE id = $1`

	start := time.Now()
	account, err := scanSavingsAccount(r.db.QueryRow(ctx, query, id))
	observe("FindSavingsAccountByID", start, err)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", savingsaccount.ErrNotFound, id)
		}
		r.logger.ErrorContext(ctx, "Failed to get savings bank account by ID", slog.Int64("savingsAccountID", id), slog.Any("error", err))
		return nil, fmt.Errorf("failed to get savings bank account %d: %w", id, translateDBError(err, r.logger))
	}
	return account, nil
}

func (r *SavingsAccountRepository) FindAll(ctx context.Context) ([]*savingsaccount.SavingsAccount, error) {
	query := `SELECT ` + savingsAccountColumns + ` FROM savings_accounts ORDER BY id`

	start := time.Now()
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		observe("FindAllSavingsAccounts", start, err)
		r.logger.ErrorContext(ctx, "Failed to query savings bank accounts", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list savings bank accounts: %w", translateDBError(err, r.logger))
	}
	defer rows.Close()

	accounts := make([]*savingsaccount.SavingsAccount, 0)
	for rows.Next() {
		account, err := scanSavingsAccount(rows)
		if err != nil {
			observe("FindAllSavingsAccounts", start, err)
			r.logger.ErrorContext(ctx, "Failed to scan savings bank account row", slog.Any("error", err))
			return nil, fmt.Errorf("failed to list savings bank accounts: %w", translateDBError(err, r.logger))
		}
		accounts = append(accounts, account)
	}

	err = rows.Err()
	observe("FindAllSavingsAccounts", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Error iterating savings bank account rows", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list savings bank accounts: %w", translateDBError(err, r.logger))
	}

	return accounts, nil
}

func (r *SavingsAccountRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM savings_accounts WHERE id = $1`

	start := time.Now()
	cmdTag, err := r.db.Exec(ctx, query, id)
	observe("DeleteSavingsAccount", start, err)

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to delete savings bank account", slog.Int64("savingsAccountID", id), slog.Any("error", err))
		return fmt.Errorf("failed to delete savings bank account %d: %w", id, translateDBError(err, r.logger))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", savingsaccount.ErrNotFound, id)
	}
	return nil
}

func (r *SavingsAccountRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM savings_accounts`

	var count int
	start := time.Now()
	err := r.db.QueryRow(ctx, query).Scan(&count)
	observe("CountSavingsAccounts", start, err)

	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to count savings bank accounts", slog.Any("error", err))
		return 0, fmt.Errorf("failed to count savings bank accounts: %w", translateDBError(err, r.logger))
	}
	return count, nil
}

func scanSavingsAccount(row pgx.Row) (*savingsaccount.SavingsAccount, error) {
	var a savingsaccount.SavingsAccount
	err := row.Scan(&a.ID, &a.CustomerName, &a.CustomerID, &a.DepositAmount, &a.Location, &a.BranchCode)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
