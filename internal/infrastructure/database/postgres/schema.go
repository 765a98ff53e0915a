package postgres

import (
	"bank-services/internal/pkg/apperrors"
	"context"
	"log/slog"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS home_loans (
    id            BIGSERIAL PRIMARY KEY,
    customer_name TEXT           NOT NULL,
    customer_id   BIGINT         NOT NULL,
    loan_amount   NUMERIC        NOT NULL DEFAULT 0,
    location      TEXT           NOT NULL,
    loan_tenure   INTEGER        NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS savings_accounts (
    id             BIGSERIAL PRIMARY KEY,
    customer_name  TEXT           NOT NULL,
    customer_id    BIGINT         NOT NULL,
    deposit_amount NUMERIC        NOT NULL DEFAULT 0,
    location       TEXT           NOT NULL,
    branch_code    TEXT           NOT NULL
);`

// EnsureSchema creates the tables when they do not exist yet. It is safe to run
// on every start.
func EnsureSchema(ctx context.Context, db DBPool, logger *slog.Logger) error {
	logger.InfoContext(ctx, "Ensuring database schema")
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		logger.ErrorContext(ctx, "Failed to create database schema", slog.Any("error", err))
		return apperrors.WrapDatabaseError(err, "failed to create database schema")
	}
	return nil
}
