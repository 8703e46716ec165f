package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/poshub/multicurrency/internal/core/domain"
	portsrepo "github.com/poshub/multicurrency/internal/core/ports/repositories"
	"github.com/poshub/multicurrency/internal/models"
	"github.com/poshub/multicurrency/internal/utils/mapping"
)

// defaultPaymentLimit caps unbounded payment listings.
const defaultPaymentLimit = 20

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for currency payments.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// SavePayment persists a new payment record.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.CurrencyPayment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO currency_payments (
			payment_id, hub_id, sale_id, currency_id, currency_code,
			original_amount, exchange_rate_used, base_amount, payment_date,
			is_deleted, created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`

	_, err := r.Pool.Exec(ctx, query,
		m.PaymentID, m.HubID, m.SaleID, m.CurrencyID, m.CurrencyCode,
		m.OriginalAmount, m.ExchangeRateUsed, m.BaseAmount, m.PaymentDate,
		m.IsDeleted, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment %s: %w", m.PaymentID, err)
	}
	return nil
}

// ListPayments returns non-deleted payments newest first.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, hubID string, limit int) ([]domain.CurrencyPayment, error) {
	if limit <= 0 {
		limit = defaultPaymentLimit
	}

	query := fmt.Sprintf(`
		SELECT payment_id, hub_id, sale_id, currency_id, currency_code,
			original_amount, exchange_rate_used, base_amount, payment_date,
			is_deleted, created_at, created_by, last_updated_at, last_updated_by
		FROM currency_payments
		WHERE hub_id = $1 AND is_deleted = FALSE
		ORDER BY payment_date DESC
		LIMIT %d;`, limit)

	rows, err := r.Pool.Query(ctx, query, hubID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	modelPayments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CurrencyPayment, error) {
		var m models.CurrencyPayment
		err := row.Scan(
			&m.PaymentID,
			&m.HubID,
			&m.SaleID,
			&m.CurrencyID,
			&m.CurrencyCode,
			&m.OriginalAmount,
			&m.ExchangeRateUsed,
			&m.BaseAmount,
			&m.PaymentDate,
			&m.IsDeleted,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.CurrencyPayment{}, nil
		}
		return nil, fmt.Errorf("failed to scan payments: %w", err)
	}

	return mapping.ToDomainPaymentSlice(modelPayments), nil
}

// HasPaymentsForCurrency reports whether any non-deleted payment still
// references the currency.
func (r *PgxPaymentRepository) HasPaymentsForCurrency(ctx context.Context, hubID, currencyID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM currency_payments
			WHERE hub_id = $1 AND currency_id = $2 AND is_deleted = FALSE
		);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, hubID, currencyID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payments for currency %s: %w", currencyID, err)
	}
	return exists, nil
}
