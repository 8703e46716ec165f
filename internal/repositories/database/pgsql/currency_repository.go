package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/poshub/multicurrency/internal/apperrors"
	"github.com/poshub/multicurrency/internal/core/domain"
	portsrepo "github.com/poshub/multicurrency/internal/core/ports/repositories"
	"github.com/poshub/multicurrency/internal/models"
	"github.com/poshub/multicurrency/internal/utils/mapping"
)

const uniqueViolationCode = "23505"

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryWithTx {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryWithTx = (*PgxCurrencyRepository)(nil)

const currencyColumns = `
	currency_id, hub_id, code, name, symbol, decimal_places, exchange_rate,
	is_active, last_updated, sort_order, is_deleted, deleted_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var m models.Currency
	err := row.Scan(
		&m.CurrencyID,
		&m.HubID,
		&m.Code,
		&m.Name,
		&m.Symbol,
		&m.DecimalPlaces,
		&m.ExchangeRate,
		&m.IsActive,
		&m.LastUpdated,
		&m.SortOrder,
		&m.IsDeleted,
		&m.DeletedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindCurrencyByID retrieves a non-deleted currency by its ID.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, hubID, currencyID string) (*domain.Currency, error) {
	query := `SELECT` + currencyColumns + `
		FROM currencies
		WHERE hub_id = $1 AND currency_id = $2 AND is_deleted = FALSE;`

	modelCurr, err := scanCurrency(r.Pool.QueryRow(ctx, query, hubID, currencyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by id %s: %w", currencyID, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// FindCurrencyByCode retrieves a non-deleted currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, hubID, code string) (*domain.Currency, error) {
	query := `SELECT` + currencyColumns + `
		FROM currencies
		WHERE hub_id = $1 AND code = $2 AND is_deleted = FALSE;`

	modelCurr, err := scanCurrency(r.Pool.QueryRow(ctx, query, hubID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", code, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// FindActiveCurrencyByCode retrieves a currency that is active and not deleted.
func (r *PgxCurrencyRepository) FindActiveCurrencyByCode(ctx context.Context, hubID, code string) (*domain.Currency, error) {
	query := `SELECT` + currencyColumns + `
		FROM currencies
		WHERE hub_id = $1 AND code = $2 AND is_active = TRUE AND is_deleted = FALSE;`

	modelCurr, err := scanCurrency(r.Pool.QueryRow(ctx, query, hubID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active currency by code %s: %w", code, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves non-deleted currencies ordered by sort order then code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context, hubID string, activeOnly bool) ([]domain.Currency, error) {
	query := `SELECT` + currencyColumns + `
		FROM currencies
		WHERE hub_id = $1 AND is_deleted = FALSE`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY sort_order, code;`

	rows, err := r.Pool.Query(ctx, query, hubID)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Currency{}, nil
		}
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

// SaveCurrencyWithHistory inserts a new currency and its initial rate
// history entry in a single transaction.
func (r *PgxCurrencyRepository) SaveCurrencyWithHistory(ctx context.Context, currency domain.Currency, history domain.ExchangeRateHistory) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	m := mapping.ToModelCurrency(currency)
	insertCurrency := `
		INSERT INTO currencies (
			currency_id, hub_id, code, name, symbol, decimal_places, exchange_rate,
			is_active, last_updated, sort_order, is_deleted, deleted_at,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`

	_, err = tx.Exec(ctx, insertCurrency,
		m.CurrencyID, m.HubID, m.Code, m.Name, m.Symbol, m.DecimalPlaces, m.ExchangeRate,
		m.IsActive, m.LastUpdated, m.SortOrder, m.IsDeleted, m.DeletedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: currency code '%s' already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to insert currency %s: %w", m.Code, err)
	}

	if err := insertHistoryTx(ctx, tx, history); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateCurrency persists field changes without touching rate history.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)
	query := `
		UPDATE currencies SET
			code = $3, name = $4, symbol = $5, decimal_places = $6,
			exchange_rate = $7, is_active = $8, last_updated = $9, sort_order = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE hub_id = $1 AND currency_id = $2 AND is_deleted = FALSE;`

	tag, err := r.Pool.Exec(ctx, query,
		m.HubID, m.CurrencyID, m.Code, m.Name, m.Symbol, m.DecimalPlaces,
		m.ExchangeRate, m.IsActive, m.LastUpdated, m.SortOrder,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: currency code '%s' already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to update currency %s: %w", m.CurrencyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateCurrencyWithHistory persists a rate-changing update and appends the
// matching history entry atomically.
func (r *PgxCurrencyRepository) UpdateCurrencyWithHistory(ctx context.Context, currency domain.Currency, history domain.ExchangeRateHistory) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	m := mapping.ToModelCurrency(currency)
	query := `
		UPDATE currencies SET
			code = $3, name = $4, symbol = $5, decimal_places = $6,
			exchange_rate = $7, is_active = $8, last_updated = $9, sort_order = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE hub_id = $1 AND currency_id = $2 AND is_deleted = FALSE;`

	tag, err := tx.Exec(ctx, query,
		m.HubID, m.CurrencyID, m.Code, m.Name, m.Symbol, m.DecimalPlaces,
		m.ExchangeRate, m.IsActive, m.LastUpdated, m.SortOrder,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update currency %s: %w", m.CurrencyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := insertHistoryTx(ctx, tx, history); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SoftDeleteCurrency flags a currency as deleted without removing rows.
func (r *PgxCurrencyRepository) SoftDeleteCurrency(ctx context.Context, hubID, currencyID string, deletedAt time.Time, userID string) error {
	query := `
		UPDATE currencies SET
			is_deleted = TRUE, deleted_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE hub_id = $1 AND currency_id = $2 AND is_deleted = FALSE;`

	tag, err := r.Pool.Exec(ctx, query, hubID, currencyID, deletedAt, userID)
	if err != nil {
		return fmt.Errorf("failed to soft delete currency %s: %w", currencyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// HardDeleteCurrency purges a currency, cascades its rate history, and
// nulls the currency reference on payments so their amounts survive.
func (r *PgxCurrencyRepository) HardDeleteCurrency(ctx context.Context, hubID, currencyID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `UPDATE currency_payments SET currency_id = NULL WHERE hub_id = $1 AND currency_id = $2;`, hubID, currencyID)
	if err != nil {
		return fmt.Errorf("failed to detach payments for currency %s: %w", currencyID, err)
	}

	_, err = tx.Exec(ctx, `DELETE FROM exchange_rate_history WHERE hub_id = $1 AND currency_id = $2;`, hubID, currencyID)
	if err != nil {
		return fmt.Errorf("failed to delete history for currency %s: %w", currencyID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM currencies WHERE hub_id = $1 AND currency_id = $2;`, hubID, currencyID)
	if err != nil {
		return fmt.Errorf("failed to hard delete currency %s: %w", currencyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// insertHistoryTx appends a rate history row inside an open transaction.
func insertHistoryTx(ctx context.Context, tx pgx.Tx, history domain.ExchangeRateHistory) error {
	m := mapping.ToModelRateHistory(history)
	query := `
		INSERT INTO exchange_rate_history (
			history_id, hub_id, currency_id, currency_code, rate, source, recorded_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7);`

	_, err := tx.Exec(ctx, query,
		m.HistoryID, m.HubID, m.CurrencyID, m.CurrencyCode, m.Rate, m.Source, m.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert rate history for %s: %w", m.CurrencyCode, err)
	}
	return nil
}
