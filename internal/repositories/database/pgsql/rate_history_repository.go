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

// defaultHistoryLimit caps unbounded history listings.
const defaultHistoryLimit = 50

type PgxRateHistoryRepository struct {
	BaseRepository
}

// newPgxRateHistoryRepository creates a read-only repository over the rate
// audit trail. Inserts go through the currency repository's transactions.
func newPgxRateHistoryRepository(pool *pgxpool.Pool) portsrepo.RateHistoryRepositoryFacade {
	return &PgxRateHistoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RateHistoryRepositoryFacade = (*PgxRateHistoryRepository)(nil)

// ListRateHistory returns history entries newest first, optionally filtered
// by currency code.
func (r *PgxRateHistoryRepository) ListRateHistory(ctx context.Context, hubID string, currencyCode *string, limit int) ([]domain.ExchangeRateHistory, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	query := `
		SELECT history_id, hub_id, currency_id, currency_code, rate, source, recorded_at
		FROM exchange_rate_history
		WHERE hub_id = $1`
	args := []any{hubID}
	if currencyCode != nil {
		query += ` AND currency_code = $2`
		args = append(args, *currencyCode)
	}
	query += fmt.Sprintf(` ORDER BY recorded_at DESC LIMIT %d;`, limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rate history: %w", err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRateHistory, error) {
		var m models.ExchangeRateHistory
		err := row.Scan(
			&m.HistoryID,
			&m.HubID,
			&m.CurrencyID,
			&m.CurrencyCode,
			&m.Rate,
			&m.Source,
			&m.RecordedAt,
		)
		return m, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.ExchangeRateHistory{}, nil
		}
		return nil, fmt.Errorf("failed to scan rate history: %w", err)
	}

	return mapping.ToDomainRateHistorySlice(modelEntries), nil
}
