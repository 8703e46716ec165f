package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/poshub/multicurrency/internal/apperrors"
	"github.com/poshub/multicurrency/internal/core/domain"
	portsrepo "github.com/poshub/multicurrency/internal/core/ports/repositories"
	"github.com/poshub/multicurrency/internal/models"
	"github.com/poshub/multicurrency/internal/utils/mapping"
)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for currency settings.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

const settingsColumns = `
	settings_id, hub_id, base_currency, auto_update_rates, update_frequency,
	rate_source, api_key, round_to_decimals, show_both_currencies,
	allow_multi_currency_payment, created_at, created_by, last_updated_at, last_updated_by`

func scanSettings(row pgx.Row) (models.CurrencySettings, error) {
	var m models.CurrencySettings
	err := row.Scan(
		&m.SettingsID,
		&m.HubID,
		&m.BaseCurrency,
		&m.AutoUpdateRates,
		&m.UpdateFrequency,
		&m.RateSource,
		&m.APIKey,
		&m.RoundToDecimals,
		&m.ShowBothCurrencies,
		&m.AllowMultiCurrencyPayment,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// GetOrCreateSettings returns the hub's settings row, inserting defaults on
// first access. A concurrent first access loses the insert race and falls
// back to reading the winner's row.
func (r *PgxSettingsRepository) GetOrCreateSettings(ctx context.Context, hubID string) (*domain.CurrencySettings, error) {
	settings, err := r.findSettings(ctx, hubID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	defaults := domain.DefaultSettings(hubID)
	defaults.SettingsID = uuid.NewString()
	now := time.Now().UTC()
	defaults.CreatedAt = now
	defaults.LastUpdatedAt = now

	m := mapping.ToModelSettings(defaults)
	insert := `
		INSERT INTO currency_settings (
			settings_id, hub_id, base_currency, auto_update_rates, update_frequency,
			rate_source, api_key, round_to_decimals, show_both_currencies,
			allow_multi_currency_payment, created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`

	_, err = r.Pool.Exec(ctx, insert,
		m.SettingsID, m.HubID, m.BaseCurrency, m.AutoUpdateRates, m.UpdateFrequency,
		m.RateSource, m.APIKey, m.RoundToDecimals, m.ShowBothCurrencies,
		m.AllowMultiCurrencyPayment, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return r.findSettings(ctx, hubID)
		}
		return nil, fmt.Errorf("failed to create default settings for hub %s: %w", hubID, err)
	}

	return &defaults, nil
}

// UpdateSettings persists changes to the hub's settings row.
func (r *PgxSettingsRepository) UpdateSettings(ctx context.Context, settings domain.CurrencySettings) error {
	m := mapping.ToModelSettings(settings)
	query := `
		UPDATE currency_settings SET
			base_currency = $2, auto_update_rates = $3, update_frequency = $4,
			rate_source = $5, api_key = $6, round_to_decimals = $7,
			show_both_currencies = $8, allow_multi_currency_payment = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE hub_id = $1;`

	tag, err := r.Pool.Exec(ctx, query,
		m.HubID, m.BaseCurrency, m.AutoUpdateRates, m.UpdateFrequency,
		m.RateSource, m.APIKey, m.RoundToDecimals,
		m.ShowBothCurrencies, m.AllowMultiCurrencyPayment,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings for hub %s: %w", m.HubID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSettingsRepository) findSettings(ctx context.Context, hubID string) (*domain.CurrencySettings, error) {
	query := `SELECT` + settingsColumns + `
		FROM currency_settings
		WHERE hub_id = $1;`

	m, err := scanSettings(r.Pool.QueryRow(ctx, query, hubID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find settings for hub %s: %w", hubID, err)
	}

	settings := mapping.ToDomainSettings(m)
	return &settings, nil
}
