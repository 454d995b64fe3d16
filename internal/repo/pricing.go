package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/hotelcosta/parking-backend/internal/domain"
)

// PricingRepo defines the persistence operations for price configurations.
// Configurations are append-only: every update inserts a new version and
// the active configuration is the one with the latest effective_at.
type PricingRepo interface {
	// Active returns the currently effective price configuration.
	// Returns domain.ErrNotFound if no configuration exists yet.
	Active(ctx context.Context) (domain.PriceConfig, error)

	// Insert stores a new configuration version and returns the persisted
	// record (with DB-generated id and effective_at populated).
	Insert(ctx context.Context, cfg domain.PriceConfig) (domain.PriceConfig, error)

	// History returns up to limit configuration versions, newest first.
	History(ctx context.Context, limit int) ([]domain.PriceConfig, error)
}

// pgPricingRepo is the Postgres implementation of PricingRepo.
type pgPricingRepo struct {
	db db
}

// NewPricingRepo constructs a PricingRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPricingRepo(db db) PricingRepo {
	return &pgPricingRepo{db: db}
}

const priceConfigColumns = `id, half_hour_rate_cents, extra_hour_rate_cents, night_rate_cents,
		       night_start_minutes, night_end_minutes, effective_at`

// Active returns the latest configuration version.
func (r *pgPricingRepo) Active(ctx context.Context) (domain.PriceConfig, error) {
	const q = `
		SELECT ` + priceConfigColumns + `
		FROM price_configs
		ORDER BY effective_at DESC, id DESC
		LIMIT 1`

	row := r.db.QueryRow(ctx, q)
	cfg, err := scanPriceConfig(row)
	if err != nil {
		return domain.PriceConfig{}, fmt.Errorf("repo.PricingRepo.Active: %w", err)
	}
	return cfg, nil
}

// Insert stores a new configuration version.
func (r *pgPricingRepo) Insert(ctx context.Context, cfg domain.PriceConfig) (domain.PriceConfig, error) {
	const q = `
		INSERT INTO price_configs (half_hour_rate_cents, extra_hour_rate_cents, night_rate_cents,
		                           night_start_minutes, night_end_minutes)
		VALUES (@half_hour, @extra_hour, @night, @night_start, @night_end)
		RETURNING ` + priceConfigColumns

	args := pgx.NamedArgs{
		"half_hour":   int64(cfg.HalfHourRate),
		"extra_hour":  int64(cfg.ExtraHourRate),
		"night":       int64(cfg.NightRate),
		"night_start": int(cfg.NightStart),
		"night_end":   int(cfg.NightEnd),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanPriceConfig(row)
	if err != nil {
		return domain.PriceConfig{}, fmt.Errorf("repo.PricingRepo.Insert: %w", err)
	}
	return result, nil
}

// History returns configuration versions newest first.
func (r *pgPricingRepo) History(ctx context.Context, limit int) ([]domain.PriceConfig, error) {
	const q = `
		SELECT ` + priceConfigColumns + `
		FROM price_configs
		ORDER BY effective_at DESC, id DESC
		LIMIT @limit`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("repo.PricingRepo.History: %w", err)
	}
	defer rows.Close()

	var configs []domain.PriceConfig
	for rows.Next() {
		cfg, err := scanPriceConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PricingRepo.History: scan: %w", err)
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PricingRepo.History: rows: %w", err)
	}

	return configs, nil
}

// scanPriceConfig maps a single database row into a domain.PriceConfig.
func scanPriceConfig(s scanner) (domain.PriceConfig, error) {
	var (
		cfg        domain.PriceConfig
		id         pgtype.UUID
		halfHour   int64
		extraHour  int64
		night      int64
		startMin   int32
		endMin     int32
	)

	err := s.Scan(&id, &halfHour, &extraHour, &night, &startMin, &endMin, &cfg.EffectiveAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PriceConfig{}, domain.ErrNotFound
		}
		return domain.PriceConfig{}, err
	}

	cfg.ID = uuid.UUID(id.Bytes)
	cfg.HalfHourRate = domain.Money(halfHour)
	cfg.ExtraHourRate = domain.Money(extraHour)
	cfg.NightRate = domain.Money(night)
	cfg.NightStart = domain.ClockTime(startMin)
	cfg.NightEnd = domain.ClockTime(endMin)
	return cfg, nil
}
