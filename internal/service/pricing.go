// Package service contains the business logic for the parking backend.
// Services validate inputs, enforce the tariff rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"

	"github.com/hotelcosta/parking-backend/internal/domain"
	"github.com/hotelcosta/parking-backend/internal/repo"
)

// PriceConfigInput carries a configuration update from the HTTP layer.
// The window bounds arrive as "HH:MM" strings, exactly as the admin panel
// sends them.
type PriceConfigInput struct {
	HalfHourRate  domain.Money
	ExtraHourRate domain.Money
	NightRate     domain.Money
	NightStart    string
	NightEnd      string
}

// PricingService implements business logic for price configuration.
type PricingService struct {
	pricing repo.PricingRepo
}

// NewPricingService constructs a PricingService backed by the provided repo.
func NewPricingService(pricing repo.PricingRepo) *PricingService {
	return &PricingService{pricing: pricing}
}

// Get returns the currently effective configuration.
func (s *PricingService) Get(ctx context.Context) (domain.PriceConfig, error) {
	cfg, err := s.pricing.Active(ctx)
	if err != nil {
		return domain.PriceConfig{}, fmt.Errorf("service.PricingService.Get: %w", err)
	}
	return cfg, nil
}

// Update validates the input and stores it as a new configuration version.
// A malformed time bound or negative rate rejects the whole update —
// nothing is ever partially applied. Returns the persisted version.
func (s *PricingService) Update(ctx context.Context, in PriceConfigInput) (domain.PriceConfig, error) {
	start, err := domain.ParseClockTime(in.NightStart)
	if err != nil {
		return domain.PriceConfig{}, err
	}
	end, err := domain.ParseClockTime(in.NightEnd)
	if err != nil {
		return domain.PriceConfig{}, err
	}

	cfg := domain.PriceConfig{
		HalfHourRate:  in.HalfHourRate,
		ExtraHourRate: in.ExtraHourRate,
		NightRate:     in.NightRate,
		NightStart:    start,
		NightEnd:      end,
	}
	if err := cfg.Validate(); err != nil {
		return domain.PriceConfig{}, err
	}

	result, err := s.pricing.Insert(ctx, cfg)
	if err != nil {
		return domain.PriceConfig{}, fmt.Errorf("service.PricingService.Update: %w", err)
	}
	return result, nil
}

// History returns up to limit configuration versions, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *PricingService) History(ctx context.Context, limit int) ([]domain.PriceConfig, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	configs, err := s.pricing.History(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service.PricingService.History: %w", err)
	}
	if configs == nil {
		return []domain.PriceConfig{}, nil
	}
	return configs, nil
}
