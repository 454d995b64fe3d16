package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hotelcosta/parking-backend/internal/domain"
	"github.com/hotelcosta/parking-backend/internal/repo"
)

// ---- mock repos ------------------------------------------------------------
// Hand-written test doubles: set only the method fields your test needs.

type mockPricingRepo struct {
	active  func(ctx context.Context) (domain.PriceConfig, error)
	insert  func(ctx context.Context, cfg domain.PriceConfig) (domain.PriceConfig, error)
	history func(ctx context.Context, limit int) ([]domain.PriceConfig, error)
}

func (m *mockPricingRepo) Active(ctx context.Context) (domain.PriceConfig, error) {
	return m.active(ctx)
}
func (m *mockPricingRepo) Insert(ctx context.Context, cfg domain.PriceConfig) (domain.PriceConfig, error) {
	return m.insert(ctx, cfg)
}
func (m *mockPricingRepo) History(ctx context.Context, limit int) ([]domain.PriceConfig, error) {
	return m.history(ctx, limit)
}

var _ repo.PricingRepo = (*mockPricingRepo)(nil)

type mockSessionRepo struct {
	create         func(ctx context.Context, s domain.Session) (domain.Session, error)
	getByID        func(ctx context.Context, id uuid.UUID) (domain.Session, error)
	getOpenByPlate func(ctx context.Context, plate string) (domain.Session, error)
	getOpenBySpace func(ctx context.Context, spaceNumber int) (domain.Session, error)
	listOpen       func(ctx context.Context) ([]domain.Session, error)
	close          func(ctx context.Context, id uuid.UUID, exitTime time.Time) (domain.Session, error)
}

func (m *mockSessionRepo) Create(ctx context.Context, s domain.Session) (domain.Session, error) {
	return m.create(ctx, s)
}
func (m *mockSessionRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	return m.getByID(ctx, id)
}
func (m *mockSessionRepo) GetOpenByPlate(ctx context.Context, plate string) (domain.Session, error) {
	return m.getOpenByPlate(ctx, plate)
}
func (m *mockSessionRepo) GetOpenBySpace(ctx context.Context, spaceNumber int) (domain.Session, error) {
	return m.getOpenBySpace(ctx, spaceNumber)
}
func (m *mockSessionRepo) ListOpen(ctx context.Context) ([]domain.Session, error) {
	return m.listOpen(ctx)
}
func (m *mockSessionRepo) Close(ctx context.Context, id uuid.UUID, exitTime time.Time) (domain.Session, error) {
	return m.close(ctx, id, exitTime)
}

var _ repo.SessionRepo = (*mockSessionRepo)(nil)

type mockInvoiceRepo struct {
	create          func(ctx context.Context, inv domain.Invoice) (domain.Invoice, error)
	getBySessionID  func(ctx context.Context, sessionID uuid.UUID) (domain.Invoice, error)
	listByExitRange func(ctx context.Context, from, to time.Time) ([]domain.Invoice, error)
	listPaged       func(ctx context.Context, p domain.PaginationParams) ([]domain.Invoice, int64, error)
	listAll         func(ctx context.Context) ([]domain.Invoice, error)
}

func (m *mockInvoiceRepo) Create(ctx context.Context, inv domain.Invoice) (domain.Invoice, error) {
	return m.create(ctx, inv)
}
func (m *mockInvoiceRepo) GetBySessionID(ctx context.Context, sessionID uuid.UUID) (domain.Invoice, error) {
	return m.getBySessionID(ctx, sessionID)
}
func (m *mockInvoiceRepo) ListByExitRange(ctx context.Context, from, to time.Time) ([]domain.Invoice, error) {
	return m.listByExitRange(ctx, from, to)
}
func (m *mockInvoiceRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Invoice, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockInvoiceRepo) ListAll(ctx context.Context) ([]domain.Invoice, error) {
	return m.listAll(ctx)
}

var _ repo.InvoiceRepo = (*mockInvoiceRepo)(nil)

// ---- shared fixtures -------------------------------------------------------

// fixedConfig mirrors the seed configuration: 1.00 / 0.75 / 10.00 flat,
// night window 20:00-06:00.
func fixedConfig() domain.PriceConfig {
	return domain.PriceConfig{
		ID:            uuid.New(),
		HalfHourRate:  100,
		ExtraHourRate: 75,
		NightRate:     1000,
		NightStart:    20 * 60,
		NightEnd:      6 * 60,
		EffectiveAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func staticPricing(cfg domain.PriceConfig) *mockPricingRepo {
	return &mockPricingRepo{
		active: func(context.Context) (domain.PriceConfig, error) { return cfg, nil },
	}
}

func openSessionFixture(plate string, entry time.Time, nocturnal bool) domain.Session {
	return domain.Session{
		ID:          uuid.New(),
		Plate:       plate,
		SpaceNumber: 3,
		EntryTime:   entry,
		Nocturnal:   nocturnal,
		State:       domain.SessionOpen,
		CreatedAt:   entry,
		UpdatedAt:   entry,
	}
}
