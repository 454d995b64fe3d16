package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hotelcosta/parking-backend/internal/domain"
	"github.com/hotelcosta/parking-backend/internal/handler"
	"github.com/hotelcosta/parking-backend/internal/service"
)

// mockSessionServicer is a test double for handler.SessionServicer.
// Set only the method fields your test needs.
type mockSessionServicer struct {
	open     func(ctx context.Context, rawPlate string, spaceNumber int, entryTime time.Time) (domain.Session, error)
	lookup   func(ctx context.Context, rawPlate string, at time.Time) (domain.Session, domain.Charge, error)
	close    func(ctx context.Context, rawPlate string, exitTime time.Time) (domain.Invoice, error)
	listOpen func(ctx context.Context) ([]domain.Session, error)
}

func (m *mockSessionServicer) Open(ctx context.Context, rawPlate string, spaceNumber int, entryTime time.Time) (domain.Session, error) {
	return m.open(ctx, rawPlate, spaceNumber, entryTime)
}
func (m *mockSessionServicer) Lookup(ctx context.Context, rawPlate string, at time.Time) (domain.Session, domain.Charge, error) {
	return m.lookup(ctx, rawPlate, at)
}
func (m *mockSessionServicer) Close(ctx context.Context, rawPlate string, exitTime time.Time) (domain.Invoice, error) {
	return m.close(ctx, rawPlate, exitTime)
}
func (m *mockSessionServicer) ListOpen(ctx context.Context) ([]domain.Session, error) {
	return m.listOpen(ctx)
}

// mockPricingServicer is a test double for handler.PricingServicer.
type mockPricingServicer struct {
	get     func(ctx context.Context) (domain.PriceConfig, error)
	update  func(ctx context.Context, in service.PriceConfigInput) (domain.PriceConfig, error)
	history func(ctx context.Context, limit int) ([]domain.PriceConfig, error)
}

func (m *mockPricingServicer) Get(ctx context.Context) (domain.PriceConfig, error) {
	return m.get(ctx)
}
func (m *mockPricingServicer) Update(ctx context.Context, in service.PriceConfigInput) (domain.PriceConfig, error) {
	return m.update(ctx, in)
}
func (m *mockPricingServicer) History(ctx context.Context, limit int) ([]domain.PriceConfig, error) {
	return m.history(ctx, limit)
}

// mockReportServicer is a test double for handler.ReportServicer.
type mockReportServicer struct {
	daily   func(ctx context.Context, year int, month time.Month, day int) (domain.Report, error)
	monthly func(ctx context.Context, year int, month time.Month) (domain.Report, error)
	history func(ctx context.Context, p domain.PaginationParams) ([]domain.Invoice, int64, error)
}

func (m *mockReportServicer) Daily(ctx context.Context, year int, month time.Month, day int) (domain.Report, error) {
	return m.daily(ctx, year, month, day)
}
func (m *mockReportServicer) Monthly(ctx context.Context, year int, month time.Month) (domain.Report, error) {
	return m.monthly(ctx, year, month)
}
func (m *mockReportServicer) History(ctx context.Context, p domain.PaginationParams) ([]domain.Invoice, int64, error) {
	return m.history(ctx, p)
}

// mockExportServicer is a test double for handler.ExportServicer.
type mockExportServicer struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.SessionServicer = (*mockSessionServicer)(nil)
	_ handler.PricingServicer = (*mockPricingServicer)(nil)
	_ handler.ReportServicer  = (*mockReportServicer)(nil)
	_ handler.ExportServicer  = (*mockExportServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// passthroughAdmin disables the admin gate so tests can exercise the gated
// handlers directly. Gating itself is covered by TestRoutes_AdminGate.
func passthroughAdmin(next http.Handler) http.Handler { return next }

// newHTTPHandler wires a Server with the given mocks into the chi router,
// mirroring how main.go wires it in production. Nil mocks are fine for
// routes the test never hits.
func newHTTPHandler(sessions handler.SessionServicer, pricing handler.PricingServicer, reports handler.ReportServicer, export handler.ExportServicer) http.Handler {
	return handler.NewServer(sessions, pricing, reports, export).Routes(passthroughAdmin)
}

func sessionFixture() domain.Session {
	entry := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	return domain.Session{
		ID:          uuid.New(),
		Plate:       "ABC-1234",
		SpaceNumber: 7,
		EntryTime:   entry,
		Nocturnal:   false,
		State:       domain.SessionOpen,
		CreatedAt:   entry,
		UpdatedAt:   entry,
	}
}

func invoiceFixture() domain.Invoice {
	entry := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	exit := entry.Add(125 * time.Minute)
	return domain.Invoice{
		ID:             uuid.New(),
		SessionID:      uuid.New(),
		Plate:          "ABC-1234",
		SpaceNumber:    7,
		EntryTime:      entry,
		ExitTime:       exit,
		ElapsedMinutes: 125,
		Amount:         domain.Money(250),
		Nocturnal:      false,
		Detail:         "half-hour base 1.00 + 2 extra hour(s) at 0.75",
		GeneratedAt:    exit,
	}
}

func priceConfigFixture() domain.PriceConfig {
	return domain.PriceConfig{
		ID:            uuid.New(),
		HalfHourRate:  domain.Money(100),
		ExtraHourRate: domain.Money(75),
		NightRate:     domain.Money(1000),
		NightStart:    domain.ClockTime(20 * 60),
		NightEnd:      domain.ClockTime(6 * 60),
		EffectiveAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// decodeJSON decodes a response body into a generic map for assertions.
func decodeJSON(t *testing.T, body *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(body.Bytes(), &out))
	return out
}
