// Package handler implements the HTTP handlers for the parking backend API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (session.go, pricing.go, etc.) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hotelcosta/parking-backend/internal/domain"
	"github.com/hotelcosta/parking-backend/internal/service"
)

// SessionServicer defines the business operations the session handlers
// depend on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the database or service layer.
type SessionServicer interface {
	Open(ctx context.Context, rawPlate string, spaceNumber int, entryTime time.Time) (domain.Session, error)
	Lookup(ctx context.Context, rawPlate string, at time.Time) (domain.Session, domain.Charge, error)
	Close(ctx context.Context, rawPlate string, exitTime time.Time) (domain.Invoice, error)
	ListOpen(ctx context.Context) ([]domain.Session, error)
}

// PricingServicer defines the configuration operations the pricing
// handlers depend on.
type PricingServicer interface {
	Get(ctx context.Context) (domain.PriceConfig, error)
	Update(ctx context.Context, in service.PriceConfigInput) (domain.PriceConfig, error)
	History(ctx context.Context, limit int) ([]domain.PriceConfig, error)
}

// ReportServicer defines the reporting operations the report handlers
// depend on.
type ReportServicer interface {
	Daily(ctx context.Context, year int, month time.Month, day int) (domain.Report, error)
	Monthly(ctx context.Context, year int, month time.Month) (domain.Report, error)
	History(ctx context.Context, p domain.PaginationParams) ([]domain.Invoice, int64, error)
}

// ExportServicer defines the export operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the handler dependencies.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	sessions SessionServicer
	pricing  PricingServicer
	reports  ReportServicer
	export   ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(sessions SessionServicer, pricing PricingServicer, reports ReportServicer, export ExportServicer) *Server {
	return &Server{sessions: sessions, pricing: pricing, reports: reports, export: export}
}

// Routes builds the chi router for the full API surface.
// adminOnly gates the endpoints reserved for the price administrator;
// pass middleware.NewAdminGate in production.
func (s *Server) Routes(adminOnly func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/config", s.GetConfig)
		r.With(adminOnly).Put("/config", s.UpdateConfig)
		r.With(adminOnly).Get("/config/history", s.GetConfigHistory)

		r.Post("/sessions", s.OpenSession)
		r.Get("/sessions/open", s.ListOpenSessions)
		r.Get("/sessions/lookup", s.LookupSession)
		r.Post("/sessions/close", s.CloseSession)

		r.Get("/invoices", s.ListInvoices)
		r.Get("/reports/daily", s.DailyReport)
		r.Get("/reports/monthly", s.MonthlyReport)
		r.With(adminOnly).Get("/export", s.GetExport)
	})

	return r
}
