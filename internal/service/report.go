package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hotelcosta/parking-backend/internal/domain"
	"github.com/hotelcosta/parking-backend/internal/repo"
)

// ReportService produces daily and monthly revenue reports.
// It only sums stored invoice charges — it never recomputes them.
type ReportService struct {
	invoices repo.InvoiceRepo

	// loc is the reporting timezone: invoices bucket by the calendar
	// day/month their exit time falls in, in this location.
	loc *time.Location
}

// NewReportService constructs a ReportService backed by the provided repo.
func NewReportService(invoices repo.InvoiceRepo, loc *time.Location) *ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportService{invoices: invoices, loc: loc}
}

// Daily aggregates the invoices of one calendar day.
func (s *ReportService) Daily(ctx context.Context, year int, month time.Month, day int) (domain.Report, error) {
	return s.aggregate(ctx, domain.DayPeriod(year, month, day, s.loc))
}

// Monthly aggregates the invoices of one calendar month.
func (s *ReportService) Monthly(ctx context.Context, year int, month time.Month) (domain.Report, error) {
	return s.aggregate(ctx, domain.MonthPeriod(year, month, s.loc))
}

func (s *ReportService) aggregate(ctx context.Context, p domain.Period) (domain.Report, error) {
	from, to := p.Bounds()
	invoices, err := s.invoices.ListByExitRange(ctx, from, to)
	if err != nil {
		return domain.Report{}, fmt.Errorf("service.ReportService: %w", err)
	}
	return domain.AggregateInvoices(invoices, p), nil
}

// History returns one page of invoices for the history table, newest
// departure first, plus the total count. Always returns a non-nil slice.
func (s *ReportService) History(ctx context.Context, p domain.PaginationParams) ([]domain.Invoice, int64, error) {
	invoices, total, err := s.invoices.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ReportService.History: %w", err)
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return invoices, total, nil
}
