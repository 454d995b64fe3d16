package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hotelcosta/parking-backend/internal/domain"
	"github.com/hotelcosta/parking-backend/internal/repo"
)

// ExportService assembles the flat invoice export for download.
type ExportService struct {
	invoices repo.InvoiceRepo
	loc      *time.Location
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(invoices repo.InvoiceRepo, loc *time.Location) *ExportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ExportService{invoices: invoices, loc: loc}
}

// Export returns one ExportRow per invoice, oldest departure first.
// Timestamps are converted to the reporting timezone so the exported
// sheet matches what the reports show. Always returns a non-nil slice.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	invoices, err := s.invoices.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, domain.ExportRow{
			InvoiceID:      inv.ID.String(),
			Plate:          inv.Plate,
			SpaceNumber:    inv.SpaceNumber,
			EntryTime:      inv.EntryTime.In(s.loc),
			ExitTime:       inv.ExitTime.In(s.loc),
			ElapsedMinutes: inv.ElapsedMinutes,
			Elapsed:        domain.FormatElapsed(inv.ElapsedMinutes),
			Amount:         inv.Amount,
			Nocturnal:      inv.Nocturnal,
			Detail:         inv.Detail,
		})
	}
	return rows, nil
}
