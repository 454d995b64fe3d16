package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/hotelcosta/parking-backend/internal/domain"
)

// DailyReport handles GET /api/reports/daily?date=YYYY-MM-DD.
// The date names a calendar day in the reporting timezone.
func (s *Server) DailyReport(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		respondBadRequest(w, "date query parameter is required")
		return
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		respondBadRequest(w, "date must be formatted YYYY-MM-DD")
		return
	}

	report, err := s.reports.Daily(r.Context(), date.Year(), date.Month(), date.Day())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// MonthlyReport handles GET /api/reports/monthly?year=&month=.
func (s *Server) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		respondBadRequest(w, "year must be an integer")
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		respondBadRequest(w, "month must be an integer between 1 and 12")
		return
	}

	report, err := s.reports.Monthly(r.Context(), year, time.Month(month))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// ListInvoices handles GET /api/invoices?page=&limit=.
// It backs the history table: closed sessions newest-departure-first.
func (s *Server) ListInvoices(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	invoices, total, err := s.reports.History(r.Context(), params)
	if err != nil {
		respondError(w, err)
		return
	}

	data := make([]invoiceResponse, len(invoices))
	for i, inv := range invoices {
		data[i] = toInvoiceResponse(inv)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"data": data,
		"pagination": map[string]any{
			"page":  params.Page,
			"limit": params.Limit,
			"total": total,
		},
	})
}

// queryInt parses an optional integer query parameter, returning nil when
// absent or malformed so pagination falls back to its defaults.
func queryInt(r *http.Request, key string) *int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
