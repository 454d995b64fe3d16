// Package handler — export.go implements GET /api/export.
// Returns every invoice as a flat table.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/hotelcosta/parking-backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"invoice_id", "plate", "space_number", "entry_time", "exit_time",
	"elapsed_minutes", "elapsed", "amount", "nocturnal", "detail",
}

// GetExport handles GET /api/export (admin-gated).
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": exportRowsJSON(rows)})
}

// exportRowJSON is the JSON shape of one export row.
type exportRowJSON struct {
	InvoiceID      string       `json:"invoice_id"`
	Plate          string       `json:"plate"`
	SpaceNumber    int          `json:"space_number"`
	EntryTime      time.Time    `json:"entry_time"`
	ExitTime       time.Time    `json:"exit_time"`
	ElapsedMinutes int          `json:"elapsed_minutes"`
	Elapsed        string       `json:"elapsed"`
	Amount         domain.Money `json:"amount"`
	Nocturnal      bool         `json:"nocturnal"`
	Detail         string       `json:"detail"`
}

func exportRowsJSON(rows []domain.ExportRow) []exportRowJSON {
	out := make([]exportRowJSON, len(rows))
	for i, r := range rows {
		out[i] = exportRowJSON{
			InvoiceID:      r.InvoiceID,
			Plate:          r.Plate,
			SpaceNumber:    r.SpaceNumber,
			EntryTime:      r.EntryTime,
			ExitTime:       r.ExitTime,
			ElapsedMinutes: r.ElapsedMinutes,
			Elapsed:        r.Elapsed,
			Amount:         r.Amount,
			Nocturnal:      r.Nocturnal,
			Detail:         r.Detail,
		}
	}
	return out
}

// writeCSV encodes rows as CSV and streams them with a download filename.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck — bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write(exportRowToCSVRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="invoices.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// exportRowToCSVRecord encodes one export row as a flat string slice.
func exportRowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		r.InvoiceID,
		r.Plate,
		strconv.Itoa(r.SpaceNumber),
		r.EntryTime.Format(time.RFC3339),
		r.ExitTime.Format(time.RFC3339),
		strconv.Itoa(r.ElapsedMinutes),
		r.Elapsed,
		r.Amount.String(),
		strconv.FormatBool(r.Nocturnal),
		r.Detail,
	}
}
