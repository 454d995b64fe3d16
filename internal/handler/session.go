package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/hotelcosta/parking-backend/internal/domain"
)

// invoiceResponse decorates a domain.Invoice with display fields.
type invoiceResponse struct {
	domain.Invoice
	Elapsed string `json:"elapsed"` // "XhYm" rendering of ElapsedMinutes
}

func toInvoiceResponse(inv domain.Invoice) invoiceResponse {
	return invoiceResponse{Invoice: inv, Elapsed: domain.FormatElapsed(inv.ElapsedMinutes)}
}

// OpenSession handles POST /api/sessions.
// entry_time is optional; it defaults to the server clock, which is the
// instant the nocturnal flag is decided and frozen.
func (s *Server) OpenSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Plate       string     `json:"plate"`
		SpaceNumber int        `json:"space_number"`
		EntryTime   *time.Time `json:"entry_time,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	entryTime := time.Now().UTC()
	if req.EntryTime != nil {
		entryTime = *req.EntryTime
	}

	session, err := s.sessions.Open(r.Context(), req.Plate, req.SpaceNumber, entryTime)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

// ListOpenSessions handles GET /api/sessions/open.
// It backs the occupancy grid: one entry per occupied space.
func (s *Server) ListOpenSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.sessions.ListOpen(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": sessions})
}

// LookupSession handles GET /api/sessions/lookup?plate=.
// It returns the open session for the plate plus the charge the driver
// would pay if exiting right now.
func (s *Server) LookupSession(w http.ResponseWriter, r *http.Request) {
	plate := r.URL.Query().Get("plate")
	if plate == "" {
		respondBadRequest(w, "plate query parameter is required")
		return
	}

	session, estimate, err := s.sessions.Lookup(r.Context(), plate, time.Now().UTC())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"session":          session,
		"estimated_charge": estimate.Amount,
		"elapsed":          domain.FormatElapsed(estimate.ElapsedMinutes),
		"detail":           estimate.Detail,
	})
}

// CloseSession handles POST /api/sessions/close.
// exit_time is optional and defaults to the server clock. The response is
// the generated invoice.
func (s *Server) CloseSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Plate    string     `json:"plate"`
		ExitTime *time.Time `json:"exit_time,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	exitTime := time.Now().UTC()
	if req.ExitTime != nil {
		exitTime = *req.ExitTime
	}

	invoice, err := s.sessions.Close(r.Context(), req.Plate, exitTime)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toInvoiceResponse(invoice))
}
