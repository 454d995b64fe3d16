package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/hotelcosta/parking-backend/internal/domain"
	"github.com/hotelcosta/parking-backend/internal/service"
)

// priceConfigResponse is the wire shape of a configuration: rates as
// 2-decimal numbers, window bounds as "HH:MM" strings.
type priceConfigResponse struct {
	ID            string       `json:"id"`
	HalfHourRate  domain.Money `json:"half_hour_rate"`
	ExtraHourRate domain.Money `json:"extra_hour_rate"`
	NightRate     domain.Money `json:"night_rate"`
	NightStart    string       `json:"night_start"`
	NightEnd      string       `json:"night_end"`
	EffectiveAt   string       `json:"effective_at"`
}

func toPriceConfigResponse(cfg domain.PriceConfig) priceConfigResponse {
	return priceConfigResponse{
		ID:            cfg.ID.String(),
		HalfHourRate:  cfg.HalfHourRate,
		ExtraHourRate: cfg.ExtraHourRate,
		NightRate:     cfg.NightRate,
		NightStart:    cfg.NightStart.String(),
		NightEnd:      cfg.NightEnd.String(),
		EffectiveAt:   cfg.EffectiveAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// GetConfig handles GET /api/config.
func (s *Server) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.pricing.Get(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPriceConfigResponse(cfg))
}

// UpdateConfig handles PUT /api/config (admin-gated).
// The update is atomic: any malformed field rejects the whole request and
// the previous configuration stays effective.
func (s *Server) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req struct {
		HalfHourRate  domain.Money `json:"half_hour_rate"`
		ExtraHourRate domain.Money `json:"extra_hour_rate"`
		NightRate     domain.Money `json:"night_rate"`
		NightStart    string       `json:"night_start"`
		NightEnd      string       `json:"night_end"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	cfg, err := s.pricing.Update(r.Context(), service.PriceConfigInput{
		HalfHourRate:  req.HalfHourRate,
		ExtraHourRate: req.ExtraHourRate,
		NightRate:     req.NightRate,
		NightStart:    req.NightStart,
		NightEnd:      req.NightEnd,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPriceConfigResponse(cfg))
}

// GetConfigHistory handles GET /api/config/history?limit= (admin-gated).
func (s *Server) GetConfigHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondBadRequest(w, "limit must be an integer")
			return
		}
		limit = n
	}

	configs, err := s.pricing.History(r.Context(), limit)
	if err != nil {
		respondError(w, err)
		return
	}

	data := make([]priceConfigResponse, len(configs))
	for i, cfg := range configs {
		data[i] = toPriceConfigResponse(cfg)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}
