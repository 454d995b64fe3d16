package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelcosta/parking-backend/internal/domain"
	"github.com/hotelcosta/parking-backend/internal/service"
)

// ---- GET /api/config -------------------------------------------------------

func TestGetConfig_200(t *testing.T) {
	fixture := priceConfigFixture()
	svc := &mockPricingServicer{
		get: func(_ context.Context) (domain.PriceConfig, error) { return fixture, nil },
	}

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, svc, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON(t, rec.Body)
	assert.Equal(t, fixture.ID.String(), resp["id"])
	assert.EqualValues(t, 1.00, resp["half_hour_rate"])
	assert.EqualValues(t, 0.75, resp["extra_hour_rate"])
	assert.EqualValues(t, 10.00, resp["night_rate"])
	assert.Equal(t, "20:00", resp["night_start"])
	assert.Equal(t, "06:00", resp["night_end"])
}

// ---- PUT /api/config -------------------------------------------------------

func TestUpdateConfig_200(t *testing.T) {
	fixture := priceConfigFixture()
	var gotInput service.PriceConfigInput
	svc := &mockPricingServicer{
		update: func(_ context.Context, in service.PriceConfigInput) (domain.PriceConfig, error) {
			gotInput = in
			return fixture, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"half_hour_rate":  1.00,
		"extra_hour_rate": 0.75,
		"night_rate":      10.00,
		"night_start":     "20:00",
		"night_end":       "06:00",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/config", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, svc, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.Money(100), gotInput.HalfHourRate)
	assert.Equal(t, domain.Money(75), gotInput.ExtraHourRate)
	assert.Equal(t, domain.Money(1000), gotInput.NightRate)
	assert.Equal(t, "20:00", gotInput.NightStart)
	assert.Equal(t, "06:00", gotInput.NightEnd)
}

// Rates can also arrive as decimal strings — some clients send "1.80".
func TestUpdateConfig_200_StringRates(t *testing.T) {
	var gotInput service.PriceConfigInput
	svc := &mockPricingServicer{
		update: func(_ context.Context, in service.PriceConfigInput) (domain.PriceConfig, error) {
			gotInput = in
			return priceConfigFixture(), nil
		},
	}

	body := jsonBody(t, map[string]any{
		"half_hour_rate":  "1.80",
		"extra_hour_rate": "0.75",
		"night_rate":      "10",
		"night_start":     "20:00",
		"night_end":       "06:00",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/config", body)
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, svc, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.Money(180), gotInput.HalfHourRate)
	assert.Equal(t, domain.Money(1000), gotInput.NightRate)
}

func TestUpdateConfig_422_MalformedWindowBound(t *testing.T) {
	svc := &mockPricingServicer{
		update: func(_ context.Context, _ service.PriceConfigInput) (domain.PriceConfig, error) {
			return domain.PriceConfig{}, fmt.Errorf("%w: time must be formatted HH:MM", domain.ErrInvalidTimeWindow)
		},
	}

	body := jsonBody(t, map[string]any{
		"half_hour_rate":  1.00,
		"extra_hour_rate": 0.75,
		"night_rate":      10.00,
		"night_start":     "25:99",
		"night_end":       "06:00",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/config", body)
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, svc, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeJSON(t, rec.Body)
	errObj := resp["error"].(map[string]any)
	assert.Equal(t, "validation_error", errObj["code"])
}

// ---- GET /api/config/history -----------------------------------------------

func TestGetConfigHistory_200(t *testing.T) {
	fixture := priceConfigFixture()
	var gotLimit int
	svc := &mockPricingServicer{
		history: func(_ context.Context, limit int) ([]domain.PriceConfig, error) {
			gotLimit = limit
			return []domain.PriceConfig{fixture}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/config/history?limit=5", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, svc, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, gotLimit)
	resp := decodeJSON(t, rec.Body)
	data := resp["data"].([]any)
	require.Len(t, data, 1)
	first := data[0].(map[string]any)
	assert.Equal(t, "20:00", first["night_start"])
}

func TestGetConfigHistory_422_BadLimit(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/config/history?limit=abc", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, &mockPricingServicer{}, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
