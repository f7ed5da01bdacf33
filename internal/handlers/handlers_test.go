package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight_alerts/internal/logger"
	"flight_alerts/internal/models"
	"flight_alerts/internal/pricing"
	"flight_alerts/internal/repository"
	"flight_alerts/internal/service"
)

// newTestRouter wires the full stack with a small, seeded mock pricing
// client so HTTP tests run timer-free and deterministic.
func newTestRouter(t *testing.T) (chi.Router, *service.AlertSweep, *repository.AlertRepository) {
	t.Helper()

	flightRepo := repository.NewFlightRepository()
	alertRepo := repository.NewAlertRepository()
	notifRepo := repository.NewNotificationRepository()

	client := pricing.NewMockClient(2, 0, rand.NewSource(99))
	log := logger.NewNop()

	flightService := service.NewFlightService(flightRepo, client, log)
	alertService := service.NewAlertService(alertRepo, log)
	sweep := service.NewAlertSweep(alertRepo, notifRepo, flightService, time.Minute, log)

	r := chi.NewRouter()
	RegisterRoutes(r,
		NewFlightHandler(flightService, log),
		NewAlertHandler(alertService, notifRepo, log),
	)
	return r, sweep, alertRepo
}

func doRequest(t *testing.T, r chi.Router, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSearchFlightsEndpoint(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := doRequest(t, r, http.MethodGet, "/api/flights?origin=DEL&destination=BOM", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.FlightSearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Flights)

	today := time.Now().Format("2006-01-02")
	for _, f := range resp.Flights {
		assert.Equal(t, "DEL", f.Origin)
		assert.Equal(t, "BOM", f.Destination)
		assert.Equal(t, today, f.DepartureDate)
		assert.GreaterOrEqual(t, f.Price, 0)
	}
}

func TestSearchFlightsEndpoint_PriceFilter(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := doRequest(t, r, http.MethodGet, "/api/flights?origin=DEL&destination=BOM&minPrice=4000&maxPrice=6000", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.FlightSearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	for _, f := range resp.Flights {
		assert.GreaterOrEqual(t, f.Price, 4000)
		assert.LessOrEqual(t, f.Price, 6000)
	}
}

func TestSearchFlightsEndpoint_MissingDestination(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := doRequest(t, r, http.MethodGet, "/api/flights?origin=DEL", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "destination", resp.Errors[0].Field)
}

func TestSearchFlightsEndpoint_BadPriceParam(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := doRequest(t, r, http.MethodGet, "/api/flights?origin=DEL&destination=BOM&minPrice=abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "minPrice", resp.Errors[0].Field)
}

func TestPriceHistoryEndpoint(t *testing.T) {
	r, _, _ := newTestRouter(t)

	// A search populates the history log.
	rec := doRequest(t, r, http.MethodGet, "/api/flights?origin=DEL&destination=BOM", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, r, http.MethodGet, "/api/price-history?origin=DEL&destination=BOM", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.PriceHistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.PriceHistory)

	for airline, series := range resp.PriceHistory {
		assert.NotEmpty(t, airline)
		assert.NotEmpty(t, series)
	}
}

func TestPriceAlertLifecycle(t *testing.T) {
	r, _, _ := newTestRouter(t)

	// Create.
	rec := doRequest(t, r, http.MethodPost, "/api/price-alerts", models.CreatePriceAlertRequest{
		Origin: "DEL", Destination: "BOM", DepartureDate: "2024-01-01",
		TargetPrice: 5000, Email: "a@b.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var alert models.PriceAlert
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &alert))
	assert.NotZero(t, alert.ID)
	assert.False(t, alert.CreatedAt.IsZero())
	assert.True(t, alert.Active)

	// Listed under the email.
	rec = doRequest(t, r, http.MethodGet, "/api/price-alerts?email=a@b.com", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list models.PriceAlertsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Alerts, 1)
	assert.Equal(t, alert.ID, list.Alerts[0].ID)

	// Delete, then delete again: idempotent success, and the alert never
	// reappears.
	target := fmt.Sprintf("/api/price-alerts/%d", alert.ID)
	rec = doRequest(t, r, http.MethodDelete, target, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, r, http.MethodDelete, target, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, r, http.MethodGet, "/api/price-alerts?email=a@b.com", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Empty(t, list.Alerts)
}

func TestCreateAlertEndpoint_Invalid(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := doRequest(t, r, http.MethodPost, "/api/price-alerts", models.CreatePriceAlertRequest{
		Origin: "DEL", Destination: "BOM", DepartureDate: "2024-01-01",
		TargetPrice: 0, Email: "a@b.com",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "targetPrice", resp.Errors[0].Field)
}

func TestGetAlertsEndpoint_MissingEmail(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := doRequest(t, r, http.MethodGet, "/api/price-alerts", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteAlertEndpoint_Errors(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := doRequest(t, r, http.MethodDelete, "/api/price-alerts/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, r, http.MethodDelete, "/api/price-alerts/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAirportsEndpoint(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := doRequest(t, r, http.MethodGet, "/api/airports", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AirportsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Airports, len(pricing.Airports))
}

// Full loop: register an alert the generated fares will satisfy, run one
// sweep cycle, observe the deactivation and the notification intent.
func TestSweepThroughHTTPSurface(t *testing.T) {
	r, sweep, alertRepo := newTestRouter(t)

	today := time.Now().Format("2006-01-02")
	rec := doRequest(t, r, http.MethodPost, "/api/price-alerts", models.CreatePriceAlertRequest{
		Origin: "DEL", Destination: "BOM", DepartureDate: today,
		TargetPrice: 1 << 20, Email: "a@b.com", // any generated fare satisfies this
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	sweep.RunOnce(context.Background())

	assert.Empty(t, alertRepo.GetActive())

	rec = doRequest(t, r, http.MethodGet, "/api/notifications?email=a@b.com", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.NotificationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "a@b.com", resp.Notifications[0].Email)
}
