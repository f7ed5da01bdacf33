package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"flight_alerts/internal/logger"
	"flight_alerts/internal/models"
	"flight_alerts/internal/pricing"
)

// FlightService describes the service-layer methods the flight handlers
// need.
type FlightService interface {
	SearchFlights(ctx context.Context, origin, destination string, minPrice, maxPrice *int, departureDate string) ([]models.FlightOffer, error)
	GetPriceHistory(origin, destination, departureDate string) (map[string][]models.PricePoint, error)
}

type FlightHandler struct {
	service FlightService
	logger  logger.Logger
}

func NewFlightHandler(service FlightService, log logger.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		logger:  log,
	}
}

// GET /api/flights?origin=&destination=&minPrice=&maxPrice=
// 200: { "flights": [...] }
// 400: invalid params
// 500: internal error
func (h *FlightHandler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	origin := strings.TrimSpace(q.Get("origin"))
	destination := strings.TrimSpace(q.Get("destination"))

	minPrice, fieldErr := parseOptionalInt(q.Get("minPrice"), "minPrice")
	if fieldErr != nil {
		writeError(w, http.StatusBadRequest, "Invalid search parameters", []models.FieldError{*fieldErr})
		return
	}
	maxPrice, fieldErr := parseOptionalInt(q.Get("maxPrice"), "maxPrice")
	if fieldErr != nil {
		writeError(w, http.StatusBadRequest, "Invalid search parameters", []models.FieldError{*fieldErr})
		return
	}

	flights, err := h.service.SearchFlights(r.Context(), origin, destination, minPrice, maxPrice, "")
	if err != nil {
		respondServiceError(w, h.logger, err,
			"Invalid search parameters", "not found", "Failed to fetch flight data")
		return
	}

	writeJSON(w, http.StatusOK, models.FlightSearchResponse{Flights: flights})
}

// GET /api/price-history?origin=&destination=
// 200: { "priceHistory": { "<airline>": [ {price, timestamp}, ... ] } }
// 400: invalid params
// 500: internal error
func (h *FlightHandler) GetPriceHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	origin := strings.TrimSpace(q.Get("origin"))
	destination := strings.TrimSpace(q.Get("destination"))

	history, err := h.service.GetPriceHistory(origin, destination, "")
	if err != nil {
		respondServiceError(w, h.logger, err,
			"Invalid request parameters", "not found", "Failed to fetch price history")
		return
	}

	writeJSON(w, http.StatusOK, models.PriceHistoryResponse{PriceHistory: history})
}

// GET /api/airports
// 200: { "airports": [ {code, city}, ... ] }
func (h *FlightHandler) GetAirports(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.AirportsResponse{Airports: pricing.Airports})
}

func parseOptionalInt(raw, field string) (*int, *models.FieldError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &models.FieldError{Field: field, Message: "must be an integer"}
	}
	return &n, nil
}
