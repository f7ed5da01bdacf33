package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"flight_alerts/internal/logger"
	"flight_alerts/internal/metrics"
	"flight_alerts/internal/models"
	"flight_alerts/internal/pricing"
	"flight_alerts/internal/repository"
)

const dateLayout = "2006-01-02"

type FlightService struct {
	flightRepo *repository.FlightRepository
	pricing    pricing.Client
	logger     logger.Logger

	now func() time.Time
}

func NewFlightService(
	flightRepo *repository.FlightRepository,
	pricingClient pricing.Client,
	log logger.Logger,
) *FlightService {
	if log == nil {
		log = logger.NewNop()
	}
	return &FlightService{
		flightRepo: flightRepo,
		pricing:    pricingClient,
		logger:     log,
		now:        time.Now,
	}
}

// SearchFlights returns offers for the exact (origin, destination, date)
// triple, filtered by the optional price range. The store is consulted
// first; only a miss invokes the fare source, and every fetched offer is
// persisted (with one history point each) regardless of the filter.
func (s *FlightService) SearchFlights(ctx context.Context, origin, destination string, minPrice, maxPrice *int, departureDate string) ([]models.FlightOffer, error) {
	if departureDate == "" {
		departureDate = s.now().Format(dateLayout)
	}
	if err := validateSearch(origin, destination, minPrice, maxPrice, departureDate); err != nil {
		return nil, err
	}

	cached := s.flightRepo.Search(origin, destination, departureDate)
	if len(cached) > 0 {
		metrics.IncSearchHit()
		return filterByPrice(cached, minPrice, maxPrice), nil
	}

	metrics.IncSearchMiss()

	fetched, err := s.pricing.FetchOffers(ctx, origin, destination, departureDate)
	if err != nil {
		return nil, fmt.Errorf("fetch offers for %s-%s: %w", origin, destination, err)
	}

	now := s.now()
	prices := make([]int, 0, len(fetched))
	stored := make([]models.FlightOffer, 0, len(fetched))

	for _, offer := range fetched {
		created := s.flightRepo.Create(offer)
		stored = append(stored, created)
		prices = append(prices, created.Price)

		s.flightRepo.AddHistory(models.PriceHistoryPoint{
			Origin:        created.Origin,
			Destination:   created.Destination,
			DepartureDate: created.DepartureDate,
			Airline:       created.Airline,
			Price:         created.Price,
			Timestamp:     now,
		})
	}

	metrics.ObserveGeneratedOffers(prices)
	s.logger.Info("generated flight offers",
		"origin", origin,
		"destination", destination,
		"count", len(stored),
	)

	// The fetched batch spans a multi-day window; the response covers
	// only the requested date.
	requested := make([]models.FlightOffer, 0, len(stored))
	for _, offer := range stored {
		if offer.DepartureDate == departureDate {
			requested = append(requested, offer)
		}
	}

	return filterByPrice(requested, minPrice, maxPrice), nil
}

// GetPriceHistory returns per-airline price series for a route/date,
// each sorted by timestamp ascending.
func (s *FlightService) GetPriceHistory(origin, destination, departureDate string) (map[string][]models.PricePoint, error) {
	if departureDate == "" {
		departureDate = s.now().Format(dateLayout)
	}
	if err := validateSearch(origin, destination, nil, nil, departureDate); err != nil {
		return nil, err
	}

	points := s.flightRepo.GetHistory(origin, destination, departureDate)

	byAirline := make(map[string][]models.PricePoint)
	for _, p := range points {
		byAirline[p.Airline] = append(byAirline[p.Airline], models.PricePoint{
			Price:     p.Price,
			Timestamp: p.Timestamp,
		})
	}
	for airline := range byAirline {
		series := byAirline[airline]
		sort.Slice(series, func(i, j int) bool {
			return series[i].Timestamp.Before(series[j].Timestamp)
		})
	}

	return byAirline, nil
}

// RefreshPrice updates a stored offer's price. When no explicit change is
// given, the delta against the previous stored price is recorded. The
// refreshed price is also appended to the history log.
func (s *FlightService) RefreshPrice(id int, price int, priceChange *int) (models.FlightOffer, error) {
	if price < 0 {
		return models.FlightOffer{}, &ValidationError{Fields: []models.FieldError{
			{Field: "price", Message: "must be non-negative"},
		}}
	}

	prev, err := s.flightRepo.Get(id)
	if err != nil {
		return models.FlightOffer{}, err
	}

	if priceChange == nil {
		delta := price - prev.Price
		priceChange = &delta
	}

	updated, err := s.flightRepo.UpdatePrice(id, price, priceChange)
	if err != nil {
		return models.FlightOffer{}, err
	}

	s.flightRepo.AddHistory(models.PriceHistoryPoint{
		Origin:        updated.Origin,
		Destination:   updated.Destination,
		DepartureDate: updated.DepartureDate,
		Airline:       updated.Airline,
		Price:         updated.Price,
		Timestamp:     s.now(),
	})

	return updated, nil
}

func filterByPrice(offers []models.FlightOffer, minPrice, maxPrice *int) []models.FlightOffer {
	out := make([]models.FlightOffer, 0, len(offers))
	for _, offer := range offers {
		if minPrice != nil && offer.Price < *minPrice {
			continue
		}
		if maxPrice != nil && offer.Price > *maxPrice {
			continue
		}
		out = append(out, offer)
	}
	return out
}

func validateSearch(origin, destination string, minPrice, maxPrice *int, departureDate string) error {
	var fields []models.FieldError

	if f := validateAirportCode("origin", origin); f != nil {
		fields = append(fields, *f)
	}
	if f := validateAirportCode("destination", destination); f != nil {
		fields = append(fields, *f)
	}
	if minPrice != nil && *minPrice < 0 {
		fields = append(fields, models.FieldError{Field: "minPrice", Message: "must be non-negative"})
	}
	if maxPrice != nil && *maxPrice < 0 {
		fields = append(fields, models.FieldError{Field: "maxPrice", Message: "must be non-negative"})
	}
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		fields = append(fields, models.FieldError{Field: "minPrice", Message: "must not exceed maxPrice"})
	}
	if _, err := time.Parse(dateLayout, departureDate); err != nil {
		fields = append(fields, models.FieldError{Field: "departureDate", Message: "must be YYYY-MM-DD"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validateAirportCode(field, code string) *models.FieldError {
	if code == "" {
		return &models.FieldError{Field: field, Message: "is required"}
	}
	if len(code) != 3 {
		return &models.FieldError{Field: field, Message: "must be a 3-letter airport code"}
	}
	for _, c := range code {
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return &models.FieldError{Field: field, Message: "must be a 3-letter airport code"}
		}
	}
	return nil
}
