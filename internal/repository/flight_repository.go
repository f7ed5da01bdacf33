package repository

import (
	"fmt"
	"sync"
	"time"

	"flight_alerts/internal/models"
)

// FlightRepository keeps generated offers and their price history in
// process memory. Entries accumulate for the process lifetime; there is
// no eviction. Search is exact-match on (origin, destination, date) and
// returns offers in insertion order.
type FlightRepository struct {
	mu sync.Mutex

	flights  map[int]*models.FlightOffer
	byRoute  map[string][]int // route/date key -> offer ids in insertion order
	history  map[string][]models.PriceHistoryPoint
	flightID int
	pointID  int
}

func NewFlightRepository() *FlightRepository {
	return &FlightRepository{
		flights: make(map[int]*models.FlightOffer),
		byRoute: make(map[string][]int),
		history: make(map[string][]models.PriceHistoryPoint),
	}
}

func tripleKey(origin, destination, departureDate string) string {
	return origin + "|" + destination + "|" + departureDate
}

// Search returns all stored offers matching the exact triple.
func (r *FlightRepository) Search(origin, destination, departureDate string) []models.FlightOffer {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.byRoute[tripleKey(origin, destination, departureDate)]
	out := make([]models.FlightOffer, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.flights[id])
	}
	return out
}

// Get returns a single offer by id.
func (r *FlightRepository) Get(id int) (*models.FlightOffer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.flights[id]
	if !ok {
		return nil, fmt.Errorf("flight %d: %w", id, ErrNotFound)
	}
	cp := *f
	return &cp, nil
}

// Create assigns an id and stores the offer. The input's ID field is
// ignored.
func (r *FlightRepository) Create(offer models.FlightOffer) models.FlightOffer {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.flightID++
	offer.ID = r.flightID
	r.flights[offer.ID] = &offer

	key := tripleKey(offer.Origin, offer.Destination, offer.DepartureDate)
	r.byRoute[key] = append(r.byRoute[key], offer.ID)

	return offer
}

// UpdatePrice mutates an offer's price, optionally its priceChange, and
// bumps lastChecked.
func (r *FlightRepository) UpdatePrice(id int, price int, priceChange *int) (models.FlightOffer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.flights[id]
	if !ok {
		return models.FlightOffer{}, fmt.Errorf("flight %d: %w", id, ErrNotFound)
	}

	f.Price = price
	if priceChange != nil {
		f.PriceChange = priceChange
	}
	f.LastChecked = time.Now()

	return *f, nil
}

// AddHistory appends one observation to the price-history log.
func (r *FlightRepository) AddHistory(point models.PriceHistoryPoint) models.PriceHistoryPoint {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pointID++
	point.ID = r.pointID

	key := tripleKey(point.Origin, point.Destination, point.DepartureDate)
	r.history[key] = append(r.history[key], point)

	return point
}

// GetHistory returns all history points matching the exact triple, in
// append order.
func (r *FlightRepository) GetHistory(origin, destination, departureDate string) []models.PriceHistoryPoint {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := r.history[tripleKey(origin, destination, departureDate)]
	out := make([]models.PriceHistoryPoint, len(points))
	copy(out, points)
	return out
}
