// Package pricing is the fare source boundary. The real upstream (a
// Skyscanner-style API) never materialized; MockClient synthesizes offers
// locally and is the only implementation.
package pricing

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"flight_alerts/internal/models"
)

const (
	// Offers per airline per day.
	minOffersPerAirline = 3
	maxOffersPerAirline = 5

	// Departure hours are drawn from [earliestHour, latestHour).
	earliestHour = 6
	latestHour   = 22

	// Symmetric band for the simulated change-since-last-observation.
	priceJitter = 300

	weekendFactor = 1.15
	offPeakFactor = 0.90
	peakFactor    = 1.12

	directShare = 0.80 // probability of a non-stop offer
)

const dateLayout = "2006-01-02"

// Client fetches flight offers for a route over a window of departure
// dates starting at windowStart (YYYY-MM-DD).
type Client interface {
	FetchOffers(ctx context.Context, origin, destination, windowStart string) ([]models.FlightOffer, error)
}

// MockClient generates synthetic offers. Generation is randomized; pass a
// seeded source for reproducible output, or nil to seed from the clock.
type MockClient struct {
	windowDays int
	delay      time.Duration

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewMockClient(windowDays int, delay time.Duration, src rand.Source) *MockClient {
	if windowDays <= 0 {
		windowDays = 30
	}
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &MockClient{
		windowDays: windowDays,
		delay:      delay,
		rng:        rand.New(src),
		now:        time.Now,
	}
}

// FetchOffers produces offers for every day of the window and every
// airline of the roster. Unknown routes use fallback fare/duration tables
// rather than failing. Offer IDs are left zero; the store assigns them.
func (c *MockClient) FetchOffers(ctx context.Context, origin, destination, windowStart string) ([]models.FlightOffer, error) {
	start, err := time.Parse(dateLayout, windowStart)
	if err != nil {
		return nil, fmt.Errorf("parse window start %q: %w", windowStart, err)
	}

	// Simulated upstream latency.
	if c.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.delay):
		}
	}

	key := routeKey(origin, destination)
	band, ok := baseFares[key]
	if !ok {
		band = defaultFareBand
	}
	duration, ok := flightDurations[key]
	if !ok {
		duration = defaultDuration
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	checked := c.now()
	offers := make([]models.FlightOffer, 0, c.windowDays*len(airlines)*minOffersPerAirline)

	for day := 0; day < c.windowDays; day++ {
		date := start.AddDate(0, 0, day)
		dateStr := date.Format(dateLayout)

		for _, airline := range airlines {
			count := minOffersPerAirline + c.rng.Intn(maxOffersPerAirline-minOffersPerAirline+1)

			for i := 0; i < count; i++ {
				depHour := earliestHour + c.rng.Intn(latestHour-earliestHour)
				depMinute := c.rng.Intn(60)

				price := c.price(band, date, depHour)
				change := c.rng.Intn(2*priceJitter+1) - priceJitter

				stops := 0
				if c.rng.Float64() >= directShare {
					stops = 1
				}

				offers = append(offers, models.FlightOffer{
					Origin:        origin,
					Destination:   destination,
					DepartureDate: dateStr,
					Airline:       airline,
					Price:         price,
					PriceChange:   &change,
					Duration:      formatDuration(duration),
					Stops:         stops,
					DepartureTime: fmt.Sprintf("%02d:%02d", depHour, depMinute),
					ArrivalTime:   arrivalTime(depHour, depMinute, duration),
					LastChecked:   checked,
				})
			}
		}
	}

	return offers, nil
}

// price draws a base fare from the route band and applies the structural
// adjustments: weekend +15%, off-hours -10%, peak bands +12%.
func (c *MockClient) price(band fareBand, date time.Time, depHour int) int {
	base := band.Min + c.rng.Intn(band.Max-band.Min+1)
	fare := float64(base)

	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		fare *= weekendFactor
	}
	if depHour < 8 || depHour >= 20 {
		fare *= offPeakFactor
	}
	if (depHour >= 8 && depHour < 10) || (depHour >= 17 && depHour < 19) {
		fare *= peakFactor
	}

	return int(fare)
}

func arrivalTime(depHour, depMinute int, d time.Duration) string {
	total := depHour*60 + depMinute + int(d.Minutes())
	total %= 24 * 60
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
