package models

import "time"

// FlightOffer is one synthetic listing for a route/date/airline.
// Immutable after creation except for price refreshes, which update
// Price/PriceChange and bump LastChecked.
type FlightOffer struct {
	ID            int       `json:"id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureDate string    `json:"departureDate"` // YYYY-MM-DD
	Airline       string    `json:"airline"`
	Price         int       `json:"price"`
	PriceChange   *int      `json:"priceChange"` // delta vs prior observation, nil if unknown
	Duration      string    `json:"duration"`    // "2h 15m"
	Stops         int       `json:"stops"`
	DepartureTime string    `json:"departureTime"` // "09:45"
	ArrivalTime   string    `json:"arrivalTime"`   // "12:00"
	LastChecked   time.Time `json:"lastChecked"`
}

// PriceHistoryPoint is one append-only observation of an airline's fare
// on a route/date. One point is written per offer at creation time.
type PriceHistoryPoint struct {
	ID            int       `json:"id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureDate string    `json:"departureDate"`
	Airline       string    `json:"airline"`
	Price         int       `json:"price"`
	Timestamp     time.Time `json:"timestamp"`
}

// Airport is an entry of the static airport roster served to clients.
type Airport struct {
	Code string `json:"code"`
	City string `json:"city"`
}
