package models

import "time"

type FlightSearchResponse struct {
	Flights []FlightOffer `json:"flights"`
}

// PricePoint is one entry of a per-airline history series.
type PricePoint struct {
	Price     int       `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

type PriceHistoryResponse struct {
	PriceHistory map[string][]PricePoint `json:"priceHistory"`
}

type PriceAlertsResponse struct {
	Alerts []PriceAlert `json:"alerts"`
}

type NotificationsResponse struct {
	Notifications []NotificationIntent `json:"notifications"`
}

type AirportsResponse struct {
	Airports []Airport `json:"airports"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// FieldError names one offending request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}
