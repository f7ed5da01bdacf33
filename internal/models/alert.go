package models

import "time"

// PriceAlert is a user-registered watch on a route/date. Alerts are never
// physically removed: the sweep and explicit deletes flip Active to false.
type PriceAlert struct {
	ID            int       `json:"id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureDate string    `json:"departureDate"`
	TargetPrice   int       `json:"targetPrice"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"createdAt"`
	Active        bool      `json:"active"`
}

// CreatePriceAlertRequest is the POST /api/price-alerts body.
type CreatePriceAlertRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	TargetPrice   int    `json:"targetPrice"`
	Email         string `json:"email"`
}

// NotificationIntent records that an alert fired. There is no delivery
// channel; intents are kept in memory and logged in place of sending email.
type NotificationIntent struct {
	IntentID      string    `json:"intentId"` // UUID
	AlertID       int       `json:"alertId"`
	Email         string    `json:"email"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureDate string    `json:"departureDate"`
	LowestPrice   int       `json:"lowestPrice"`
	TargetPrice   int       `json:"targetPrice"`
	CreatedAt     time.Time `json:"createdAt"`
}
