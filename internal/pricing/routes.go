package pricing

import (
	"time"

	"flight_alerts/internal/models"
)

// Airline roster used for every route.
var airlines = []string{
	"Air India",
	"IndiGo",
	"SpiceJet",
	"Vistara",
	"GoAir",
	"AirAsia India",
	"Alliance Air",
}

type fareBand struct {
	Min int
	Max int
}

// Base fare bands per ordered route, in rupees. Routes not listed fall
// back to defaultFareBand.
var baseFares = map[string]fareBand{
	"DEL-BOM": {3500, 8500},
	"BOM-DEL": {3500, 8500},
	"DEL-BLR": {4000, 9500},
	"BLR-DEL": {4000, 9500},
	"DEL-MAA": {4500, 9800},
	"MAA-DEL": {4500, 9800},
	"DEL-CCU": {3800, 8800},
	"CCU-DEL": {3800, 8800},
	"BOM-BLR": {2800, 6500},
	"BLR-BOM": {2800, 6500},
	"BOM-GOI": {2200, 5500},
	"GOI-BOM": {2200, 5500},
	"DEL-HYD": {3600, 8200},
	"HYD-DEL": {3600, 8200},
	"BLR-HYD": {2000, 5000},
	"HYD-BLR": {2000, 5000},
}

var defaultFareBand = fareBand{2000, 10000}

// Nominal flight durations per ordered route. Routes not listed fall
// back to defaultDuration.
var flightDurations = map[string]time.Duration{
	"DEL-BOM": 2*time.Hour + 10*time.Minute,
	"BOM-DEL": 2*time.Hour + 15*time.Minute,
	"DEL-BLR": 2*time.Hour + 45*time.Minute,
	"BLR-DEL": 2*time.Hour + 50*time.Minute,
	"DEL-MAA": 2*time.Hour + 55*time.Minute,
	"MAA-DEL": 3 * time.Hour,
	"DEL-CCU": 2*time.Hour + 5*time.Minute,
	"CCU-DEL": 2*time.Hour + 20*time.Minute,
	"BOM-BLR": 1*time.Hour + 40*time.Minute,
	"BLR-BOM": 1*time.Hour + 45*time.Minute,
	"BOM-GOI": 1*time.Hour + 10*time.Minute,
	"GOI-BOM": 1*time.Hour + 15*time.Minute,
	"DEL-HYD": 2*time.Hour + 15*time.Minute,
	"HYD-DEL": 2*time.Hour + 20*time.Minute,
	"BLR-HYD": 1*time.Hour + 10*time.Minute,
	"HYD-BLR": 1*time.Hour + 15*time.Minute,
}

var defaultDuration = 2*time.Hour + 30*time.Minute

// Airports is the static roster served by GET /api/airports.
var Airports = []models.Airport{
	{Code: "DEL", City: "Delhi"},
	{Code: "BOM", City: "Mumbai"},
	{Code: "BLR", City: "Bangalore"},
	{Code: "HYD", City: "Hyderabad"},
	{Code: "MAA", City: "Chennai"},
	{Code: "CCU", City: "Kolkata"},
	{Code: "GOI", City: "Goa"},
	{Code: "COK", City: "Kochi"},
	{Code: "PNQ", City: "Pune"},
	{Code: "AMD", City: "Ahmedabad"},
	{Code: "JAI", City: "Jaipur"},
	{Code: "LKO", City: "Lucknow"},
	{Code: "IXC", City: "Chandigarh"},
	{Code: "PAT", City: "Patna"},
	{Code: "BBI", City: "Bhubaneswar"},
	{Code: "GAU", City: "Guwahati"},
	{Code: "IXZ", City: "Port Blair"},
	{Code: "IXB", City: "Bagdogra"},
	{Code: "ATQ", City: "Amritsar"},
	{Code: "VTZ", City: "Visakhapatnam"},
}

func routeKey(origin, destination string) string {
	return origin + "-" + destination
}
