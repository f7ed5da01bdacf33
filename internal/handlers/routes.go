package handlers

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, fh *FlightHandler, ah *AlertHandler) {
	r.Get("/api/flights", fh.SearchFlights)
	r.Get("/api/price-history", fh.GetPriceHistory)
	r.Get("/api/airports", fh.GetAirports)

	r.Route("/api/price-alerts", func(r chi.Router) {
		r.Post("/", ah.CreateAlert)
		r.Get("/", ah.GetAlerts)
		r.Delete("/{id}", ah.DeleteAlert)
	})

	r.Get("/api/notifications", ah.GetNotifications)
}
