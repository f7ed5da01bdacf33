package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"flight_alerts/internal/logger"
	"flight_alerts/internal/metrics"
	"flight_alerts/internal/models"
	"flight_alerts/internal/repository"
)

// FlightSearcher is the slice of FlightService the sweep needs.
type FlightSearcher interface {
	SearchFlights(ctx context.Context, origin, destination string, minPrice, maxPrice *int, departureDate string) ([]models.FlightOffer, error)
}

// AlertSweep periodically re-checks every active alert against current
// fares and deactivates the ones whose target has been met. In place of
// a delivery channel it records a notification intent and logs it.
type AlertSweep struct {
	alertRepo *repository.AlertRepository
	notifRepo *repository.NotificationRepository
	searcher  FlightSearcher
	interval  time.Duration
	logger    logger.Logger
}

func NewAlertSweep(
	alertRepo *repository.AlertRepository,
	notifRepo *repository.NotificationRepository,
	searcher FlightSearcher,
	interval time.Duration,
	log logger.Logger,
) *AlertSweep {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &AlertSweep{
		alertRepo: alertRepo,
		notifRepo: notifRepo,
		searcher:  searcher,
		interval:  interval,
		logger:    log,
	}
}

// Start runs the sweep loop in a background goroutine until ctx is
// cancelled. The first cycle runs immediately.
func (s *AlertSweep) Start(ctx context.Context) {
	go func() {
		s.logger.Info("alert sweep started", "interval", s.interval.String())
		defer s.logger.Info("alert sweep stopped")

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.RunOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.RunOnce(ctx)
			}
		}
	}()
}

// RunOnce executes a single sweep cycle. A failure on one alert is
// logged and does not stop the rest of the batch.
func (s *AlertSweep) RunOnce(ctx context.Context) {
	start := time.Now()
	metrics.IncSweepRun()

	alerts := s.alertRepo.GetActive()
	for _, alert := range alerts {
		if ctx.Err() != nil {
			return
		}
		if err := s.checkAlert(ctx, alert); err != nil {
			metrics.IncSweepAlertError()
			s.logger.Error("alert check failed",
				"alert_id", alert.ID,
				"origin", alert.Origin,
				"destination", alert.Destination,
				"error", err.Error(),
			)
		}
	}

	metrics.ObserveSweepDuration(time.Since(start))
}

func (s *AlertSweep) checkAlert(ctx context.Context, alert models.PriceAlert) error {
	offers, err := s.searcher.SearchFlights(ctx, alert.Origin, alert.Destination, nil, nil, alert.DepartureDate)
	if err != nil {
		return fmt.Errorf("search flights: %w", err)
	}

	// No offers means no observed price, which never triggers.
	if len(offers) == 0 {
		return nil
	}

	lowest := offers[0].Price
	for _, offer := range offers[1:] {
		if offer.Price < lowest {
			lowest = offer.Price
		}
	}

	if lowest > alert.TargetPrice {
		return nil
	}

	intent := s.notifRepo.Add(models.NotificationIntent{
		IntentID:      uuid.NewString(),
		AlertID:       alert.ID,
		Email:         alert.Email,
		Origin:        alert.Origin,
		Destination:   alert.Destination,
		DepartureDate: alert.DepartureDate,
		LowestPrice:   lowest,
		TargetPrice:   alert.TargetPrice,
		CreatedAt:     time.Now(),
	})
	metrics.IncNotificationIntent()

	// Stands in for sending the email.
	s.logger.Info("price alert triggered",
		"intent_id", intent.IntentID,
		"alert_id", alert.ID,
		"email", alert.Email,
		"origin", alert.Origin,
		"destination", alert.Destination,
		"lowest_price", lowest,
		"target_price", alert.TargetPrice,
	)

	wasActive, err := s.alertRepo.Deactivate(alert.ID)
	if err != nil {
		return fmt.Errorf("deactivate alert: %w", err)
	}
	if wasActive {
		metrics.IncAlertTriggered()
		metrics.IncAlertDeactivated()
	}

	return nil
}
