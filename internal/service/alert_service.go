package service

import (
	"strings"
	"time"

	"flight_alerts/internal/logger"
	"flight_alerts/internal/metrics"
	"flight_alerts/internal/models"
	"flight_alerts/internal/repository"
)

type AlertService struct {
	alertRepo *repository.AlertRepository
	logger    logger.Logger
}

func NewAlertService(alertRepo *repository.AlertRepository, log logger.Logger) *AlertService {
	if log == nil {
		log = logger.NewNop()
	}
	return &AlertService{
		alertRepo: alertRepo,
		logger:    log,
	}
}

// CreateAlert validates and registers a new active price alert.
func (s *AlertService) CreateAlert(req models.CreatePriceAlertRequest) (models.PriceAlert, error) {
	if err := validateAlertRequest(req); err != nil {
		return models.PriceAlert{}, err
	}

	alert := s.alertRepo.Create(models.PriceAlert{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		TargetPrice:   req.TargetPrice,
		Email:         req.Email,
	})

	metrics.IncAlertCreated()
	s.logger.Info("price alert created",
		"alert_id", alert.ID,
		"origin", alert.Origin,
		"destination", alert.Destination,
		"target_price", alert.TargetPrice,
	)

	return alert, nil
}

// GetAlertsByEmail returns the active alerts registered under an email.
func (s *AlertService) GetAlertsByEmail(email string) ([]models.PriceAlert, error) {
	if strings.TrimSpace(email) == "" {
		return nil, &ValidationError{Fields: []models.FieldError{
			{Field: "email", Message: "is required"},
		}}
	}
	return s.alertRepo.GetActiveByEmail(email), nil
}

// DeactivateAlert soft-deletes an alert. Repeating the call on an
// already-inactive alert succeeds without effect.
func (s *AlertService) DeactivateAlert(id int) error {
	wasActive, err := s.alertRepo.Deactivate(id)
	if err != nil {
		return err
	}
	if wasActive {
		metrics.IncAlertDeactivated()
	}
	return nil
}

func validateAlertRequest(req models.CreatePriceAlertRequest) error {
	var fields []models.FieldError

	if f := validateAirportCode("origin", req.Origin); f != nil {
		fields = append(fields, *f)
	}
	if f := validateAirportCode("destination", req.Destination); f != nil {
		fields = append(fields, *f)
	}
	if _, err := time.Parse(dateLayout, req.DepartureDate); err != nil {
		fields = append(fields, models.FieldError{Field: "departureDate", Message: "must be YYYY-MM-DD"})
	}
	if req.TargetPrice <= 0 {
		fields = append(fields, models.FieldError{Field: "targetPrice", Message: "must be positive"})
	}
	if email := strings.TrimSpace(req.Email); email == "" {
		fields = append(fields, models.FieldError{Field: "email", Message: "is required"})
	} else if !strings.Contains(email, "@") {
		fields = append(fields, models.FieldError{Field: "email", Message: "must be a valid email address"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
