package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"flight_alerts/internal/logger"
	"flight_alerts/internal/models"
)

// AlertService describes the service-layer methods the alert handlers
// need.
type AlertService interface {
	CreateAlert(req models.CreatePriceAlertRequest) (models.PriceAlert, error)
	GetAlertsByEmail(email string) ([]models.PriceAlert, error)
	DeactivateAlert(id int) error
}

// NotificationLog exposes the recorded notification intents.
type NotificationLog interface {
	GetByEmail(email string) []models.NotificationIntent
}

type AlertHandler struct {
	service       AlertService
	notifications NotificationLog
	logger        logger.Logger
}

func NewAlertHandler(service AlertService, notifications NotificationLog, log logger.Logger) *AlertHandler {
	return &AlertHandler{
		service:       service,
		notifications: notifications,
		logger:        log,
	}
}

// POST /api/price-alerts
// 201: created PriceAlert
// 400: invalid body
// 500: internal error
func (h *AlertHandler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePriceAlertRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid alert data", []models.FieldError{
			{Field: "body", Message: "must be a valid JSON object"},
		})
		return
	}

	alert, err := h.service.CreateAlert(req)
	if err != nil {
		respondServiceError(w, h.logger, err,
			"Invalid alert data", "not found", "Failed to create price alert")
		return
	}

	writeJSON(w, http.StatusCreated, alert)
}

// GET /api/price-alerts?email=
// 200: { "alerts": [...] } (active only)
// 400: missing email
func (h *AlertHandler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))

	alerts, err := h.service.GetAlertsByEmail(email)
	if err != nil {
		respondServiceError(w, h.logger, err,
			"Email is required", "not found", "Failed to fetch price alerts")
		return
	}

	writeJSON(w, http.StatusOK, models.PriceAlertsResponse{Alerts: alerts})
}

// DELETE /api/price-alerts/{id}
// 200: { "message": ... } (sets active=false)
// 400: non-numeric id
// 404: unknown id
func (h *AlertHandler) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid alert ID", nil)
		return
	}

	if err := h.service.DeactivateAlert(id); err != nil {
		respondServiceError(w, h.logger, err,
			"Invalid alert ID", "Price alert not found", "Failed to deactivate price alert")
		return
	}

	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Price alert deactivated successfully"})
}

// GET /api/notifications?email=
// 200: { "notifications": [...] }
// 400: missing email
func (h *AlertHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeError(w, http.StatusBadRequest, "Email is required", []models.FieldError{
			{Field: "email", Message: "is required"},
		})
		return
	}

	writeJSON(w, http.StatusOK, models.NotificationsResponse{
		Notifications: h.notifications.GetByEmail(email),
	})
}
