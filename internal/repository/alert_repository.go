package repository

import (
	"fmt"
	"sync"
	"time"

	"flight_alerts/internal/models"
)

// AlertRepository keeps price alerts in process memory. Alerts are soft
// deleted: Deactivate flips the active flag, nothing is ever removed.
type AlertRepository struct {
	mu      sync.Mutex
	alerts  map[int]*models.PriceAlert
	order   []int
	alertID int
}

func NewAlertRepository() *AlertRepository {
	return &AlertRepository{
		alerts: make(map[int]*models.PriceAlert),
	}
}

// Create stores a new active alert and assigns its id and createdAt.
func (r *AlertRepository) Create(alert models.PriceAlert) models.PriceAlert {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.alertID++
	alert.ID = r.alertID
	alert.CreatedAt = time.Now()
	alert.Active = true

	r.alerts[alert.ID] = &alert
	r.order = append(r.order, alert.ID)

	return alert
}

// GetActive returns all currently active alerts in creation order.
func (r *AlertRepository) GetActive() []models.PriceAlert {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.PriceAlert, 0, len(r.order))
	for _, id := range r.order {
		if a := r.alerts[id]; a.Active {
			out = append(out, *a)
		}
	}
	return out
}

// GetActiveByEmail returns the active alerts registered under an email.
func (r *AlertRepository) GetActiveByEmail(email string) []models.PriceAlert {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.PriceAlert, 0)
	for _, id := range r.order {
		if a := r.alerts[id]; a.Active && a.Email == email {
			out = append(out, *a)
		}
	}
	return out
}

// Deactivate flips the active flag and reports whether the alert was
// still active. Deactivating an already-inactive alert is a no-op; an
// unknown id is ErrNotFound.
func (r *AlertRepository) Deactivate(id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.alerts[id]
	if !ok {
		return false, fmt.Errorf("alert %d: %w", id, ErrNotFound)
	}
	wasActive := a.Active
	a.Active = false
	return wasActive, nil
}
