package repository

import (
	"sync"

	"flight_alerts/internal/models"
)

// NotificationRepository records notification intents emitted by the
// alert sweep. There is no delivery channel; this log stands in for one.
type NotificationRepository struct {
	mu      sync.Mutex
	intents []models.NotificationIntent
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Add(intent models.NotificationIntent) models.NotificationIntent {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.intents = append(r.intents, intent)
	return intent
}

// GetByEmail returns intents addressed to an email, oldest first.
func (r *NotificationRepository) GetByEmail(email string) []models.NotificationIntent {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.NotificationIntent, 0)
	for _, in := range r.intents {
		if in.Email == email {
			out = append(out, in)
		}
	}
	return out
}
