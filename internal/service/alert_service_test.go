package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight_alerts/internal/models"
	"flight_alerts/internal/repository"
)

func validAlertRequest() models.CreatePriceAlertRequest {
	return models.CreatePriceAlertRequest{
		Origin:        "DEL",
		Destination:   "BOM",
		DepartureDate: "2024-06-01",
		TargetPrice:   4000,
		Email:         "a@b.com",
	}
}

func TestCreateAlert(t *testing.T) {
	svc := NewAlertService(repository.NewAlertRepository(), nil)

	alert, err := svc.CreateAlert(validAlertRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, alert.ID)
	assert.True(t, alert.Active)
	assert.False(t, alert.CreatedAt.IsZero())

	got, err := svc.GetAlertsByEmail("a@b.com")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, alert.ID, got[0].ID)
}

func TestCreateAlert_Validation(t *testing.T) {
	svc := NewAlertService(repository.NewAlertRepository(), nil)

	cases := []struct {
		name   string
		mutate func(*models.CreatePriceAlertRequest)
		field  string
	}{
		{"missing origin", func(r *models.CreatePriceAlertRequest) { r.Origin = "" }, "origin"},
		{"long destination", func(r *models.CreatePriceAlertRequest) { r.Destination = "BOMB" }, "destination"},
		{"bad date", func(r *models.CreatePriceAlertRequest) { r.DepartureDate = "01/06/2024" }, "departureDate"},
		{"zero target", func(r *models.CreatePriceAlertRequest) { r.TargetPrice = 0 }, "targetPrice"},
		{"negative target", func(r *models.CreatePriceAlertRequest) { r.TargetPrice = -100 }, "targetPrice"},
		{"missing email", func(r *models.CreatePriceAlertRequest) { r.Email = "" }, "email"},
		{"malformed email", func(r *models.CreatePriceAlertRequest) { r.Email = "not-an-email" }, "email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validAlertRequest()
			tc.mutate(&req)

			_, err := svc.CreateAlert(req)
			require.ErrorIs(t, err, ErrInvalidInput)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tc.field, verr.Fields[0].Field)
		})
	}
}

func TestGetAlertsByEmail_RequiresEmail(t *testing.T) {
	svc := NewAlertService(repository.NewAlertRepository(), nil)

	_, err := svc.GetAlertsByEmail("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeactivateAlert(t *testing.T) {
	repo := repository.NewAlertRepository()
	svc := NewAlertService(repo, nil)

	alert, err := svc.CreateAlert(validAlertRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateAlert(alert.ID))
	// Idempotent: the second delete is a success without effect.
	require.NoError(t, svc.DeactivateAlert(alert.ID))

	got, err := svc.GetAlertsByEmail("a@b.com")
	require.NoError(t, err)
	assert.Empty(t, got, "deactivated alert must not reappear")

	assert.ErrorIs(t, svc.DeactivateAlert(42), repository.ErrNotFound)
}
