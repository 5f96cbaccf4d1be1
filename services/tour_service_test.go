package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appfrabric/roilux/models"
)

func newTestTourService(t *testing.T) *TourService {
	t.Helper()
	return NewTourService(newTestDB(t), newTestConfig())
}

func TestSubmitTour(t *testing.T) {
	svc := newTestTourService(t)

	tour, confirmation, err := svc.SubmitTour(TourSubmission{
		Name:          "Jane Smith",
		Email:         "jane@example.com",
		PreferredDate: "2024-01-01",
		PreferredTime: "10:00",
		Message:       "Interested in the veneer line.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TourStatusPending, tour.Status)
	assert.Equal(t, "2024-01-01", tour.PreferredDate)
	assert.Equal(t, "10:00", tour.PreferredTime)
	assert.Equal(t, "Virtual tour request submitted successfully!", confirmation)
	require.NotNil(t, tour.UserID)
}

func TestTourStatusLifecycle(t *testing.T) {
	svc := newTestTourService(t)

	tour, _, err := svc.SubmitTour(TourSubmission{
		Name:          "Jane",
		Email:         "jane@example.com",
		PreferredDate: "2024-01-01",
		PreferredTime: "10:00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateTourStatus(tour.ID, models.TourStatusConfirmed))
	require.NoError(t, svc.UpdateTourStatus(tour.ID, models.TourStatusCompleted))

	var stored models.VirtualTour
	require.NoError(t, svc.DB.First(&stored, tour.ID).Error)
	assert.Equal(t, models.TourStatusCompleted, stored.Status)

	t.Run("invalid status", func(t *testing.T) {
		err := svc.UpdateTourStatus(tour.ID, models.TourStatus("rescheduled"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("archive then delete", func(t *testing.T) {
		require.NoError(t, svc.ArchiveTour(tour.ID))
		require.NoError(t, svc.DeleteTour(tour.ID))
		assert.ErrorIs(t, svc.DeleteTour(tour.ID), ErrNotFound)
	})
}
