package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zugflow/zugflow-api/internal/domain/schedule"
	"github.com/zugflow/zugflow-api/internal/httperr"
	"github.com/zugflow/zugflow-api/internal/models"
)

func statusFixture(status schedule.AppointmentStatus) (*fakeRepo, models.Appointment) {
	repo := newFakeRepo()
	repo.addSalon(models.Salon{ID: 1, Slug: "zugflow-test", Timezone: "Europe/Rome"})

	ap := repo.addAppointment(models.Appointment{
		SalonID:      1,
		TeamMemberID: 1,
		CustomerName: "Giulia Rossi",
		Date:         testDate,
		StartTime:    "10:00",
		EndTime:      "10:30",
		Status:       string(status),
	})

	return repo, ap
}

func TestCancelAppointment(t *testing.T) {
	repo, ap := statusFixture(schedule.StatusBooked)
	uc := NewCancelAppointment(repo, testDispatcher())

	got, err := uc.Execute(context.Background(), 1, 7, ap.ID)
	require.NoError(t, err)

	assert.Equal(t, string(schedule.StatusCancelled), got.Status)
	require.NotNil(t, got.CancelledAt)

	stored, err := repo.GetAppointment(context.Background(), 1, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusCancelled), stored.Status)
}

func TestCancelAppointment_OnlyFromBooked(t *testing.T) {
	repo, ap := statusFixture(schedule.StatusCompleted)
	uc := NewCancelAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 1, 7, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCompleteAppointment(t *testing.T) {
	repo, ap := statusFixture(schedule.StatusBooked)
	uc := NewCompleteAppointment(repo, testDispatcher())

	got, err := uc.Execute(context.Background(), 1, 7, ap.ID)
	require.NoError(t, err)

	assert.Equal(t, string(schedule.StatusCompleted), got.Status)
	require.NotNil(t, got.CompletedAt)
}

func TestDeleteAppointment_IsLogical(t *testing.T) {
	repo, ap := statusFixture(schedule.StatusCancelled)
	uc := NewDeleteAppointment(repo, testDispatcher())

	got, err := uc.Execute(context.Background(), 1, 7, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusDeleted), got.Status)

	// Il record resta in tabella
	stored, err := repo.GetAppointment(context.Background(), 1, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(schedule.StatusDeleted), stored.Status)

	// Una seconda eliminazione è respinta
	_, err = uc.Execute(context.Background(), 1, 7, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestAppointmentStatus_NotFound(t *testing.T) {
	repo, _ := statusFixture(schedule.StatusBooked)

	_, err := NewCancelAppointment(repo, testDispatcher()).Execute(context.Background(), 1, 7, 999)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))

	_, err = NewCompleteAppointment(repo, testDispatcher()).Execute(context.Background(), 1, 7, 999)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
