package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zugflow/zugflow-api/internal/domain/schedule"
	"github.com/zugflow/zugflow-api/internal/models"
)

func TestComputeDailyStats(t *testing.T) {
	repo := newFakeRepo()
	repo.addSalon(models.Salon{ID: 1, Slug: "zugflow-test"})

	taglio := repo.addService(models.Service{SalonID: 1, Name: "Taglio", DurationMin: 30, Price: 20, Active: true})
	colore := repo.addService(models.Service{SalonID: 1, Name: "Colore", DurationMin: 90, Price: 60, Active: true})

	add := func(status schedule.AppointmentStatus, svc models.Service) {
		repo.addAppointment(models.Appointment{
			SalonID:   1,
			ServiceID: svc.ID,
			Service:   svc,
			Date:      testDate,
			StartTime: "10:00",
			EndTime:   "11:00",
			Status:    string(status),
		})
	}

	add(schedule.StatusBooked, taglio)
	add(schedule.StatusBooked, taglio)
	add(schedule.StatusCompleted, taglio)
	add(schedule.StatusCompleted, colore)
	add(schedule.StatusCancelled, taglio)
	add(schedule.StatusDeleted, taglio)

	uc := NewComputeDailyStats(repo)
	stats, err := uc.Execute(context.Background(), 1, testDate)
	require.NoError(t, err)

	assert.Equal(t, testDate, stats.Date)
	assert.Equal(t, 5, stats.Total) // gli eliminati non contano
	assert.Equal(t, 2, stats.Booked)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 1, stats.Cancelled)

	// Il fatturato considera solo i completati
	assert.Equal(t, 80.0, stats.Revenue)
	assert.Equal(t, 120, stats.ServedMins)
}

func TestComputeDailyStats_EmptyDay(t *testing.T) {
	repo := newFakeRepo()
	repo.addSalon(models.Salon{ID: 1, Slug: "zugflow-test"})

	uc := NewComputeDailyStats(repo)
	stats, err := uc.Execute(context.Background(), 1, testDate)
	require.NoError(t, err)

	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.Revenue)
}
