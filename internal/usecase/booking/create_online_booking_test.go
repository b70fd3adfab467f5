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

// Data abbondantemente nel futuro per non dipendere dall'orologio.
const futureDate = "2030-05-10"

func createBookingFixture() (*fakeRepo, models.TeamMember, models.Service) {
	repo := newFakeRepo()
	repo.addSalon(models.Salon{
		ID:          1,
		Slug:        "zugflow-test",
		Timezone:    "Europe/Rome",
		OpeningTime: "09:00",
		ClosingTime: "19:00",
	})

	member := repo.addMember(models.TeamMember{SalonID: 1, Name: "Anna", Active: true})
	service := repo.addService(models.Service{
		SalonID:     1,
		Name:        "Colore",
		DurationMin: 90,
		Active:      true,
	})

	return repo, member, service
}

func TestCreateOnlineBooking(t *testing.T) {
	repo, _, service := createBookingFixture()
	uc := NewCreateOnlineBooking(repo, testDispatcher())

	b, err := uc.Execute(context.Background(), CreateOnlineBookingInput{
		SalonID:      1,
		ServiceID:    service.ID,
		CustomerName: "Giulia Rossi",
		Date:         futureDate,
		Time:         "10:00",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, b.Reference)
	assert.Equal(t, "10:00", b.StartTime)
	assert.Equal(t, "11:30", b.EndTime)
	assert.Equal(t, string(schedule.BookingPending), b.Status)
	assert.Nil(t, b.TeamMemberID)

	require.Len(t, repo.bookings, 1)
}

func TestCreateOnlineBooking_TooSoon(t *testing.T) {
	repo, _, service := createBookingFixture()
	uc := NewCreateOnlineBooking(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateOnlineBookingInput{
		SalonID:      1,
		ServiceID:    service.ID,
		CustomerName: "Giulia Rossi",
		Date:         "2020-01-01",
		Time:         "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "too_soon"))
	assert.Empty(t, repo.bookings)
}

func TestCreateOnlineBooking_OutsideWorkingHours(t *testing.T) {
	repo, _, service := createBookingFixture()
	uc := NewCreateOnlineBooking(repo, testDispatcher())

	// Prima dell'apertura
	_, err := uc.Execute(context.Background(), CreateOnlineBookingInput{
		SalonID:      1,
		ServiceID:    service.ID,
		CustomerName: "Giulia Rossi",
		Date:         futureDate,
		Time:         "08:00",
	})
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))

	// Inizia in orario ma finisce dopo la chiusura
	_, err = uc.Execute(context.Background(), CreateOnlineBookingInput{
		SalonID:      1,
		ServiceID:    service.ID,
		CustomerName: "Giulia Rossi",
		Date:         futureDate,
		Time:         "18:00",
	})
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
}

func TestCreateOnlineBooking_InvalidDateOrTime(t *testing.T) {
	repo, _, service := createBookingFixture()
	uc := NewCreateOnlineBooking(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateOnlineBookingInput{
		SalonID:      1,
		ServiceID:    service.ID,
		CustomerName: "Giulia Rossi",
		Date:         "10/05/2030",
		Time:         "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestCreateOnlineBooking_MemberConflict(t *testing.T) {
	repo, member, service := createBookingFixture()
	uc := NewCreateOnlineBooking(repo, testDispatcher())

	repo.addAppointment(models.Appointment{
		SalonID:      1,
		TeamMemberID: member.ID,
		Date:         futureDate,
		StartTime:    "10:00",
		EndTime:      "11:00",
		Status:       string(schedule.StatusBooked),
	})

	_, err := uc.Execute(context.Background(), CreateOnlineBookingInput{
		SalonID:      1,
		ServiceID:    service.ID,
		TeamMemberID: &member.ID,
		CustomerName: "Giulia Rossi",
		Date:         futureDate,
		Time:         "10:30",
	})
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
	assert.Empty(t, repo.bookings)
}
