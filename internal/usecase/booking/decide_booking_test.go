package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zugflow/zugflow-api/internal/audit"
	"github.com/zugflow/zugflow-api/internal/domain/schedule"
	"github.com/zugflow/zugflow-api/internal/httperr"
	"github.com/zugflow/zugflow-api/internal/models"
)

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func decideFixture() (*fakeRepo, models.TeamMember, models.Service, models.OnlineBooking) {
	repo := newFakeRepo()
	repo.addSalon(models.Salon{ID: 1, Slug: "zugflow-test", Timezone: "Europe/Rome"})

	member := repo.addMember(models.TeamMember{SalonID: 1, Name: "Anna", Active: true})
	service := repo.addService(models.Service{
		SalonID:     1,
		Name:        "Piega",
		DurationMin: 45,
		Price:       35,
		Active:      true,
	})

	booking := repo.addBooking(models.OnlineBooking{
		Reference:     "ref-0001",
		SalonID:       1,
		TeamMemberID:  &member.ID,
		ServiceID:     service.ID,
		CustomerName:  "Giulia Rossi",
		CustomerPhone: "3331234567",
		Date:          testDate,
		StartTime:     "10:00",
		EndTime:       "10:45",
		Status:        string(schedule.BookingPending),
	})

	return repo, member, service, booking
}

func TestApproveBooking_CreatesAppointment(t *testing.T) {
	repo, member, service, booking := decideFixture()
	uc := NewApproveBooking(repo, testDispatcher())

	ap, err := uc.Execute(context.Background(), ApproveBookingInput{
		SalonID:   1,
		UserID:    7,
		BookingID: booking.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, ap)

	assert.Equal(t, member.ID, ap.TeamMemberID)
	assert.Equal(t, service.ID, ap.ServiceID)
	assert.Equal(t, testDate, ap.Date)
	assert.Equal(t, "10:00", ap.StartTime)
	assert.Equal(t, "10:45", ap.EndTime)
	assert.Equal(t, "Giulia Rossi", ap.CustomerName)
	assert.Equal(t, string(schedule.StatusBooked), ap.Status)

	stored, err := repo.GetBooking(context.Background(), 1, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, string(schedule.BookingApproved), stored.Status)

	require.Len(t, repo.appointments, 1)
}

func TestApproveBooking_ConfirmedIsStillDecidable(t *testing.T) {
	repo, _, _, booking := decideFixture()
	booking.Status = string(schedule.BookingConfirmed)
	require.NoError(t, repo.UpdateBooking(context.Background(), &booking))

	uc := NewApproveBooking(repo, testDispatcher())
	_, err := uc.Execute(context.Background(), ApproveBookingInput{
		SalonID:   1,
		BookingID: booking.ID,
	})
	require.NoError(t, err)

	stored, err := repo.GetBooking(context.Background(), 1, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, string(schedule.BookingApproved), stored.Status)
}

func TestApproveBooking_AlreadyDecided(t *testing.T) {
	repo, _, _, booking := decideFixture()
	booking.Status = string(schedule.BookingApproved)
	require.NoError(t, repo.UpdateBooking(context.Background(), &booking))

	uc := NewApproveBooking(repo, testDispatcher())
	_, err := uc.Execute(context.Background(), ApproveBookingInput{
		SalonID:   1,
		BookingID: booking.ID,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Empty(t, repo.appointments)
}

func TestApproveBooking_NotFound(t *testing.T) {
	repo, _, _, _ := decideFixture()

	uc := NewApproveBooking(repo, testDispatcher())
	_, err := uc.Execute(context.Background(), ApproveBookingInput{
		SalonID:   1,
		BookingID: 999,
	})
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestApproveBooking_TimeConflict(t *testing.T) {
	repo, member, service, booking := decideFixture()

	repo.addAppointment(models.Appointment{
		SalonID:      1,
		TeamMemberID: member.ID,
		ServiceID:    service.ID,
		Date:         testDate,
		StartTime:    "09:30",
		EndTime:      "10:30",
		Status:       string(schedule.StatusBooked),
	})

	uc := NewApproveBooking(repo, testDispatcher())
	_, err := uc.Execute(context.Background(), ApproveBookingInput{
		SalonID:   1,
		BookingID: booking.ID,
	})
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	// La prenotazione resta in attesa, nessun nuovo appuntamento
	stored, gerr := repo.GetBooking(context.Background(), 1, booking.ID)
	require.NoError(t, gerr)
	assert.Equal(t, string(schedule.BookingPending), stored.Status)
	assert.Len(t, repo.appointments, 1)
}

func TestApproveBooking_AssignsMemberOnTheFly(t *testing.T) {
	repo, member, service, _ := decideFixture()

	unassigned := repo.addBooking(models.OnlineBooking{
		Reference:    "ref-0002",
		SalonID:      1,
		ServiceID:    service.ID,
		CustomerName: "Marco Bianchi",
		Date:         testDate,
		StartTime:    "14:00",
		EndTime:      "14:45",
		Status:       string(schedule.BookingPending),
	})

	uc := NewApproveBooking(repo, testDispatcher())

	// Senza membro indicato l'approvazione non può procedere
	_, err := uc.Execute(context.Background(), ApproveBookingInput{
		SalonID:   1,
		BookingID: unassigned.ID,
	})
	assert.True(t, httperr.IsBusiness(err, "team_member_required"))

	ap, err := uc.Execute(context.Background(), ApproveBookingInput{
		SalonID:      1,
		BookingID:    unassigned.ID,
		TeamMemberID: &member.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, member.ID, ap.TeamMemberID)

	stored, err := repo.GetBooking(context.Background(), 1, unassigned.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.TeamMemberID)
	assert.Equal(t, member.ID, *stored.TeamMemberID)
}

func TestApproveBooking_RollsBackWhenInsertFails(t *testing.T) {
	repo, _, _, booking := decideFixture()
	repo.failCreateAppointment = true

	uc := NewApproveBooking(repo, testDispatcher())
	_, err := uc.Execute(context.Background(), ApproveBookingInput{
		SalonID:   1,
		BookingID: booking.ID,
	})
	require.Error(t, err)

	// Scrittura atomica: fallito l'insert, anche lo stato torna indietro
	stored, gerr := repo.GetBooking(context.Background(), 1, booking.ID)
	require.NoError(t, gerr)
	assert.Equal(t, string(schedule.BookingPending), stored.Status)
	assert.Empty(t, repo.appointments)
}

func TestRejectBooking(t *testing.T) {
	repo, _, _, booking := decideFixture()
	uc := NewRejectBooking(repo, testDispatcher())

	rejected, err := uc.Execute(context.Background(), 1, 7, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, string(schedule.BookingRejected), rejected.Status)

	// Il rifiuto non crea appuntamenti
	assert.Empty(t, repo.appointments)

	stored, err := repo.GetBooking(context.Background(), 1, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, string(schedule.BookingRejected), stored.Status)
}

func TestRejectBooking_AlreadyDecided(t *testing.T) {
	repo, _, _, booking := decideFixture()
	booking.Status = string(schedule.BookingApproved)
	require.NoError(t, repo.UpdateBooking(context.Background(), &booking))

	uc := NewRejectBooking(repo, testDispatcher())
	_, err := uc.Execute(context.Background(), 1, 7, booking.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestRejectBooking_NotFound(t *testing.T) {
	repo, _, _, _ := decideFixture()

	uc := NewRejectBooking(repo, testDispatcher())
	_, err := uc.Execute(context.Background(), 1, 7, 999)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}
