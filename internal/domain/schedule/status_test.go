package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentOccupiesTime(t *testing.T) {
	assert.True(t, AppointmentOccupiesTime(StatusBooked))

	assert.False(t, AppointmentOccupiesTime(StatusCompleted))
	assert.False(t, AppointmentOccupiesTime(StatusCancelled))
	assert.False(t, AppointmentOccupiesTime(StatusDeleted))
}

func TestBookingOccupiesTime(t *testing.T) {
	assert.True(t, BookingOccupiesTime(BookingPending))
	assert.True(t, BookingOccupiesTime(BookingConfirmed))

	assert.False(t, BookingOccupiesTime(BookingApproved))
	assert.False(t, BookingOccupiesTime(BookingRejected))
}

func TestCanDecideBooking(t *testing.T) {
	assert.NoError(t, CanDecideBooking(BookingPending))
	assert.NoError(t, CanDecideBooking(BookingConfirmed))

	assert.Error(t, CanDecideBooking(BookingApproved))
	assert.Error(t, CanDecideBooking(BookingRejected))
}

func TestAppointmentTransitions(t *testing.T) {
	assert.NoError(t, CanCancelAppointment(StatusBooked))
	assert.Error(t, CanCancelAppointment(StatusCompleted))
	assert.Error(t, CanCancelAppointment(StatusCancelled))

	assert.NoError(t, CanCompleteAppointment(StatusBooked))
	assert.Error(t, CanCompleteAppointment(StatusCancelled))

	assert.NoError(t, CanDeleteAppointment(StatusCompleted))
	assert.Error(t, CanDeleteAppointment(StatusDeleted))
}
