package schedule

import (
	"time"

	"github.com/zugflow/zugflow-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func CancelAppointment(ap *models.Appointment, now time.Time) error {
	if err := CanCancelAppointment(AppointmentStatus(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func CompleteAppointment(ap *models.Appointment, now time.Time) error {
	if err := CanCompleteAppointment(AppointmentStatus(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func DeleteAppointment(ap *models.Appointment) error {
	if err := CanDeleteAppointment(AppointmentStatus(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusDeleted)
	return nil
}

func ApproveBooking(b *models.OnlineBooking) error {
	if err := CanDecideBooking(BookingStatus(b.Status)); err != nil {
		return err
	}

	b.Status = string(BookingApproved)
	return nil
}

func RejectBooking(b *models.OnlineBooking) error {
	if err := CanDecideBooking(BookingStatus(b.Status)); err != nil {
		return err
	}

	b.Status = string(BookingRejected)
	return nil
}
