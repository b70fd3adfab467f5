package schedule

import "github.com/zugflow/zugflow-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "Prenotato"
	StatusCompleted AppointmentStatus = "Completato"
	StatusCancelled AppointmentStatus = "Annullato"
	StatusDeleted   AppointmentStatus = "Eliminato"
)

// Solo "Prenotato" occupa la fascia oraria del membro del team.
func AppointmentOccupiesTime(s AppointmentStatus) bool {
	return s == StatusBooked
}

func CanCancelAppointment(current AppointmentStatus) error {
	if current != StatusBooked {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCompleteAppointment(current AppointmentStatus) error {
	if current != StatusBooked {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// L'eliminazione è solo logica (status "Eliminato"), mai una DELETE.
func CanDeleteAppointment(current AppointmentStatus) error {
	if current == StatusDeleted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialAppointmentStatus() AppointmentStatus {
	return StatusBooked
}

// ===============================
// Online Booking Status
// ===============================

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingApproved  BookingStatus = "approved"
	BookingRejected  BookingStatus = "rejected"
)

// "pending" e "confirmed" occupano la fascia oraria in attesa della
// decisione del salone; "approved" e "rejected" sono stati terminali.
func BookingOccupiesTime(s BookingStatus) bool {
	return s == BookingPending || s == BookingConfirmed
}

// CanDecideBooking autorizza approve/reject: vale sia per "pending"
// che per "confirmed", mai per gli stati terminali.
func CanDecideBooking(current BookingStatus) error {
	if current != BookingPending && current != BookingConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
