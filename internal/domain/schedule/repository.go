package schedule

import (
	"context"

	"github.com/zugflow/zugflow-api/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetSalonBySlug(
		ctx context.Context,
		slug string,
	) (*models.Salon, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		salonID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Team --------
	ListActiveTeamMembers(
		ctx context.Context,
		salonID uint,
	) ([]models.TeamMember, error)

	GetTeamMember(
		ctx context.Context,
		salonID uint,
		memberID uint,
	) (*models.TeamMember, error)

	// -------- Availability reads --------
	ListOccupyingAppointments(
		ctx context.Context,
		salonID uint,
		date string,
	) ([]models.Appointment, error)

	ListOccupyingBookings(
		ctx context.Context,
		salonID uint,
		date string,
	) ([]models.OnlineBooking, error)

	ListApprovedTimeOff(
		ctx context.Context,
		salonID uint,
		date string,
	) ([]models.TimeOff, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		salonID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsByDate(
		ctx context.Context,
		salonID uint,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsByMonth(
		ctx context.Context,
		salonID uint,
		year int,
		month int,
	) ([]models.Appointment, error)

	// -------- Online booking --------
	CreateBooking(
		ctx context.Context,
		b *models.OnlineBooking,
	) error

	GetBooking(
		ctx context.Context,
		salonID uint,
		bookingID uint,
	) (*models.OnlineBooking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.OnlineBooking,
	) error

	ListBookings(
		ctx context.Context,
		salonID uint,
		status string,
	) ([]models.OnlineBooking, error)

	// -------- Transazioni --------
	// Transact esegue fn in una singola transazione: il repository
	// passato a fn vede e scrive solo dentro quella transazione.
	Transact(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
