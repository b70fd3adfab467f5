package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zugflow/zugflow-api/internal/domain/schedule"
	"github.com/zugflow/zugflow-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB

	// Ogni chiamata verso Postgres è limitata da questo timeout:
	// allo scadere la query torna come errore di store.
	timeout time.Duration
}

func NewBookingGormRepository(db *gorm.DB, timeout time.Duration) *BookingGormRepository {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &BookingGormRepository{db: db, timeout: timeout}
}

func (r *BookingGormRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *BookingGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *BookingGormRepository) GetSalonBySlug(
	ctx context.Context,
	slug string,
) (*models.Salon, error) {

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("slug = ? AND active = true", slug).
		First(&salon).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	salonID uint,
	serviceID uint,
) (*models.Service, error) {

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Team
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveTeamMembers(
	ctx context.Context,
	salonID uint,
) ([]models.TeamMember, error) {

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var members []models.TeamMember
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND active = true", salonID).
		Order("id ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *BookingGormRepository) GetTeamMember(
	ctx context.Context,
	salonID uint,
	memberID uint,
) (*models.TeamMember, error) {

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var member models.TeamMember
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", memberID, salonID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// --------------------------------------------------
// Availability reads
// --------------------------------------------------

func (r *BookingGormRepository) ListOccupyingAppointments(
	ctx context.Context,
	salonID uint,
	date string,
) ([]models.Appointment, error) {

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "team_member_id", "start_time", "end_time").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"salon_id = ? AND date = ? AND status = ?",
			salonID, date, string(schedule.StatusBooked),
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *BookingGormRepository) ListOccupyingBookings(
	ctx context.Context,
	salonID uint,
	date string,
) ([]models.OnlineBooking, error) {

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var bookings []models.OnlineBooking
	if err := r.db.WithContext(ctx).
		Select("id", "team_member_id", "start_time", "end_time").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"salon_id = ? AND date = ? AND status IN ?",
			salonID, date,
			[]string{string(schedule.BookingPending), string(schedule.BookingConfirmed)},
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListApprovedTimeOff(
	ctx context.Context,
	salonID uint,
	date string,
) ([]models.TimeOff, error) {

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var timeOff []models.TimeOff
	if err := r.db.WithContext(ctx).
		Where(
			"salon_id = ? AND status = 'approved' AND start_date <= ? AND end_date >= ?",
			salonID, date, date,
		).
		Find(&timeOff).Error; err != nil {
		return nil, err
	}
	return timeOff, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	salonID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", appointmentID, salonID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) ListAppointmentsByDate(
	ctx context.Context,
	salonID uint,
	date string,
) ([]models.Appointment, error) {

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("TeamMember").
		Preload("Service").
		Where("salon_id = ? AND date = ?", salonID, date).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *BookingGormRepository) ListAppointmentsByMonth(
	ctx context.Context,
	salonID uint,
	year int,
	month int,
) ([]models.Appointment, error) {

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	prefix := fmt.Sprintf("%04d-%02d-%%", year, month)

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("TeamMember").
		Preload("Service").
		Where("salon_id = ? AND date LIKE ?", salonID, prefix).
		Order("date ASC, start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Online booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.OnlineBooking,
) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	salonID uint,
	bookingID uint,
) (*models.OnlineBooking, error) {

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b models.OnlineBooking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", bookingID, salonID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.OnlineBooking,
) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	salonID uint,
	status string,
) ([]models.OnlineBooking, error) {

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	q := r.db.WithContext(ctx).
		Preload("TeamMember").
		Preload("Service").
		Where("salon_id = ?", salonID)

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var bookings []models.OnlineBooking
	if err := q.
		Order("date ASC, start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Transazioni
// --------------------------------------------------

func (r *BookingGormRepository) Transact(
	ctx context.Context,
	fn func(schedule.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx, timeout: r.timeout})
	})
}

// Compile-time check
var _ schedule.Repository = (*BookingGormRepository)(nil)
