package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/zugflow/zugflow-api/internal/domain/schedule"
	"github.com/zugflow/zugflow-api/internal/models"
)

// fakeRepo è un'implementazione in memoria di schedule.Repository per i
// test degli use case. Transact scatta uno snapshot dello stato e lo
// ripristina se fn fallisce, imitando il rollback del database.
type fakeRepo struct {
	salons   map[uint]models.Salon
	services map[uint]models.Service
	members  []models.TeamMember

	appointments []models.Appointment
	bookings     []models.OnlineBooking
	timeOff      []models.TimeOff

	nextID uint

	// Iniezione di guasti per i test di atomicità
	failCreateAppointment bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salons:   make(map[uint]models.Salon),
		services: make(map[uint]models.Service),
		nextID:   1,
	}
}

func (f *fakeRepo) id() uint {
	id := f.nextID
	f.nextID++
	return id
}

var errNotFound = errors.New("record not found")

// -------- Salon --------

func (f *fakeRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	s, ok := f.salons[id]
	if !ok {
		return nil, errNotFound
	}
	return &s, nil
}

func (f *fakeRepo) GetSalonBySlug(_ context.Context, slug string) (*models.Salon, error) {
	for _, s := range f.salons {
		if s.Slug == slug {
			out := s
			return &out, nil
		}
	}
	return nil, errNotFound
}

// -------- Service --------

func (f *fakeRepo) GetService(_ context.Context, salonID, serviceID uint) (*models.Service, error) {
	s, ok := f.services[serviceID]
	if !ok || s.SalonID != salonID {
		return nil, errNotFound
	}
	return &s, nil
}

// -------- Team --------

func (f *fakeRepo) ListActiveTeamMembers(_ context.Context, salonID uint) ([]models.TeamMember, error) {
	var out []models.TeamMember
	for _, m := range f.members {
		if m.SalonID == salonID && m.Active {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetTeamMember(_ context.Context, salonID, memberID uint) (*models.TeamMember, error) {
	for _, m := range f.members {
		if m.ID == memberID && m.SalonID == salonID {
			out := m
			return &out, nil
		}
	}
	return nil, errNotFound
}

// -------- Availability reads --------

func (f *fakeRepo) ListOccupyingAppointments(_ context.Context, salonID uint, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.SalonID != salonID || ap.Date != date {
			continue
		}
		if schedule.AppointmentOccupiesTime(schedule.AppointmentStatus(ap.Status)) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListOccupyingBookings(_ context.Context, salonID uint, date string) ([]models.OnlineBooking, error) {
	var out []models.OnlineBooking
	for _, b := range f.bookings {
		if b.SalonID != salonID || b.Date != date {
			continue
		}
		if schedule.BookingOccupiesTime(schedule.BookingStatus(b.Status)) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListApprovedTimeOff(_ context.Context, salonID uint, date string) ([]models.TimeOff, error) {
	var out []models.TimeOff
	for _, off := range f.timeOff {
		if off.SalonID != salonID || off.Status != "approved" {
			continue
		}
		if off.StartDate <= date && date <= off.EndDate {
			out = append(out, off)
		}
	}
	return out, nil
}

// -------- Appointment --------

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.failCreateAppointment {
		return errors.New("insert failed")
	}
	ap.ID = f.id()
	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, salonID, appointmentID uint) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == appointmentID && ap.SalonID == salonID {
			out := ap
			return &out, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
			return nil
		}
	}
	return errNotFound
}

func (f *fakeRepo) ListAppointmentsByDate(_ context.Context, salonID uint, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.SalonID == salonID && ap.Date == date {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsByMonth(_ context.Context, salonID uint, year, month int) ([]models.Appointment, error) {
	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.SalonID == salonID && len(ap.Date) >= len(prefix) && ap.Date[:len(prefix)] == prefix {
			out = append(out, ap)
		}
	}
	return out, nil
}

// -------- Online booking --------

func (f *fakeRepo) CreateBooking(_ context.Context, b *models.OnlineBooking) error {
	b.ID = f.id()
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeRepo) GetBooking(_ context.Context, salonID, bookingID uint) (*models.OnlineBooking, error) {
	for _, b := range f.bookings {
		if b.ID == bookingID && b.SalonID == salonID {
			out := b
			return &out, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) UpdateBooking(_ context.Context, b *models.OnlineBooking) error {
	for i := range f.bookings {
		if f.bookings[i].ID == b.ID {
			f.bookings[i] = *b
			return nil
		}
	}
	return errNotFound
}

func (f *fakeRepo) ListBookings(_ context.Context, salonID uint, status string) ([]models.OnlineBooking, error) {
	var out []models.OnlineBooking
	for _, b := range f.bookings {
		if b.SalonID != salonID {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// -------- Transazioni --------

func (f *fakeRepo) Transact(_ context.Context, fn func(schedule.Repository) error) error {
	snapAppointments := append([]models.Appointment(nil), f.appointments...)
	snapBookings := append([]models.OnlineBooking(nil), f.bookings...)
	snapTimeOff := append([]models.TimeOff(nil), f.timeOff...)
	snapNextID := f.nextID

	if err := fn(f); err != nil {
		f.appointments = snapAppointments
		f.bookings = snapBookings
		f.timeOff = snapTimeOff
		f.nextID = snapNextID
		return err
	}
	return nil
}

var _ schedule.Repository = (*fakeRepo)(nil)

// -------- Builders --------

func (f *fakeRepo) addSalon(s models.Salon) models.Salon {
	if s.ID == 0 {
		s.ID = f.id()
	}
	f.salons[s.ID] = s
	return s
}

func (f *fakeRepo) addService(s models.Service) models.Service {
	if s.ID == 0 {
		s.ID = f.id()
	}
	f.services[s.ID] = s
	return s
}

func (f *fakeRepo) addMember(m models.TeamMember) models.TeamMember {
	if m.ID == 0 {
		m.ID = f.id()
	}
	f.members = append(f.members, m)
	return m
}

func (f *fakeRepo) addAppointment(ap models.Appointment) models.Appointment {
	if ap.ID == 0 {
		ap.ID = f.id()
	}
	f.appointments = append(f.appointments, ap)
	return ap
}

func (f *fakeRepo) addBooking(b models.OnlineBooking) models.OnlineBooking {
	if b.ID == 0 {
		b.ID = f.id()
	}
	f.bookings = append(f.bookings, b)
	return b
}

func (f *fakeRepo) addTimeOff(off models.TimeOff) models.TimeOff {
	if off.ID == 0 {
		off.ID = f.id()
	}
	f.timeOff = append(f.timeOff, off)
	return off
}
