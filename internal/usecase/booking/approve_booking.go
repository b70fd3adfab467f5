package booking

import (
	"context"

	"github.com/zugflow/zugflow-api/internal/audit"
	"github.com/zugflow/zugflow-api/internal/domain/schedule"
	"github.com/zugflow/zugflow-api/internal/httperr"
	"github.com/zugflow/zugflow-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ApproveBookingInput struct {
	SalonID   uint
	UserID    uint
	BookingID uint

	// Assegnazione al volo per prenotazioni arrivate senza membro
	TeamMemberID *uint
}

// ======================================================
// USE CASE
// ======================================================

type ApproveBooking struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewApproveBooking(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *ApproveBooking {
	return &ApproveBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute marca la prenotazione come approvata e crea l'appuntamento
// "Prenotato" corrispondente nella stessa transazione: se una delle
// due scritture fallisce non resta nulla di parziale.
func (uc *ApproveBooking) Execute(
	ctx context.Context,
	in ApproveBookingInput,
) (*models.Appointment, error) {

	var created *models.Appointment

	err := uc.repo.Transact(ctx, func(tx schedule.Repository) error {

		b, err := tx.GetBooking(ctx, in.SalonID, in.BookingID)
		if err != nil {
			return httperr.ErrBusiness("booking_not_found")
		}

		if err := schedule.CanDecideBooking(schedule.BookingStatus(b.Status)); err != nil {
			return err
		}

		if in.TeamMemberID != nil {
			b.TeamMemberID = in.TeamMemberID
		}
		if b.TeamMemberID == nil {
			return httperr.ErrBusiness("team_member_required")
		}

		member, err := tx.GetTeamMember(ctx, in.SalonID, *b.TeamMemberID)
		if err != nil {
			return httperr.ErrBusiness("team_member_not_found")
		}

		service, err := tx.GetService(ctx, in.SalonID, b.ServiceID)
		if err != nil {
			return httperr.ErrBusiness("service_not_found")
		}

		end, err := schedule.ComputeEndTime(b.StartTime, service.DurationMin)
		if err != nil {
			return err
		}

		taken, err := slotTaken(
			ctx, tx,
			in.SalonID, member.ID,
			b.Date, b.StartTime, end,
			b.ID,
		)
		if err != nil {
			return err
		}
		if taken {
			return httperr.ErrBusiness("time_conflict")
		}

		if err := schedule.ApproveBooking(b); err != nil {
			return err
		}
		if err := tx.UpdateBooking(ctx, b); err != nil {
			return err
		}

		ap := &models.Appointment{
			SalonID:       b.SalonID,
			TeamMemberID:  member.ID,
			ServiceID:     b.ServiceID,
			CustomerName:  b.CustomerName,
			CustomerPhone: b.CustomerPhone,
			CustomerEmail: b.CustomerEmail,
			Date:          b.Date,
			StartTime:     b.StartTime,
			EndTime:       end,
			Status:        string(schedule.InitialAppointmentStatus()),
			Notes:         b.Notes,
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		created = ap
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.UserID,
		Action:   "booking_approved",
		Entity:   "online_booking",
		EntityID: &in.BookingID,
	})

	return created, nil
}
