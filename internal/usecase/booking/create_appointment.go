package booking

import (
	"context"
	"time"

	"github.com/zugflow/zugflow-api/internal/audit"
	"github.com/zugflow/zugflow-api/internal/domain/schedule"
	"github.com/zugflow/zugflow-api/internal/httperr"
	"github.com/zugflow/zugflow-api/internal/models"
	"github.com/zugflow/zugflow-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	SalonID uint
	UserID  uint

	TeamMemberID uint
	ServiceID    uint

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(salon.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// Dal gestionale si può inserire anche a ridosso dell'orario,
	// ma mai nel passato
	now := timezone.NowIn(salon.Timezone)
	if start.Before(now) {
		return nil, httperr.ErrBusiness("in_the_past")
	}

	member, err := uc.repo.GetTeamMember(ctx, in.SalonID, in.TeamMemberID)
	if err != nil {
		return nil, httperr.ErrBusiness("team_member_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	end, err := schedule.ComputeEndTime(in.Time, service.DurationMin)
	if err != nil {
		return nil, err
	}

	if in.Time < salon.OpeningTime || end > salon.ClosingTime {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	ap := &models.Appointment{
		SalonID:       in.SalonID,
		TeamMemberID:  member.ID,
		ServiceID:     service.ID,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		Date:          in.Date,
		StartTime:     in.Time,
		EndTime:       end,
		Status:        string(schedule.InitialAppointmentStatus()),
		Notes:         in.Notes,
	}

	err = uc.repo.Transact(ctx, func(tx schedule.Repository) error {

		taken, err := slotTaken(
			ctx, tx,
			in.SalonID, member.ID,
			in.Date, in.Time, end,
			0,
		)
		if err != nil {
			return err
		}
		if taken {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.CreateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
