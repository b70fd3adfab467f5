package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/zugflow/zugflow-api/internal/audit"
	"github.com/zugflow/zugflow-api/internal/domain/schedule"
	"github.com/zugflow/zugflow-api/internal/httperr"
	"github.com/zugflow/zugflow-api/internal/models"
	"github.com/zugflow/zugflow-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateOnlineBookingInput struct {
	SalonID uint

	ServiceID    uint
	TeamMemberID *uint

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

type CreateOnlineBooking struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewCreateOnlineBooking(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *CreateOnlineBooking {
	return &CreateOnlineBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateOnlineBooking) Execute(
	ctx context.Context,
	in CreateOnlineBookingInput,
) (*models.OnlineBooking, error) {

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

	minAdvance := salon.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 60
	}

	now := timezone.NowIn(salon.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
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

	b := &models.OnlineBooking{
		Reference:     uuid.NewString(),
		SalonID:       in.SalonID,
		TeamMemberID:  in.TeamMemberID,
		ServiceID:     service.ID,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		Date:          in.Date,
		StartTime:     in.Time,
		EndTime:       end,
		Status:        string(schedule.BookingPending),
		Notes:         in.Notes,
	}

	err = uc.repo.Transact(ctx, func(tx schedule.Repository) error {

		if in.TeamMemberID != nil {
			member, err := tx.GetTeamMember(ctx, in.SalonID, *in.TeamMemberID)
			if err != nil {
				return httperr.ErrBusiness("team_member_not_found")
			}

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
		}

		return tx.CreateBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		Action:   "booking_received",
		Entity:   "online_booking",
		EntityID: &b.ID,
	})

	return b, nil
}
