package booking

import (
	"context"

	"github.com/zugflow/zugflow-api/internal/domain/schedule"
	"github.com/zugflow/zugflow-api/internal/httperr"
	"github.com/zugflow/zugflow-api/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

// ListAvailableTeamMembers è l'unico punto del sistema che decide
// chi è libero: ogni endpoint delega qui, nessuno reimplementa il
// calcolo delle sovrapposizioni.
type ListAvailableTeamMembers struct {
	repo schedule.Repository
}

func NewListAvailableTeamMembers(repo schedule.Repository) *ListAvailableTeamMembers {
	return &ListAvailableTeamMembers{repo: repo}
}

func (uc *ListAvailableTeamMembers) Execute(
	ctx context.Context,
	in schedule.AvailabilityInput,
) (*schedule.AvailabilityResult, error) {

	if in.SalonID == 0 || in.Date == "" || in.StartTime == "" {
		return nil, httperr.ErrBusiness("missing_params")
	}

	if !schedule.IsValidClock(in.StartTime) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	duration := 0
	if in.ServiceID != 0 {
		service, err := uc.repo.GetService(ctx, in.SalonID, in.ServiceID)
		if err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		duration = service.DurationMin

		if in.EndTime == "" {
			end, err := schedule.ComputeEndTime(in.StartTime, duration)
			if err != nil {
				return nil, err
			}
			in.EndTime = end
		}
	}

	if in.EndTime == "" {
		return nil, httperr.ErrBusiness("missing_params")
	}

	members, err := uc.repo.ListActiveTeamMembers(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	if in.TeamMemberID != 0 {
		filtered := members[:0]
		for _, m := range members {
			if m.ID == in.TeamMemberID {
				filtered = append(filtered, m)
			}
		}
		members = filtered
	}

	appointments, err := uc.repo.ListOccupyingAppointments(ctx, in.SalonID, in.Date)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListOccupyingBookings(ctx, in.SalonID, in.Date)
	if err != nil {
		return nil, err
	}

	timeOff, err := uc.repo.ListApprovedTimeOff(ctx, in.SalonID, in.Date)
	if err != nil {
		return nil, err
	}

	offByMember := make(map[uint][]models.TimeOff)
	for _, off := range timeOff {
		offByMember[off.TeamMemberID] = append(offByMember[off.TeamMemberID], off)
	}

	available := make([]models.TeamMember, 0, len(members))
	for _, m := range members {
		if memberIsFree(m.ID, in, appointments, bookings, offByMember[m.ID]) {
			available = append(available, m)
		}
	}

	return &schedule.AvailabilityResult{
		AvailableTeamMembers: available,
		TotalTeamMembers:     len(members),
		MembersWithTimeOff:   len(offByMember),
		RequestedTime:        in.StartTime,
		EndTime:              in.EndTime,
		ServiceDuration:      duration,
	}, nil
}

func memberIsFree(
	memberID uint,
	in schedule.AvailabilityInput,
	appointments []models.Appointment,
	bookings []models.OnlineBooking,
	timeOff []models.TimeOff,
) bool {

	for _, off := range timeOff {
		// Senza finestra oraria l'assenza copre l'intera giornata
		if off.StartTime == "" || off.EndTime == "" {
			return false
		}
		if schedule.Overlaps(in.StartTime, in.EndTime, off.StartTime, off.EndTime) {
			return false
		}
	}

	for _, ap := range appointments {
		if ap.TeamMemberID != memberID {
			continue
		}
		if schedule.Overlaps(in.StartTime, in.EndTime, ap.StartTime, ap.EndTime) {
			return false
		}
	}

	for _, b := range bookings {
		if b.TeamMemberID == nil || *b.TeamMemberID != memberID {
			continue
		}
		if schedule.Overlaps(in.StartTime, in.EndTime, b.StartTime, b.EndTime) {
			return false
		}
	}

	return true
}
