package booking

import (
	"context"

	"github.com/zugflow/zugflow-api/internal/domain/schedule"
)

// slotTaken verifica se la fascia [start,end) del membro è già occupata
// da un appuntamento "Prenotato", da una prenotazione online
// pending/confirmed (esclusa skipBookingID) o da un'assenza approvata.
// Chiamata dentro Transact dai percorsi di scrittura.
func slotTaken(
	ctx context.Context,
	repo schedule.Repository,
	salonID uint,
	memberID uint,
	date string,
	start string,
	end string,
	skipBookingID uint,
) (bool, error) {

	appointments, err := repo.ListOccupyingAppointments(ctx, salonID, date)
	if err != nil {
		return false, err
	}
	for _, ap := range appointments {
		if ap.TeamMemberID == memberID && schedule.Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return true, nil
		}
	}

	bookings, err := repo.ListOccupyingBookings(ctx, salonID, date)
	if err != nil {
		return false, err
	}
	for _, b := range bookings {
		if b.ID == skipBookingID {
			continue
		}
		if b.TeamMemberID == nil || *b.TeamMemberID != memberID {
			continue
		}
		if schedule.Overlaps(start, end, b.StartTime, b.EndTime) {
			return true, nil
		}
	}

	timeOff, err := repo.ListApprovedTimeOff(ctx, salonID, date)
	if err != nil {
		return false, err
	}
	for _, off := range timeOff {
		if off.TeamMemberID != memberID {
			continue
		}
		if off.StartTime == "" || off.EndTime == "" {
			return true, nil
		}
		if schedule.Overlaps(start, end, off.StartTime, off.EndTime) {
			return true, nil
		}
	}

	return false, nil
}
