package booking

import (
	"context"

	"github.com/zugflow/zugflow-api/internal/audit"
	"github.com/zugflow/zugflow-api/internal/domain/schedule"
	"github.com/zugflow/zugflow-api/internal/httperr"
	"github.com/zugflow/zugflow-api/internal/models"
)

type RejectBooking struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewRejectBooking(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *RejectBooking {
	return &RejectBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute marca la prenotazione come rifiutata. Nessun'altra entità
// viene toccata.
func (uc *RejectBooking) Execute(
	ctx context.Context,
	salonID uint,
	userID uint,
	bookingID uint,
) (*models.OnlineBooking, error) {

	b, err := uc.repo.GetBooking(ctx, salonID, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := schedule.RejectBooking(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "booking_rejected",
		Entity:   "online_booking",
		EntityID: &bookingID,
	})

	return b, nil
}
