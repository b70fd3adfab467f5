package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zugflow/zugflow-api/internal/domain/schedule"
	"github.com/zugflow/zugflow-api/internal/httperr"
	"github.com/zugflow/zugflow-api/internal/httpresp"
	"github.com/zugflow/zugflow-api/internal/middleware"
	"github.com/zugflow/zugflow-api/internal/models"
	"github.com/zugflow/zugflow-api/internal/notify"
	"github.com/zugflow/zugflow-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type OnlineBookingHandler struct {
	db        *gorm.DB
	mailer    *notify.Mailer
	repo      schedule.Repository
	approveUC *booking.ApproveBooking
	rejectUC  *booking.RejectBooking
}

func NewOnlineBookingHandler(
	db *gorm.DB,
	mailer *notify.Mailer,
	repo schedule.Repository,
	approveUC *booking.ApproveBooking,
	rejectUC *booking.RejectBooking,
) *OnlineBookingHandler {
	return &OnlineBookingHandler{
		db:        db,
		mailer:    mailer,
		repo:      repo,
		approveUC: approveUC,
		rejectUC:  rejectUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type DecideBookingRequest struct {
	Action       string `json:"action" binding:"required"`
	TeamMemberID *uint  `json:"team_member_id"`
}

// ======================================================
// LIST
// ======================================================

func (h *OnlineBookingHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	status := c.Query("status")

	bookings, err := h.repo.ListBookings(c.Request.Context(), salonID, status)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Errore nel caricare le prenotazioni.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// DECIDE (approve / reject)
// ======================================================

func (h *OnlineBookingHandler) Decide(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req DecideBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	switch req.Action {
	case "approve":
		ap, err := h.approveUC.Execute(
			c.Request.Context(),
			booking.ApproveBookingInput{
				SalonID:      salonID,
				UserID:       userID,
				BookingID:    id,
				TeamMemberID: req.TeamMemberID,
			},
		)
		if err != nil {
			mapDecideErrors(c, err)
			return
		}

		h.notifyApproved(c, salonID, ap)
		c.JSON(200, gin.H{
			"status":      "approved",
			"appointment": ap,
		})

	case "reject":
		b, err := h.rejectUC.Execute(c.Request.Context(), salonID, userID, id)
		if err != nil {
			mapDecideErrors(c, err)
			return
		}

		h.notifyRejected(c, salonID, b)
		c.JSON(200, gin.H{"status": "rejected"})

	default:
		httperr.BadRequest(c, "invalid_action", "Azione non riconosciuta.")
	}
}

func mapDecideErrors(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "booking_not_found":
		httperr.NotFound(c, "booking_not_found", "Prenotazione non trovata.")
	case "invalid_state":
		httperr.BadRequest(c, "invalid_state", "La prenotazione è già stata gestita.")
	case "team_member_required", "team_member_not_found", "service_not_found",
		"invalid_time", "end_time_overflow":
		httperr.BadRequest(c, httperr.BusinessCode(err), "Richiesta non valida.")
	case "time_conflict":
		httperr.Conflict(c, "time_conflict", "Fascia oraria non più disponibile.")
	default:
		httperr.Internal(c, "decide_failed", "Errore interno.")
	}
}

func (h *OnlineBookingHandler) notifyApproved(c *gin.Context, salonID uint, ap *models.Appointment) {
	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		return
	}
	h.mailer.BookingApproved(&salon, ap)
}

func (h *OnlineBookingHandler) notifyRejected(c *gin.Context, salonID uint, b *models.OnlineBooking) {
	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		return
	}
	h.mailer.BookingRejected(&salon, b)
}
