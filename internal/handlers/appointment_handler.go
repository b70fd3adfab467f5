package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zugflow/zugflow-api/internal/httperr"
	"github.com/zugflow/zugflow-api/internal/middleware"
	"github.com/zugflow/zugflow-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC   *booking.CreateAppointment
	cancelUC   *booking.CancelAppointment
	completeUC *booking.CompleteAppointment
	deleteUC   *booking.DeleteAppointment
	byDateUC   *booking.ListAppointmentsByDate
	byMonthUC  *booking.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	createUC *booking.CreateAppointment,
	cancelUC *booking.CancelAppointment,
	completeUC *booking.CompleteAppointment,
	deleteUC *booking.DeleteAppointment,
	byDateUC *booking.ListAppointmentsByDate,
	byMonthUC *booking.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:   createUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		deleteUC:   deleteUC,
		byDateUC:   byDateUC,
		byMonthUC:  byMonthUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	TeamMemberID  uint   `json:"team_member_id" binding:"required"`
	ServiceID     uint   `json:"service_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Notes         string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		booking.CreateAppointmentInput{
			SalonID:       salonID,
			UserID:        userID,
			TeamMemberID:  req.TeamMemberID,
			ServiceID:     req.ServiceID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			Date:          req.Date,
			Time:          req.Time,
			Notes:         req.Notes,
		},
	)
	if err != nil {
		mapAppointmentErrors(c, err)
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obbligatoria.")
		return
	}

	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data non valida.")
		return
	}

	out, err := h.byDateUC.Execute(c.Request.Context(), salonID, dateStr)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Errore nel caricare gli appuntamenti.")
		return
	}

	c.JSON(200, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Anno e mese sono obbligatori.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Anno non valido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mese non valido.")
		return
	}

	out, err := h.byMonthUC.Execute(c.Request.Context(), salonID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Errore nel caricare gli appuntamenti.")
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"appointments": out,
	})
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), salonID, userID, id)
	if err != nil {
		mapAppointmentErrors(c, err)
		return
	}

	c.JSON(200, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), salonID, userID, id)
	if err != nil {
		mapAppointmentErrors(c, err)
		return
	}

	c.JSON(200, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.deleteUC.Execute(c.Request.Context(), salonID, userID, id)
	if err != nil {
		mapAppointmentErrors(c, err)
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapAppointmentErrors(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "appointment_not_found":
		httperr.NotFound(c, "appointment_not_found", "Appuntamento non trovato.")
	case "invalid_state":
		httperr.BadRequest(c, "invalid_state", "Transizione di stato non consentita.")
	case "invalid_date_or_time", "invalid_time", "end_time_overflow", "in_the_past",
		"outside_working_hours", "service_not_found", "team_member_not_found":
		httperr.BadRequest(c, httperr.BusinessCode(err), "Richiesta non valida.")
	case "time_conflict":
		httperr.Conflict(c, "time_conflict", "Conflitto di orario.")
	default:
		httperr.Internal(c, "appointment_failed", "Errore interno.")
	}
}
