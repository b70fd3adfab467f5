package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zugflow/zugflow-api/internal/domain/schedule"
	"github.com/zugflow/zugflow-api/internal/httperr"
	"github.com/zugflow/zugflow-api/internal/middleware"
	"github.com/zugflow/zugflow-api/internal/usecase/booking"
)

// Endpoint di disponibilità del gestionale: stesso use case del
// percorso pubblico, il salone arriva dal token.
type AvailabilityHandler struct {
	uc *booking.ListAvailableTeamMembers
}

func NewAvailabilityHandler(uc *booking.ListAvailableTeamMembers) *AvailabilityHandler {
	return &AvailabilityHandler{uc: uc}
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	dateStr := c.Query("date")
	timeStr := c.Query("time")
	endStr := c.Query("end_time")
	serviceIDStr := c.Query("service_id")
	memberIDStr := c.Query("team_member_id")

	if dateStr == "" || timeStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e orario sono obbligatori.")
		return
	}

	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data non valida.")
		return
	}

	in := schedule.AvailabilityInput{
		SalonID:   salonID,
		Date:      dateStr,
		StartTime: timeStr,
		EndTime:   endStr,
	}

	if serviceIDStr != "" {
		parsed, err := strconv.ParseUint(serviceIDStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_service_id", "Servizio non valido.")
			return
		}
		in.ServiceID = uint(parsed)
	}

	if memberIDStr != "" {
		parsed, err := strconv.ParseUint(memberIDStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_team_member_id", "Membro non valido.")
			return
		}
		in.TeamMemberID = uint(parsed)
	}

	result, err := h.uc.Execute(c.Request.Context(), in)
	if err != nil {
		mapAvailabilityErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
