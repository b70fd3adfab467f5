package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zugflow/zugflow-api/internal/domain/schedule"
	"github.com/zugflow/zugflow-api/internal/httperr"
	"github.com/zugflow/zugflow-api/internal/middleware"
	"github.com/zugflow/zugflow-api/internal/models"
	"github.com/zugflow/zugflow-api/internal/timezone"
)

type SalonHandler struct {
	db *gorm.DB
}

func NewSalonHandler(db *gorm.DB) *SalonHandler {
	return &SalonHandler{db: db}
}

type UpdateSalonRequest struct {
	Name              *string `json:"name,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Address           *string `json:"address,omitempty"`
	Timezone          *string `json:"timezone,omitempty"`
	OpeningTime       *string `json:"opening_time,omitempty"`
	ClosingTime       *string `json:"closing_time,omitempty"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes,omitempty"`
}

func (h *SalonHandler) GetMeSalon(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "salon_not_found", "Salone non trovato.")
		return
	}

	c.JSON(http.StatusOK, salon)
}

func (h *SalonHandler) UpdateMeSalon(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "salon_not_found", "Salone non trovato.")
		return
	}

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	if req.Name != nil {
		salon.Name = *req.Name
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Timezone non valida.")
			return
		}
		salon.Timezone = *req.Timezone
	}
	if req.OpeningTime != nil {
		if !schedule.IsValidClock(*req.OpeningTime) {
			httperr.BadRequest(c, "invalid_time", "Orario di apertura non valido.")
			return
		}
		salon.OpeningTime = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		if !schedule.IsValidClock(*req.ClosingTime) {
			httperr.BadRequest(c, "invalid_time", "Orario di chiusura non valido.")
			return
		}
		salon.ClosingTime = *req.ClosingTime
	}
	if req.MinAdvanceMinutes != nil {
		salon.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if salon.OpeningTime >= salon.ClosingTime {
		httperr.BadRequest(c, "invalid_working_window", "L'apertura deve precedere la chiusura.")
		return
	}

	if err := h.db.Save(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_update_salon", "Errore durante l'aggiornamento.")
		return
	}

	c.JSON(http.StatusOK, salon)
}
