package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zugflow/zugflow-api/internal/domain/schedule"
	"github.com/zugflow/zugflow-api/internal/httpresp"
	"github.com/zugflow/zugflow-api/internal/middleware"
	"github.com/zugflow/zugflow-api/internal/models"
)

type TimeOffHandler struct {
	db *gorm.DB
}

func NewTimeOffHandler(db *gorm.DB) *TimeOffHandler {
	return &TimeOffHandler{db: db}
}

// --------- Requests ---------

type CreateTimeOffRequest struct {
	TeamMemberID uint   `json:"team_member_id" binding:"required"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Reason       string `json:"reason"`
}

// --------- Handlers ---------

func (h *TimeOffHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	query := h.db.
		Preload("TeamMember").
		Where("salon_id = ?", salonID)

	if memberID := c.Query("team_member_id"); memberID != "" {
		query = query.Where("team_member_id = ?", memberID)
	}
	if from := c.Query("from"); from != "" {
		query = query.Where("end_date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("start_date <= ?", to)
	}

	var entries []models.TimeOff
	if err := query.Order("start_date ASC").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_time_off"})
		return
	}

	httpresp.List(c, entries)
}

func (h *TimeOffHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if _, err := time.Parse("2006-01-02", req.StartDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date", "message": "Data di inizio non valida."})
		return
	}
	if _, err := time.Parse("2006-01-02", req.EndDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date", "message": "Data di fine non valida."})
		return
	}
	if req.EndDate < req.StartDate {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_range", "message": "La data di fine precede quella di inizio."})
		return
	}

	// Orari opzionali: o entrambi o nessuno.
	if (req.StartTime == "") != (req.EndTime == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_range", "message": "Indicare sia orario di inizio che di fine."})
		return
	}
	if req.StartTime != "" {
		if !schedule.IsValidClock(req.StartTime) || !schedule.IsValidClock(req.EndTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time", "message": "Orario non valido, usa il formato HH:MM."})
			return
		}
		if req.EndTime <= req.StartTime {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_range", "message": "L'orario di fine deve seguire quello di inizio."})
			return
		}
	}

	var member models.TeamMember
	if err := h.db.
		Where("id = ? AND salon_id = ?", req.TeamMemberID, salonID).
		First(&member).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "team_member_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_team_member"})
		return
	}

	entry := models.TimeOff{
		SalonID:      salonID,
		TeamMemberID: req.TeamMemberID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Reason:       req.Reason,
		Status:       "approved",
	}

	if err := h.db.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_time_off"})
		return
	}

	httpresp.Created(c, entry)
}

func (h *TimeOffHandler) Delete(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	id := c.Param("id")

	result := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		Delete(&models.TimeOff{})

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_time_off"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "time_off_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Assenza eliminata."})
}
