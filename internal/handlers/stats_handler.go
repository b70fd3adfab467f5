package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zugflow/zugflow-api/internal/middleware"
	"github.com/zugflow/zugflow-api/internal/usecase/booking"
)

type StatsHandler struct {
	uc *booking.ComputeDailyStats
}

func NewStatsHandler(uc *booking.ComputeDailyStats) *StatsHandler {
	return &StatsHandler{uc: uc}
}

func (h *StatsHandler) Daily(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_date", "message": "Il parametro 'date' è obbligatorio."})
		return
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date", "message": "Data non valida, usa il formato YYYY-MM-DD."})
		return
	}

	stats, err := h.uc.Execute(c.Request.Context(), salonID, dateStr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_compute_stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
