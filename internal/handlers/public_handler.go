package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zugflow/zugflow-api/internal/cache"
	"github.com/zugflow/zugflow-api/internal/domain/schedule"
	"github.com/zugflow/zugflow-api/internal/httperr"
	"github.com/zugflow/zugflow-api/internal/models"
	"github.com/zugflow/zugflow-api/internal/notify"
	"github.com/zugflow/zugflow-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db           *gorm.DB
	cache        *cache.Cache
	mailer       *notify.Mailer
	availability *booking.ListAvailableTeamMembers
	createUC     *booking.CreateOnlineBooking
}

func NewPublicHandler(
	db *gorm.DB,
	c *cache.Cache,
	mailer *notify.Mailer,
	availability *booking.ListAvailableTeamMembers,
	createUC *booking.CreateOnlineBooking,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		cache:        c,
		mailer:       mailer,
		availability: availability,
		createUC:     createUC,
	}
}

func publicServicesCacheKey(slug string) string {
	return "public:services:" + slug
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	ServiceID     uint   `json:"service_id" binding:"required"`
	TeamMemberID  *uint  `json:"team_member_id"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:MM
	Notes         string `json:"notes"`
}

type publicServicesResponse struct {
	Salon    models.Salon     `json:"salon"`
	Services []models.Service `json:"services"`
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	slug := c.Param("slug")

	cacheKey := publicServicesCacheKey(slug)

	var cached publicServicesResponse
	if h.cache.GetJSON(c.Request.Context(), cacheKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	var salon models.Salon
	if err := h.db.Where("slug = ? AND active = true", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salone non trovato.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("salon_id = ? AND active = true", salon.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Errore nel caricare i servizi.")
		return
	}

	resp := publicServicesResponse{Salon: salon, Services: services}
	h.cache.SetJSON(c.Request.Context(), cacheKey, resp, 5*time.Minute)

	c.JSON(http.StatusOK, resp)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")
	timeStr := c.Query("time")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || timeStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e orario sono obbligatori.")
		return
	}

	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data non valida.")
		return
	}

	var salon models.Salon
	if err := h.db.Where("slug = ? AND active = true", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salone non trovato.")
		return
	}

	var serviceID uint
	if serviceIDStr != "" {
		parsed, err := strconv.ParseUint(serviceIDStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_service_id", "Servizio non valido.")
			return
		}
		serviceID = uint(parsed)
	}

	result, err := h.availability.Execute(
		c.Request.Context(),
		schedule.AvailabilityInput{
			SalonID:   salon.ID,
			Date:      dateStr,
			StartTime: timeStr,
			ServiceID: serviceID,
		},
	)
	if err != nil {
		mapAvailabilityErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ? AND active = true", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salone non trovato.")
		return
	}

	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	b, err := h.createUC.Execute(
		c.Request.Context(),
		booking.CreateOnlineBookingInput{
			SalonID:       salon.ID,
			ServiceID:     req.ServiceID,
			TeamMemberID:  req.TeamMemberID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			Date:          req.Date,
			Time:          req.Time,
			Notes:         req.Notes,
		},
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	h.mailer.BookingReceived(&salon, b)

	c.JSON(http.StatusCreated, gin.H{
		"reference": b.Reference,
		"status":    b.Status,
		"date":      b.Date,
		"time":      b.StartTime,
		"end_time":  b.EndTime,
	})
}

////////////////////////////////////////////////////////
// ERROR MAPPING
////////////////////////////////////////////////////////

func mapAvailabilityErrors(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "missing_params", "invalid_time", "invalid_duration", "end_time_overflow":
		httperr.BadRequest(c, httperr.BusinessCode(err), "Parametri non validi.")
	case "service_not_found":
		httperr.BadRequest(c, "service_not_found", "Servizio non valido.")
	default:
		httperr.Internal(c, "availability_failed", "Errore nel calcolo delle disponibilità.")
	}
}

func mapBookingErrors(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "invalid_date_or_time", "invalid_time", "end_time_overflow", "too_soon",
		"outside_working_hours", "service_not_found", "team_member_not_found":
		httperr.BadRequest(c, httperr.BusinessCode(err), "Richiesta non valida.")
	case "time_conflict":
		httperr.Conflict(c, "time_conflict", "Orario non più disponibile.")
	default:
		httperr.Internal(c, "failed_to_create_booking", "Errore nella creazione della prenotazione.")
	}
}
