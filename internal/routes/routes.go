package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zugflow/zugflow-api/internal/audit"
	"github.com/zugflow/zugflow-api/internal/cache"
	"github.com/zugflow/zugflow-api/internal/config"
	"github.com/zugflow/zugflow-api/internal/handlers"
	infraRepo "github.com/zugflow/zugflow-api/internal/infra/repository"
	"github.com/zugflow/zugflow-api/internal/middleware"
	"github.com/zugflow/zugflow-api/internal/notify"
	ucBooking "github.com/zugflow/zugflow-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	store *cache.Cache,
	mailer *notify.Mailer,
) {

	// ======================================================
	// MIDDLEWARE GLOBALI
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETON)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db, cfg.QueryTimeout)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucBooking.NewListAvailableTeamMembers(bookingRepo)

	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucBooking.NewCancelAppointment(
		bookingRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucBooking.NewCompleteAppointment(
		bookingRepo,
		auditDispatcher,
	)

	deleteAppointmentUC := ucBooking.NewDeleteAppointment(
		bookingRepo,
		auditDispatcher,
	)

	listByDateUC := ucBooking.NewListAppointmentsByDate(bookingRepo)
	listByMonthUC := ucBooking.NewListAppointmentsByMonth(bookingRepo)

	createBookingUC := ucBooking.NewCreateOnlineBooking(
		bookingRepo,
		auditDispatcher,
	)

	approveBookingUC := ucBooking.NewApproveBooking(
		bookingRepo,
		auditDispatcher,
	)

	rejectBookingUC := ucBooking.NewRejectBooking(
		bookingRepo,
		auditDispatcher,
	)

	dailyStatsUC := ucBooking.NewComputeDailyStats(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db)

	teamMemberHandler := handlers.NewTeamMemberHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, store)
	timeOffHandler := handlers.NewTimeOffHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		deleteAppointmentUC,
		listByDateUC,
		listByMonthUC,
	)

	onlineBookingHandler := handlers.NewOnlineBookingHandler(
		db,
		mailer,
		bookingRepo,
		approveBookingUC,
		rejectBookingUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC)
	statsHandler := handlers.NewStatsHandler(dailyStatsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		store,
		mailer,
		availabilityUC,
		createBookingUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PUBBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVATA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/salon", salonHandler.GetMeSalon)
			secured.PATCH("/me/salon", salonHandler.UpdateMeSalon)

			secured.GET("/me/team-members", teamMemberHandler.List)
			secured.POST("/me/team-members", teamMemberHandler.Create)
			secured.PATCH("/me/team-members/:id", teamMemberHandler.Update)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/time-off", timeOffHandler.List)
			secured.POST("/me/time-off", timeOffHandler.Create)
			secured.DELETE("/me/time-off/:id", timeOffHandler.Delete)

			secured.GET("/me/availability", availabilityHandler.Get)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// ONLINE BOOKINGS
			// ------------------------------
			secured.GET("/me/bookings", onlineBookingHandler.List)
			secured.PATCH("/me/bookings/:id", onlineBookingHandler.Decide)

			secured.GET("/me/stats/daily", statsHandler.Daily)
			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
