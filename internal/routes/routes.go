package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/odfbarbers/booking-api/internal/audit"
	"github.com/odfbarbers/booking-api/internal/config"
	"github.com/odfbarbers/booking-api/internal/handlers"
	infraRepo "github.com/odfbarbers/booking-api/internal/infra/repository"
	"github.com/odfbarbers/booking-api/internal/middleware"
	ucBooking "github.com/odfbarbers/booking-api/internal/usecase/booking"
	ucSlots "github.com/odfbarbers/booking-api/internal/usecase/slots"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	updateStatusUC := ucBooking.NewUpdateStatus(bookingRepo, auditDispatcher)
	deleteAppointmentUC := ucBooking.NewDeleteAppointment(bookingRepo, auditDispatcher)
	listAppointmentsUC := ucBooking.NewListAppointments(bookingRepo)

	addSlotUC := ucSlots.NewAddSlot(bookingRepo, auditDispatcher)
	updateSlotUC := ucSlots.NewUpdateSlot(bookingRepo, auditDispatcher)
	deleteSlotUC := ucSlots.NewDeleteSlot(bookingRepo, auditDispatcher)
	toggleSlotUC := ucSlots.NewToggleAvailability(bookingRepo, auditDispatcher)
	generateSlotsUC := ucSlots.NewGenerateSlots(bookingRepo, auditDispatcher)
	listBookableUC := ucSlots.NewListBookable(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg)
	publicHandler := handlers.NewPublicHandler(db, bookingRepo, createBookingUC, listBookableUC)

	slotHandler := handlers.NewSlotHandler(
		addSlotUC,
		updateSlotUC,
		deleteSlotUC,
		toggleSlotUC,
		generateSlotsUC,
		bookingRepo,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		listAppointmentsUC,
		updateStatusUC,
		deleteAppointmentUC,
		bookingRepo,
	)

	barberHandler := handlers.NewBarberHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	feedbackHandler := handlers.NewFeedbackHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/slots", publicHandler.ListBookableSlots)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
			publicAPI.GET("/appointments/:ref", publicHandler.GetAppointmentByRef)
			publicAPI.POST("/feedback", publicHandler.CreateFeedback)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/admin/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware(cfg))
		{
			admin.GET("/slots", slotHandler.List)
			admin.POST("/slots", slotHandler.Create)
			admin.POST("/slots/generate", slotHandler.Generate)
			admin.PATCH("/slots/:id", slotHandler.Update)
			admin.POST("/slots/:id/toggle", slotHandler.Toggle)
			admin.DELETE("/slots/:id", slotHandler.Delete)

			admin.GET("/appointments", appointmentHandler.List)
			admin.GET("/appointments/:id", appointmentHandler.Get)
			admin.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			admin.DELETE("/appointments/:id", appointmentHandler.Delete)

			admin.GET("/barbers", barberHandler.List)
			admin.POST("/barbers", barberHandler.Create)
			admin.PATCH("/barbers/:id", barberHandler.Update)
			admin.POST("/barbers/:id/toggle", barberHandler.Toggle)
			admin.DELETE("/barbers/:id", barberHandler.Delete)

			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.POST("/services/:id/toggle", serviceHandler.Toggle)

			admin.GET("/feedback", feedbackHandler.List)
			admin.DELETE("/feedback/:id", feedbackHandler.Delete)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
