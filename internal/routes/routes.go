package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/medibookhq/medibook-api/internal/audit"
	"github.com/medibookhq/medibook-api/internal/cache"
	"github.com/medibookhq/medibook-api/internal/config"
	"github.com/medibookhq/medibook-api/internal/handlers"
	infraRepo "github.com/medibookhq/medibook-api/internal/infra/repository"
	"github.com/medibookhq/medibook-api/internal/middleware"
	"github.com/medibookhq/medibook-api/internal/models"
	"github.com/medibookhq/medibook-api/internal/notification"
	ucBooking "github.com/medibookhq/medibook-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	slotCache := cache.NewSlotCache(rdb, log)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	var mailer notification.Mailer
	if cfg.SMTPConfigured() {
		mailer = notification.NewSMTPMailer(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPFrom,
			cfg.SMTPUsername,
			cfg.SMTPPassword,
		)
	} else {
		mailer = notification.NewLogMailer(log)
	}
	notifier := notification.NewDispatcher(
		notification.NewGormStore(db),
		mailer,
		log,
	)

	// ======================================================
	// USE CASES (BOOKING)
	// ======================================================
	listSlotsUC := ucBooking.NewListSlots(scheduleRepo, slotCache)

	createAppointmentUC := ucBooking.NewCreateAppointment(
		scheduleRepo,
		notifier,
		auditDispatcher,
		slotCache,
	)

	rescheduleAppointmentUC := ucBooking.NewRescheduleAppointment(
		scheduleRepo,
		notifier,
		auditDispatcher,
		slotCache,
	)

	cancelAppointmentUC := ucBooking.NewCancelAppointment(
		scheduleRepo,
		notifier,
		auditDispatcher,
		slotCache,
	)

	updateByDoctorUC := ucBooking.NewUpdateAppointmentByDoctor(
		scheduleRepo,
		notifier,
		auditDispatcher,
		slotCache,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	publicHandler := handlers.NewPublicHandler(db, listSlotsUC)

	patientHandler := handlers.NewPatientHandler(
		scheduleRepo,
		createAppointmentUC,
		rescheduleAppointmentUC,
		cancelAppointmentUC,
		listSlotsUC,
	)

	doctorHandler := handlers.NewDoctorHandler(db, scheduleRepo, updateByDoctorUC)
	availabilityHandler := handlers.NewAvailabilityHandler(scheduleRepo, slotCache)
	adminHandler := handlers.NewAdminHandler(db, auditDispatcher, slotCache)

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
			publicAPI.GET("/departments", publicHandler.ListDepartments)
			publicAPI.GET("/departments/:department/doctors", publicHandler.ListDoctorsByDepartment)
			publicAPI.GET("/doctors/:id/slots", publicHandler.ListDoctorSlots)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PATIENT
		// ------------------------------
		me := api.Group("/me")
		me.Use(middleware.AuthMiddleware(cfg))
		{
			me.POST("/appointments", patientHandler.Create)
			me.GET("/appointments", patientHandler.ListAppointments)
			me.GET("/appointments/:id/slots", patientHandler.ListRescheduleSlots)
			me.PATCH("/appointments/:id/reschedule", patientHandler.Reschedule)
			me.PATCH("/appointments/:id/cancel", patientHandler.Cancel)
		}

		// ------------------------------
		// DOCTOR
		// ------------------------------
		doctor := api.Group("/doctor")
		doctor.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleDoctor))
		{
			doctor.GET("/profile", doctorHandler.GetProfile)
			doctor.PATCH("/profile", doctorHandler.UpdateProfile)

			doctor.GET("/availability", availabilityHandler.Get)
			doctor.PUT("/availability", availabilityHandler.Update)

			doctor.GET("/appointments", doctorHandler.ListAppointments)
			doctor.PATCH("/appointments/:id", doctorHandler.UpdateAppointment)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/doctors", adminHandler.ListDoctors)
			admin.PATCH("/doctors/:id/approval", adminHandler.SetDoctorApproval)
			admin.GET("/stats", adminHandler.GetStats)
			admin.GET("/audit-logs", adminHandler.ListAuditLogs)
		}
	}
}
