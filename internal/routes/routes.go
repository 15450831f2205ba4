package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/medconnect/telemed-api/internal/audit"
	"github.com/medconnect/telemed-api/internal/config"
	"github.com/medconnect/telemed-api/internal/handlers"
	"github.com/medconnect/telemed-api/internal/identity"
	infraRepo "github.com/medconnect/telemed-api/internal/infra/repository"
	"github.com/medconnect/telemed-api/internal/middleware"
	"github.com/medconnect/telemed-api/internal/payments"
	"github.com/medconnect/telemed-api/internal/session"
	"github.com/medconnect/telemed-api/internal/storage"
	ucAppointment "github.com/medconnect/telemed-api/internal/usecase/appointment"
	ucDoctor "github.com/medconnect/telemed-api/internal/usecase/doctor"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	sessions session.Store,
	idp identity.Provider,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	doctorRepo := infraRepo.NewDoctorGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	avatarStore := storage.NewAvatarStore(cfg)

	var paymentsClient payments.Client
	if cfg.PaymentsEnabled() {
		mp, err := payments.NewMercadoPago(cfg.MPAccessToken)
		if err != nil {
			log.Printf("payments disabled: %v", err)
		} else {
			paymentsClient = mp
		}
	}

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(
		appointmentRepo,
		auditDispatcher,
		paymentsClient,
	)

	listUC := ucAppointment.NewListAppointments(
		appointmentRepo,
	)

	startUC := ucAppointment.NewStartCall(
		appointmentRepo,
		auditDispatcher,
	)

	joinUC := ucAppointment.NewJoinCall(
		appointmentRepo,
	)

	completeUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// USE CASES — DOCTORS
	// ======================================================
	registerDoctorUC := ucDoctor.NewRegisterDoctor(
		doctorRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, idp, sessions)
	meHandler := handlers.NewMeHandler(db, avatarStore)
	doctorHandler := handlers.NewDoctorHandler(db, registerDoctorUC)
	adminHandler := handlers.NewAdminHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		listUC,
		startUC,
		joinUC,
		completeUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/session", authHandler.ProcessSession)
		api.GET("/doctors", doctorHandler.ListAvailable)
		api.POST("/admin/init-sample-doctors", adminHandler.InitSampleDoctors)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(sessions))
		{
			secured.GET("/auth/me", authHandler.Me)
			secured.POST("/auth/logout", authHandler.Logout)

			secured.POST("/doctors/profile", doctorHandler.RegisterProfile)
			secured.GET("/doctors/profile", doctorHandler.MyProfile)
			secured.PUT("/doctors/availability", doctorHandler.UpdateAvailability)

			secured.PUT("/me/avatar", meHandler.UploadAvatar)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Book)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id/join", appointmentHandler.Join)
			secured.POST("/appointments/:id/start", appointmentHandler.Start)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
		}
	}
}
