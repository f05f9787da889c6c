package routes

import (
	"context"
	"net"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-scheduler/internal/config"
	"github.com/BruksfildServices01/studio-scheduler/internal/db"
	"github.com/BruksfildServices01/studio-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/studio-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/studio-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/studio-scheduler/internal/leads"
	"github.com/BruksfildServices01/studio-scheduler/internal/metrics"
	"github.com/BruksfildServices01/studio-scheduler/internal/middleware"
	"github.com/BruksfildServices01/studio-scheduler/internal/storage"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/studio-scheduler/internal/usecase/appointment"
	ucBooking "github.com/BruksfildServices01/studio-scheduler/internal/usecase/booking"
	"github.com/BruksfildServices01/studio-scheduler/internal/validators"
)

// Deps são os singletons montados no main.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      *zap.Logger
	Clock    *timezone.Clock
	Audit    ucAppointment.Auditor
	Sessions booking.Store
	Leads    *leads.Log
	Metrics  *metrics.Metrics
	Uploader storage.Uploader
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMin)
	limited := limiter.Middleware(d.Log)

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)

	var checkEmail ucAppointment.EmailChecker
	if cfg.CheckEmailDomain {
		checkEmail = func(ctx context.Context, email string) bool {
			return validators.EmailDomainResolves(ctx, net.DefaultResolver, email)
		}
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreatePublicAppointment(
		appointmentRepo,
		d.Clock,
		d.Audit,
		checkEmail,
	)

	wizard := ucBooking.NewWizard(
		d.Sessions,
		appointmentRepo,
		d.Clock,
		createAppointmentUC,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(d.DB, appointmentRepo, d.Clock, cfg, d.Metrics, createAppointmentUC)
	bookingHandler := handlers.NewBookingHandler(wizard, d.Metrics)
	enrollmentHandler := handlers.NewEnrollmentHandler(
		d.Leads,
		handlers.CourseTitlesFromDB(d.DB),
		d.Clock,
		cfg,
		d.Metrics,
	)

	authHandler := handlers.NewAuthHandler(d.DB, cfg, d.Clock)
	meHandler := handlers.NewMeHandler(d.DB)

	serviceHandler := handlers.NewServiceHandler(d.DB, d.Audit)
	courseHandler := handlers.NewCourseHandler(d.DB, d.Audit, d.Uploader, d.Log)
	comboHandler := handlers.NewComboHandler(d.DB, d.Audit)
	availabilityHandler := handlers.NewAvailabilityHandler(d.DB, d.Audit)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentRepo, d.Clock, cfg, d.Audit)
	clientHandler := handlers.NewClientHandler(d.DB)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, d.Clock)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/courses", publicHandler.ListCourses)
			publicAPI.GET("/combos", publicHandler.ListCombos)
			publicAPI.GET("/testimonials", publicHandler.Testimonials)
			publicAPI.GET("/faq", publicHandler.FAQ)
			publicAPI.GET("/whatsapp", publicHandler.WhatsAppContact)

			publicAPI.GET("/availability", publicHandler.ListAvailability)
			publicAPI.GET("/calendar", publicHandler.Calendar)
			publicAPI.GET("/slots", publicHandler.Slots)
			publicAPI.POST("/appointments", limited, publicHandler.CreateAppointment)

			publicAPI.POST("/enrollments", limited, enrollmentHandler.Create)

			// agendamento em etapas
			publicAPI.POST("/booking", limited, bookingHandler.Start)
			publicAPI.GET("/booking/:id", bookingHandler.Get)
			publicAPI.PUT("/booking/:id/service", bookingHandler.SelectService)
			publicAPI.PUT("/booking/:id/slot", bookingHandler.SelectSlot)
			publicAPI.POST("/booking/:id/submit", limited, bookingHandler.Submit)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", limited, authHandler.Login)

		// ------------------------------
		// 🔐 API ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(db.RoleAdmin))
		{
			admin.GET("/me", meHandler.GetMe)

			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.GET("/courses", courseHandler.List)
			admin.POST("/courses", courseHandler.Create)
			admin.PUT("/courses/:id", courseHandler.Update)
			admin.DELETE("/courses/:id", courseHandler.Delete)
			admin.POST("/courses/:id/image", courseHandler.UploadImage)

			admin.GET("/combos", comboHandler.List)
			admin.POST("/combos", comboHandler.Create)
			admin.PUT("/combos/:id", comboHandler.Update)
			admin.DELETE("/combos/:id", comboHandler.Delete)

			admin.GET("/availability", availabilityHandler.Get)
			admin.PUT("/availability", availabilityHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			admin.GET("/appointments", appointmentHandler.List)
			admin.GET("/appointments/month", appointmentHandler.ListByMonth)
			admin.GET("/appointments/:id", appointmentHandler.Get)
			admin.PATCH("/appointments/:id", appointmentHandler.Update)
			admin.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			admin.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			admin.DELETE("/appointments/:id", appointmentHandler.Delete)
			admin.GET("/appointments/:id/whatsapp", appointmentHandler.WhatsApp)

			admin.GET("/clients", clientHandler.List)
			admin.GET("/enrollments", enrollmentHandler.List)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
