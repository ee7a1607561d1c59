package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/salonworks/salon-scheduler/internal/assistant"
	"github.com/salonworks/salon-scheduler/internal/audit"
	"github.com/salonworks/salon-scheduler/internal/botflow"
	"github.com/salonworks/salon-scheduler/internal/config"
	"github.com/salonworks/salon-scheduler/internal/handlers"
	infraRepo "github.com/salonworks/salon-scheduler/internal/infra/repository"
	"github.com/salonworks/salon-scheduler/internal/infra/session"
	"github.com/salonworks/salon-scheduler/internal/lock"
	"github.com/salonworks/salon-scheduler/internal/logger"
	"github.com/salonworks/salon-scheduler/internal/middleware"
	ucBooking "github.com/salonworks/salon-scheduler/internal/usecase/booking"
	"github.com/salonworks/salon-scheduler/internal/whatsapp"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	redisClient *redis.Client,
	cfg *config.Config,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var locker lock.Locker
	if cfg.UseRedisLock {
		locker = lock.NewRedisLocker(redisClient)
	} else {
		locker = lock.NewKeyedMutex()
	}

	// ======================================================
	// USE CASES (BOOKINGS)
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		locker,
		auditDispatcher,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
	)

	completeBookingUC := ucBooking.NewCompleteBooking(
		bookingRepo,
		auditDispatcher,
	)

	listByDateUC := ucBooking.NewListBookingsByDate(bookingRepo)
	listByMonthUC := ucBooking.NewListBookingsByMonth(bookingRepo)
	freeSlotsUC := ucBooking.NewFreeSlots(bookingRepo)
	dailyScheduleUC := ucBooking.NewDailySchedule(bookingRepo)

	// ======================================================
	// ASSISTANT (OPTIONAL)
	// ======================================================
	var bookingAssistant *assistant.Assistant
	if cfg.GeminiAPIKey != "" {
		proposer, err := assistant.NewGeminiProposer(cfg.GeminiAPIKey)
		if err != nil {
			logger.L().Warn("assistant disabled: proposer init failed", zap.Error(err))
		} else {
			bookingAssistant = assistant.New(
				bookingRepo,
				dailyScheduleUC,
				createBookingUC,
				proposer,
			)
		}
	}

	// ======================================================
	// WHATSAPP BOT
	// ======================================================
	bookingFlow := botflow.New(bookingRepo, createBookingUC)
	sessionStore := session.NewStore(redisClient)
	waClient := whatsapp.NewClient(cfg.WhatsAppToken, cfg.WhatsAppPhoneID)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	professionalHandler := handlers.NewProfessionalHandler(db)
	customerHandler := handlers.NewCustomerHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		bookingRepo,
		createBookingUC,
		cancelBookingUC,
		completeBookingUC,
		listByDateUC,
		listByMonthUC,
		freeSlotsUC,
		dailyScheduleUC,
	)

	publicHandler := handlers.NewPublicHandler(
		bookingRepo,
		createBookingUC,
		freeSlotsUC,
	)

	assistantHandler := handlers.NewAssistantHandler(bookingAssistant)

	webhookHandler := handlers.NewWebhookHandler(
		bookingRepo,
		bookingFlow,
		sessionStore,
		waClient,
		cfg.WhatsAppVerifyToken,
	)

	// ======================================================
	// WEBHOOK (WHATSAPP CLOUD API)
	// ======================================================
	r.GET("/webhook/:slug", webhookHandler.Verify)
	r.POST("/webhook/:slug", webhookHandler.Receive)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.GetSalon)
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/professionals", publicHandler.ListProfessionals)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.Get)
			secured.PATCH("/me", meHandler.Update)

			secured.GET("/me/salon", salonHandler.Get)
			secured.PATCH("/me/salon", salonHandler.Update)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)

			secured.GET("/me/professionals", professionalHandler.List)
			secured.POST("/me/professionals", professionalHandler.Create)
			secured.PATCH("/me/professionals/:id", professionalHandler.Update)
			secured.GET("/me/professionals/:id/working-hours", professionalHandler.GetWorkingHours)
			secured.PUT("/me/professionals/:id/working-hours", professionalHandler.UpdateWorkingHours)

			secured.GET("/me/customers", customerHandler.List)
			secured.GET("/me/customers/:id", customerHandler.Get)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.ListByDate)
			secured.GET("/me/bookings/month", bookingHandler.ListByMonth)
			secured.GET("/me/bookings/availability", bookingHandler.Availability)
			secured.GET("/me/bookings/schedule", bookingHandler.Schedule)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/me/bookings/:id/complete", bookingHandler.Complete)

			secured.POST("/me/assistant/messages", assistantHandler.Message)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
