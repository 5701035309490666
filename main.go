package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courtside/config"
	"courtside/cron"
	"courtside/database"
	bookingRepoPkg "courtside/database/repository/booking"
	recordsRepoPkg "courtside/database/repository/records"
	slotRepoPkg "courtside/database/repository/slot"
	sportRepoPkg "courtside/database/repository/sport"
	userRepoPkg "courtside/database/repository/user"
	"courtside/handlers"
	"courtside/middleware"
	"courtside/routes"
	"courtside/services/admin"
	"courtside/services/booking"
	"courtside/services/sport"
	"courtside/services/tasks"
	"courtside/services/user"
	"courtside/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	slotRepo := slotRepoPkg.NewMongoSlotRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	sportRepo := sportRepoPkg.NewMongoSportRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	recordsRepo := recordsRepoPkg.NewMongoRecordRepo()

	// Services.
	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Logger: logger,
	}
	sportService := &sport.DefaultSportService{
		Repo:   sportRepo,
		Slots:  slotRepo,
		Cache:  sport.NewRedisCatalogCache(utils.GetCacheClient()),
		Logger: logger,
	}
	adminService := &admin.DefaultAdminService{
		Users:   userRepo,
		Records: recordsRepo,
		Logger:  logger,
	}
	bookingService := &booking.DefaultBookingService{
		SlotRepo:    slotRepo,
		BookingRepo: bookingRepo,
		SportRepo:   sportRepo,
		Sessions:    booking.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Gateway: booking.NewRazorpayGateway(
			config.AppConfig.RazorpayKeyID,
			config.AppConfig.RazorpayKeySecret,
		),
		Tasks:  tasks.NewAsynqEnqueuer(),
		Logger: logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		Booking:  handlers.NewBookingHandler(bookingService),
		User:     handlers.NewUserHandler(userService),
		Sport:    handlers.NewSportHandler(sportService),
		Admin:    handlers.NewAdminHandler(adminService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background reconciliation of stale payment attempts.
	cron.InitReconcileWorker(bookingService, bookingRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
