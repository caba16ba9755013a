package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripnest/config"
	"tripnest/cron"
	"tripnest/database"
	agentRepoPkg "tripnest/database/repository/agent"
	bookingRepoPkg "tripnest/database/repository/booking"
	contentRepoPkg "tripnest/database/repository/content"
	interestRepoPkg "tripnest/database/repository/interest"
	planRepoPkg "tripnest/database/repository/plan"
	userRepoPkg "tripnest/database/repository/user"
	verificationRepoPkg "tripnest/database/repository/verification"
	"tripnest/handlers"
	"tripnest/middleware"
	"tripnest/routes"
	"tripnest/services/agent"
	"tripnest/services/booking"
	"tripnest/services/content"
	"tripnest/services/interest"
	"tripnest/services/payment"
	"tripnest/services/storage"
	"tripnest/services/user"
	"tripnest/services/verification"
	"tripnest/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	// Identity document storage. Without Cloudinary credentials the
	// passthrough keeps local development working.
	var storageSvc storage.StorageService
	if config.AppConfig.CloudinaryCloudName != "" {
		cld, err := storage.NewCloudinaryStorage()
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize cloudinary storage: %v", err)
		}
		storageSvc = cld
	} else {
		logger.Sugar().Warn("main: cloudinary not configured, storing document references as-is")
		storageSvc = storage.NewPassthroughStorage()
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	agentRepo := agentRepoPkg.NewMongoTravelAgentRepo()
	planRepo := planRepoPkg.NewMongoTravelPlanRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	interestRepo := interestRepoPkg.NewMongoTripInterestRepo()
	verificationRepo := verificationRepoPkg.NewMongoVerificationRequestRepo()
	roomRepo := contentRepoPkg.NewMongoTripRoomRepo()
	storyRepo := contentRepoPkg.NewMongoStoryRepo()

	// Payment provider. Stripe when a key is configured, simulated
	// otherwise.
	var paymentProvider payment.PaymentProvider
	if config.AppConfig.StripeKey != "" {
		paymentProvider = payment.NewStripeProvider()
	} else {
		logger.Sugar().Warn("main: stripe not configured, using simulated payment provider")
		paymentProvider = payment.NewSimulatedProvider()
	}

	identityProvider := verification.NewSimulatedProvider()
	reminderScheduler := cron.NewReminderScheduler()

	// Services.
	userService := &user.DefaultUserService{Repo: userRepo}

	verificationService := &verification.DefaultVerificationService{
		Users:    userRepo,
		Requests: verificationRepo,
		Provider: identityProvider,
		Storage:  storageSvc,
	}

	agentService := &agent.DefaultAgentService{
		Repo:     agentRepo,
		Plans:    planRepo,
		Bookings: bookingRepo,
		Identity: identityProvider,
	}

	bookingService := &booking.DefaultBookingService{
		Bookings:  bookingRepo,
		Plans:     planRepo,
		Agents:    agentRepo,
		Payments:  paymentProvider,
		Reminders: reminderScheduler,
		Currency:  "inr",
	}

	interestService := &interest.DefaultInterestService{
		Repo:    interestRepo,
		Rooms:   roomRepo,
		Stories: storyRepo,
	}

	contentService := &content.DefaultContentService{
		Rooms:   roomRepo,
		Stories: storyRepo,
		Feed:    content.NewFeedCache(utils.GetCacheClient()),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Bookings:     &handlers.BookingHandler{BookingService: bookingService},
		Agents:       &handlers.AgentHandler{AgentService: agentService},
		Users:        &handlers.UserHandler{UserService: userService},
		Plans:        &handlers.PlanHandler{Plans: planRepo},
		Verification: &handlers.VerificationHandler{VerificationService: verificationService},
		Interests:    &handlers.InterestHandler{InterestService: interestService},
		Content:      &handlers.ContentHandler{ContentService: contentService},
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker.
	go cron.InitReminderWorker(userRepo)

	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetAuthCacheClient(), database.MongoClient)

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
