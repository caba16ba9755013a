package routes

import (
	"net/http"
	"time"

	"tripnest/handlers"
	"tripnest/middleware"
	"tripnest/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.Users.RegisterUserHandler)
		api.POST("/login", hb.Users.AuthenticateUserHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/me", hb.Users.GetProfileHandler)
		api.POST("/notifications/read", hb.Users.MarkNotificationsReadHandler)
	}
}

// RegisterAgentRoutes registers travel agent onboarding and plan
// management endpoints.
func RegisterAgentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/agents")
	{
		api.POST("/register", hb.Agents.RegisterAgentHandler)
		api.POST("/login", hb.Agents.AuthenticateAgentHandler)
		api.GET("/status/:email", hb.Agents.GetAgentStatusHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthAgentMiddleware())
		protected.GET("/dashboard", hb.Agents.GetDashboardHandler)
		protected.POST("/plans", hb.Agents.CreatePlanHandler)
		protected.GET("/plans", hb.Agents.ListPlansHandler)
		protected.PUT("/plans/:id", hb.Agents.UpdatePlanHandler)
		protected.DELETE("/plans/:id", hb.Agents.DeactivatePlanHandler)
	}
}

// RegisterPlanRoutes registers the public travel plan catalog.
func RegisterPlanRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/plans")
	{
		api.GET("", hb.Plans.ListActivePlansHandler)
		api.GET("/:id", hb.Plans.GetPlanHandler)
	}
}

// RegisterBookingRoutes sets up the booking engine endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("", hb.Bookings.CreateBookingHandler)
		api.GET("", hb.Bookings.GetMyBookingsHandler)
		api.GET("/:id", hb.Bookings.GetBookingHandler)
		api.PATCH("/:id/payment", hb.Bookings.UpdatePaymentStatusHandler)
		api.POST("/:id/payment-intent", hb.Bookings.CreatePaymentIntentHandler)
		api.POST("/:id/cancel", hb.Bookings.CancelBookingHandler)
	}
}

// RegisterVerificationRoutes registers identity verification endpoints.
func RegisterVerificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/verification")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("/aadhar", hb.Verification.UploadAadharHandler)
		api.POST("/requests", hb.Verification.RequestVerificationHandler)
		api.POST("/requests/:id/respond", hb.Verification.RespondToRequestHandler)
		api.GET("/requests/incoming", hb.Verification.ListIncomingRequestsHandler)
		api.GET("/requests/outgoing", hb.Verification.ListOutgoingRequestsHandler)
	}
}

// RegisterInterestRoutes registers trip interest endpoints.
func RegisterInterestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/interests")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("", hb.Interests.ExpressInterestHandler)
		api.GET("", hb.Interests.ListMyInterestsHandler)
		api.GET("/trip/:tripId", hb.Interests.ListTripInterestsHandler)
		api.PATCH("/:id", hb.Interests.UpdateInterestStatusHandler)
	}
}

// RegisterContentRoutes registers trip room and story endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	rooms := r.Group("/api/trip-rooms")
	{
		rooms.GET("", hb.Content.ListOpenRoomsHandler)
		rooms.GET("/:id", hb.Content.GetRoomHandler)

		protected := rooms.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware())
		protected.POST("", hb.Content.CreateRoomHandler)
		protected.POST("/:id/join", hb.Content.JoinRoomHandler)
	}

	stories := r.Group("/api/stories")
	{
		stories.GET("", hb.Content.ListStoriesHandler)

		protected := stories.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware())
		protected.POST("", hb.Content.CreateStoryHandler)
		protected.POST("/:id/like", hb.Content.LikeStoryHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint. A degraded
// dependency turns the response into a 503 so load balancers drain the
// instance.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.CheckedAt.IsZero() && !status.Healthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterAgentRoutes(r, hb)
	RegisterPlanRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterVerificationRoutes(r, hb)
	RegisterInterestRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterHealthRoute(r)
}
