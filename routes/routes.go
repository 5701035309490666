package routes

import (
	"net/http"
	"time"

	"courtside/handlers"
	"courtside/middleware"
	"courtside/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterHandler)
		api.POST("/login", hb.User.LoginHandler)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.User.ProfileHandler)
		api.POST("/logout", hb.User.LogoutHandler)
	}
}

// RegisterSportRoutes registers the catalog endpoints: public reads, admin
// writes.
func RegisterSportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sports")
	{
		api.GET("/list", hb.Sport.ListSportsHandler)
		api.GET("/:id", hb.Sport.GetSportHandler)

		adminOnly := []gin.HandlerFunc{
			middleware.JWTAuthMiddleware(hb.UserRepo),
			middleware.RequireRole(models.RoleAdmin),
		}
		api.POST("", append(adminOnly, hb.Sport.CreateSportHandler)...)
		api.PUT("/:id", append(adminOnly, hb.Sport.UpdateSportHandler)...)
		api.DELETE("/:id", append(adminOnly, hb.Sport.DeleteSportHandler)...)
		api.POST("/slots", append(adminOnly, hb.Sport.GenerateSlotsHandler)...)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking workflow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		bookingGroup.GET("/available-slots", hb.Booking.AvailableSlotsHandler)
		bookingGroup.POST("/session", hb.Booking.StartSessionHandler)
		bookingGroup.GET("/session/:sessionID", hb.Booking.GetSessionHandler)
		bookingGroup.PUT("/session/:sessionID/toggle", hb.Booking.ToggleSlotHandler)
		bookingGroup.PUT("/session/:sessionID/players", hb.Booking.SetPlayersHandler)
		bookingGroup.POST("/booking-summary", hb.Booking.BookingSummaryHandler)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSessionHandler)
		bookingGroup.POST("/slot", hb.Booking.BookSlotHandler)
		bookingGroup.POST("/verify-payment", hb.Booking.VerifyPaymentHandler)
		bookingGroup.PUT("/cancel-booking/:paymentID", hb.Booking.CancelBookingHandler)
		bookingGroup.POST("/payment-failed", hb.Booking.PaymentFailedHandler)
		bookingGroup.GET("/my-bookings", hb.Booking.MyBookingsHandler)
	}
}

// RegisterPublicContentRoutes registers the contact form and the gallery.
// Gallery reads are public; writes are admin-gated.
func RegisterPublicContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/contact", hb.Admin.ContactHandler)

	gallery := r.Group("/api/gallery")
	{
		gallery.GET("", hb.Admin.ListGalleryHandler)

		adminOnly := []gin.HandlerFunc{
			middleware.JWTAuthMiddleware(hb.UserRepo),
			middleware.RequireRole(models.RoleAdmin),
		}
		gallery.POST("", append(adminOnly, hb.Admin.AddGalleryItemHandler)...)
		gallery.DELETE("/:id", append(adminOnly, hb.Admin.DeleteGalleryItemHandler)...)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		adminGroup.Use(middleware.RequireRole(models.RoleAdmin))

		adminGroup.GET("/users", hb.Admin.GetAllUsersHandler)
		adminGroup.DELETE("/users/:id", hb.Admin.DeleteUserHandler)

		adminGroup.GET("/enquiries", hb.Admin.ListEnquiriesHandler)
		adminGroup.DELETE("/enquiries/:id", hb.Admin.DeleteEnquiryHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterSportRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPublicContentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
