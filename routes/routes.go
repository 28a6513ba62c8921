package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"weddingsparks/config"
	"weddingsparks/handlers"
	"weddingsparks/middleware"
	"weddingsparks/utils"
)

// SetupRouter builds the Gin engine with all middleware and routes.
func SetupRouter(hb *handlers.HandlerBundle) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware())

	origin := config.AppConfig.CORSOrigin
	if origin == "" {
		origin = "*"
	}
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if origin == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = []string{origin}
	}
	r.Use(cors.New(corsCfg))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterListingRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterVendorRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)

	return r
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterAuthRoutes registers account and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)
		api.POST("/refresh", hb.Auth.Refresh)

		protected := api.Group("")
		protected.Use(middleware.RequireAuth(hb.UserRepo, hb.Cache))
		protected.POST("/logout", hb.Auth.Logout)
		protected.GET("/me", hb.Auth.Me)
		protected.GET("/onboarding", hb.Auth.CheckOnboarding)
	}
}

// RegisterListingRoutes registers listing publication and browsing.
func RegisterListingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/listing")
	{
		api.GET("", hb.Listing.Browse)
		api.GET("/categories", hb.Listing.Categories)
		api.GET("/:id", hb.Listing.Get)
		api.GET("/:id/reviews", hb.Vendor.ListingReviews)

		protected := api.Group("")
		protected.Use(middleware.RequireAuth(hb.UserRepo, hb.Cache))
		protected.POST("", middleware.RequireVendor(), hb.Listing.Create)
		protected.GET("/mine/all", middleware.RequireVendor(), hb.Listing.Mine)
		protected.POST("/:id/reviews", hb.Vendor.AddReview)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/bookings")
	{
		api.Use(middleware.RequireAuth(hb.UserRepo, hb.Cache))
		api.POST("", hb.Booking.Create)
		api.GET("", hb.Booking.ListForCustomer)
		api.GET("/vendor", middleware.RequireVendor(), hb.Booking.ListForVendor)
		api.GET("/:id", hb.Booking.Get)
		api.PATCH("/:id/status", middleware.RequireVendor(), hb.Booking.SetStatus)
	}
}

// RegisterVendorRoutes registers vendor onboarding endpoints.
func RegisterVendorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/vendors")
	{
		api.GET("/:id", hb.Vendor.GetDetails)

		protected := api.Group("")
		protected.Use(middleware.RequireAuth(hb.UserRepo, hb.Cache))
		protected.POST("/details", middleware.RequireVendor(), hb.Vendor.AddDetails)
	}
}

// RegisterPaymentRoutes registers checkout endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/payments")
	{
		api.Use(middleware.RequireAuth(hb.UserRepo, hb.Cache))
		api.POST("/order", hb.Payment.CreateOrder)
		api.POST("/verify", hb.Payment.Verify)
		api.GET("", hb.Payment.List)
		api.POST("/:id/refund", middleware.RequireAdmin(), hb.Payment.Refund)
	}
}
