package routes

import (
	"time"

	"festeasy/handlers"
	"festeasy/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Options carries the router settings that come from config.
type Options struct {
	CORSOrigins    []string
	PlannerLimiter *middleware.RateLimiterStore
}

// RegisterSessionRoutes registers login, logout and current-session endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/session")
	{
		api.GET("", hb.CurrentSessionHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterCatalogRoutes registers the public provider catalog.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.GET("", hb.ListProvidersHandler)
		api.GET("/:id", hb.GetProviderHandler)
	}
}

// RegisterCartRoutes registers the cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.GET("", hb.GetCartHandler)
		api.DELETE("", hb.ClearCartHandler)
		api.POST("/items", hb.AddCartItemHandler)
		api.DELETE("/items/:serviceId", hb.RemoveCartItemHandler)
	}
}

// RegisterBookingRoutes registers booking request endpoints. Answering a
// request is reserved to providers.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.ListBookingRequestsHandler)
		api.POST("", hb.CreateBookingRequestHandler)
		api.PATCH("/:id/status", middleware.RequireProvider(hb.CurrentUser), hb.UpdateRequestStatusHandler)
	}
}

// RegisterProviderRoutes registers the provider dashboard.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/provider")
	{
		api.Use(middleware.RequireProvider(hb.CurrentUser))
		api.GET("/services", hb.ListOwnServicesHandler)
		api.POST("/services", hb.AddServiceHandler)
	}
}

// RegisterPlannerRoutes registers the AI party planner.
func RegisterPlannerRoutes(r *gin.Engine, hb *handlers.HandlerBundle, limiter *middleware.RateLimiterStore) {
	api := r.Group("/api/planner")
	{
		if limiter != nil {
			api.POST("/plan", middleware.RateLimitMiddleware(limiter), hb.GeneratePlanHandler)
		} else {
			api.POST("/plan", hb.GeneratePlanHandler)
		}
		api.GET("/plan", hb.PendingPlanHandler)
		api.DELETE("/plan", hb.DiscardPlanHandler)
		api.POST("/confirm", hb.ConfirmPlanHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, opts Options) {
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterPlannerRoutes(r, hb, opts.PlannerLimiter)
}
