package handlers

import (
	"festeasy/models"
	"festeasy/services/auth"
	ai "festeasy/services/intelligence"
	"festeasy/services/store"
	"festeasy/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// CurrentUser feeds the provider-only route guard.
	CurrentUser func() *models.User

	// Session endpoints
	LoginHandler          gin.HandlerFunc
	LogoutHandler         gin.HandlerFunc
	CurrentSessionHandler gin.HandlerFunc

	// Catalog endpoints
	ListProvidersHandler gin.HandlerFunc
	GetProviderHandler   gin.HandlerFunc

	// Cart endpoints
	GetCartHandler        gin.HandlerFunc
	AddCartItemHandler    gin.HandlerFunc
	RemoveCartItemHandler gin.HandlerFunc
	ClearCartHandler      gin.HandlerFunc

	// Booking request endpoints
	ListBookingRequestsHandler  gin.HandlerFunc
	CreateBookingRequestHandler gin.HandlerFunc
	UpdateRequestStatusHandler  gin.HandlerFunc

	// Provider dashboard endpoints
	ListOwnServicesHandler gin.HandlerFunc
	AddServiceHandler      gin.HandlerFunc

	// AI planner endpoints
	GeneratePlanHandler gin.HandlerFunc
	PendingPlanHandler  gin.HandlerFunc
	ConfirmPlanHandler  gin.HandlerFunc
	DiscardPlanHandler  gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires every handler against the shared store.
func NewHandlerBundle(s *store.Store, sessions *auth.SessionService, workflow *ai.Workflow, monitor *utils.HealthMonitor) *HandlerBundle {
	sessionHandler := NewSessionHandler(sessions)
	catalogHandler := NewCatalogHandler(s)
	cartHandler := NewCartHandler(s)
	bookingHandler := NewBookingHandler(s)
	providerHandler := NewProviderHandler(s)
	plannerHandler := NewPlannerHandler(workflow, s.CurrentUser, cartHandler.View)
	healthHandler := NewHealthHandler(monitor)

	return &HandlerBundle{
		CurrentUser: s.CurrentUser,

		LoginHandler:          sessionHandler.Login,
		LogoutHandler:         sessionHandler.Logout,
		CurrentSessionHandler: sessionHandler.Current,

		ListProvidersHandler: catalogHandler.ListProviders,
		GetProviderHandler:   catalogHandler.GetProvider,

		GetCartHandler:        cartHandler.GetCart,
		AddCartItemHandler:    cartHandler.AddItem,
		RemoveCartItemHandler: cartHandler.RemoveItem,
		ClearCartHandler:      cartHandler.Clear,

		ListBookingRequestsHandler:  bookingHandler.List,
		CreateBookingRequestHandler: bookingHandler.Create,
		UpdateRequestStatusHandler:  bookingHandler.UpdateStatus,

		ListOwnServicesHandler: providerHandler.ListOwnServices,
		AddServiceHandler:      providerHandler.AddService,

		GeneratePlanHandler: plannerHandler.Generate,
		PendingPlanHandler:  plannerHandler.Pending,
		ConfirmPlanHandler:  plannerHandler.Confirm,
		DiscardPlanHandler:  plannerHandler.Discard,

		HealthHandler: healthHandler.Health,
	}
}
