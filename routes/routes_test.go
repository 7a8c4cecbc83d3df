package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"festeasy/database"
	"festeasy/handlers"
	"festeasy/models"
	"festeasy/services/auth"
	ai "festeasy/services/intelligence"
	"festeasy/services/store"
	"festeasy/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeCompleter struct {
	response string
	err      error
}

func (f fakeCompleter) Complete(context.Context, string) (string, error) {
	return f.response, f.err
}

const threeItemPlan = `{"plan":[{"providerId":"p1","serviceId":"s1-1"},{"providerId":"p2","serviceId":"s2-1"},{"providerId":"p3","serviceId":"s3-1"}],"justification":"Taquiza, serenata y arco de globos.","totalCost":12000}`

type testServer struct {
	router *gin.Engine
	store  *store.Store
}

func newTestServer(t *testing.T, completer ai.Completer) *testServer {
	t.Helper()
	providers := database.SeedProviders()
	st := store.New(providers, database.SeedBookingRequests())
	sessions := auth.NewSessionService(auth.NewStubAuthenticator(), st, nil)
	planner := ai.NewDefaultPlannerService(completer, st, time.Second, nil)
	workflow := ai.NewWorkflow(planner, ai.NewMemoryPlanStore(time.Hour), st, nil)
	monitor := utils.NewHealthMonitor(planner.Available(), "memory", nil)

	r := gin.New()
	RegisterRoutes(r, handlers.NewHandlerBundle(st, sessions, workflow, monitor), Options{})
	return &testServer{router: r, store: st}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T, userType models.UserType) {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/session/login", models.Credentials{Email: "demo@festeasy.mx", Type: userType})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[struct {
		Status       string             `json:"status"`
		Dependencies utils.HealthStatus `json:"dependencies"`
	}](t, w)
	assert.Equal(t, "ok", body.Status)
	assert.False(t, body.Dependencies.Planner)
	assert.Equal(t, "memory", body.Dependencies.PlanStore)
}

func TestSessionLoginLogout(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/api/session/login", models.Credentials{Email: "ana@festeasy.mx", Type: models.UserTypeCustomer})
	require.Equal(t, http.StatusOK, w.Code)
	result := decode[models.SessionResult](t, w)
	assert.Equal(t, auth.DemoCustomerID, result.User.ID)
	assert.Equal(t, "ana", result.User.Name)

	w = s.do(t, http.MethodGet, "/api/session", nil)
	current := decode[struct {
		User *models.User `json:"user"`
	}](t, w)
	require.NotNil(t, current.User)
	assert.Equal(t, models.UserTypeCustomer, current.User.Type)

	w = s.do(t, http.MethodPost, "/api/session/logout", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Nil(t, s.store.CurrentUser())

	w = s.do(t, http.MethodPost, "/api/session/login", map[string]string{"email": "x@y.mx", "type": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/session/login", map[string]string{"type": "provider"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, auth.DemoProviderID, decode[models.SessionResult](t, w).User.ID)
}

func TestCatalogRoutes(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/api/providers?category=Music", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[struct {
		Providers []models.Provider `json:"providers"`
	}](t, w)
	require.Len(t, list.Providers, 2)
	for _, p := range list.Providers {
		assert.Equal(t, models.CategoryMusic, p.Category)
	}

	w = s.do(t, http.MethodGet, "/api/providers", nil)
	all := decode[struct {
		Providers []models.Provider `json:"providers"`
	}](t, w)
	assert.Len(t, all.Providers, 6)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/providers?category=Circus", nil).Code)

	w = s.do(t, http.MethodGet, "/api/providers/p4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Cuernavaca", decode[models.Provider](t, w).Location)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/providers/nope", nil).Code)
}

func TestCartRoutes(t *testing.T) {
	s := newTestServer(t, nil)

	s.do(t, http.MethodPost, "/api/cart/items", map[string]string{"serviceId": "s1-1"})
	s.do(t, http.MethodPost, "/api/cart/items", map[string]string{"serviceId": "s1-1"})
	w := s.do(t, http.MethodPost, "/api/cart/items", map[string]string{"serviceId": "s2-1"})
	require.Equal(t, http.StatusOK, w.Code)
	cart := decode[models.CartView](t, w)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 9500.0, cart.Total)

	w = s.do(t, http.MethodPost, "/api/cart/items", map[string]string{"serviceId": "ghost"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[models.CartView](t, w).Items, 2)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/cart/items", map[string]string{}).Code)

	w = s.do(t, http.MethodDelete, "/api/cart/items/s1-1", nil)
	cart = decode[models.CartView](t, w)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "s2-1", cart.Items[0].Service.ID)
	assert.Equal(t, "p2", cart.Items[0].Provider.ID)

	w = s.do(t, http.MethodDelete, "/api/cart", nil)
	cart = decode[models.CartView](t, w)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
}

func TestCreateBookingRequest(t *testing.T) {
	s := newTestServer(t, nil)

	draft := models.BookingRequestDraft{
		CustomerName: "Sofía Ruiz",
		EventDate:    "2026-12-24",
		EventType:    "Posada",
		Location:     "Puebla",
		Guests:       30,
		ServiceID:    "s2-1",
	}
	w := s.do(t, http.MethodPost, "/api/bookings", draft)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.BookingRequest](t, w)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "s2-1", created.ServiceID)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, "p2", created.Service.ProviderID)

	draft.ServiceID = "ghost"
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPost, "/api/bookings", draft).Code)

	draft.ServiceID = "s2-1"
	draft.Guests = 0
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/bookings", draft).Code)

	assert.Len(t, s.store.BookingRequests(), 4)
}

func TestBookingStatusRequiresProvider(t *testing.T) {
	s := newTestServer(t, nil)
	body := models.StatusUpdate{Status: models.StatusAccepted}

	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodPatch, "/api/bookings/r1/status", body).Code)

	s.login(t, models.UserTypeCustomer)
	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodPatch, "/api/bookings/r1/status", body).Code)

	r1, _ := s.store.BookingRequest("r1")
	assert.Equal(t, models.StatusPending, r1.Status)
}

func TestBookingStatusTransitions(t *testing.T) {
	s := newTestServer(t, nil)
	s.login(t, models.UserTypeProvider)

	w := s.do(t, http.MethodGet, "/api/bookings", nil)
	list := decode[struct {
		BookingRequests []models.BookingRequest `json:"bookingRequests"`
	}](t, w)
	assert.Len(t, list.BookingRequests, 3)

	w = s.do(t, http.MethodPatch, "/api/bookings/r1/status", models.StatusUpdate{Status: models.StatusAccepted})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusAccepted, decode[models.BookingRequest](t, w).Status)

	w = s.do(t, http.MethodPatch, "/api/bookings/r1/status", models.StatusUpdate{Status: models.StatusAccepted})
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPatch, "/api/bookings/r1/status", models.StatusUpdate{Status: models.StatusRejected})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPatch, "/api/bookings/r2/status", models.StatusUpdate{Status: "Done"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPatch, "/api/bookings/missing/status", models.StatusUpdate{Status: models.StatusRejected})
	assert.Equal(t, http.StatusNoContent, w.Code)

	r2, _ := s.store.BookingRequest("r2")
	assert.Equal(t, models.StatusPending, r2.Status)
}

func TestBookingStatusForeignRequestForbidden(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/api/bookings", models.BookingRequestDraft{
		CustomerName: "Rosa",
		EventDate:    "2027-02-14",
		Guests:       20,
		ServiceID:    "s2-1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	foreign := decode[models.BookingRequest](t, w)

	s.login(t, models.UserTypeProvider)
	w = s.do(t, http.MethodPatch, "/api/bookings/"+foreign.ID+"/status", models.StatusUpdate{Status: models.StatusAccepted})
	assert.Equal(t, http.StatusForbidden, w.Code)

	got, _ := s.store.BookingRequest(foreign.ID)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Len(t, s.store.BookingRequestsForProvider(auth.DemoProviderID), 3)
}

func TestProviderAddsService(t *testing.T) {
	s := newTestServer(t, nil)
	draft := models.ServiceDraft{Name: "Tamalada", Description: "Tamales y atole para 40.", Price: 3200}

	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodPost, "/api/provider/services", draft).Code)

	s.login(t, models.UserTypeProvider)
	w := s.do(t, http.MethodPost, "/api/provider/services", draft)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	svc := decode[models.Service](t, w)
	assert.Equal(t, auth.DemoProviderID, svc.ProviderID)
	assert.NotEmpty(t, svc.ID)

	w = s.do(t, http.MethodGet, "/api/provider/services", nil)
	own := decode[struct {
		Services []models.Service `json:"services"`
	}](t, w)
	assert.Len(t, own.Services, 3)

	draft.Price = -1
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/provider/services", draft).Code)

	found, ok := s.store.FindService(svc.ID)
	require.True(t, ok)
	assert.Equal(t, "Tamalada", found.Name)
}

func TestPlannerUnavailable(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/api/planner/plan", models.PlanRequest{Budget: 10000, Location: "Ciudad de México"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, ai.ErrPlannerUnavailable.Message, decode[utils.ErrorResponse](t, w).Message)
}

func TestPlannerRejectsInvalidRequest(t *testing.T) {
	s := newTestServer(t, fakeCompleter{response: threeItemPlan})

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/planner/plan", map[string]any{"budget": 0, "location": "CDMX"}).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/planner/plan", map[string]any{"budget": 5000}).Code)
}

func TestPlannerRemoteFailures(t *testing.T) {
	cases := map[string]ai.Completer{
		"remote error": fakeCompleter{err: errors.New("quota exceeded")},
		"bad json":     fakeCompleter{response: "no es json"},
	}
	for name, completer := range cases {
		t.Run(name, func(t *testing.T) {
			s := newTestServer(t, completer)
			w := s.do(t, http.MethodPost, "/api/planner/plan", models.PlanRequest{Budget: 10000, Location: "Ciudad de México"})
			assert.Equal(t, http.StatusBadGateway, w.Code)
			assert.NotEmpty(t, decode[utils.ErrorResponse](t, w).Message)
		})
	}
}

func TestPlannerProposeAndConfirm(t *testing.T) {
	s := newTestServer(t, fakeCompleter{response: threeItemPlan})
	s.do(t, http.MethodPost, "/api/cart/items", map[string]string{"serviceId": "s5-1"})

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/planner/plan", nil).Code)

	w := s.do(t, http.MethodPost, "/api/planner/plan", models.PlanRequest{Budget: 10000, Location: "Ciudad de México"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	plan := decode[models.ReconciledPlan](t, w)
	assert.Equal(t, 12000.0, plan.TotalCost)
	assert.Len(t, plan.Lines, 3)
	require.NotEmpty(t, plan.Warnings)
	assert.Equal(t, models.WarningExceedsBudget, plan.Warnings[0].Code)
	assert.Len(t, s.store.Cart(), 1)

	w = s.do(t, http.MethodGet, "/api/planner/plan", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, plan.Justification, decode[models.ReconciledPlan](t, w).Justification)

	w = s.do(t, http.MethodPost, "/api/planner/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	confirmed := decode[struct {
		Cart models.CartView `json:"cart"`
	}](t, w)
	require.Len(t, confirmed.Cart.Items, 3)
	assert.Equal(t, 12000.0, confirmed.Cart.Total)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPost, "/api/planner/confirm", nil).Code)
}

func TestPlannerPlansAreScopedToSession(t *testing.T) {
	s := newTestServer(t, fakeCompleter{response: threeItemPlan})

	w := s.do(t, http.MethodPost, "/api/planner/plan", models.PlanRequest{Budget: 20000, Location: "Ciudad de México"})
	require.Equal(t, http.StatusOK, w.Code)

	s.login(t, models.UserTypeCustomer)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/planner/plan", nil).Code)

	s.do(t, http.MethodPost, "/api/session/logout", nil)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/planner/plan", nil).Code)

	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/api/planner/plan", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/planner/plan", nil).Code)
}
