package handlers

import (
	"errors"
	"net/http"

	"festeasy/models"
	"festeasy/services/store"
	"festeasy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Store *store.Store
}

func NewBookingHandler(s *store.Store) *BookingHandler {
	return &BookingHandler{Store: s}
}

// List handles GET /api/bookings. A provider session only sees requests for
// its own services.
func (h *BookingHandler) List(c *gin.Context) {
	var requests []models.BookingRequest
	if u := h.Store.CurrentUser(); u.IsProvider() {
		requests = h.Store.BookingRequestsForProvider(u.ID)
	} else {
		requests = h.Store.BookingRequests()
	}
	if requests == nil {
		requests = []models.BookingRequest{}
	}
	c.JSON(http.StatusOK, gin.H{"bookingRequests": requests})
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	var draft models.BookingRequestDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Solicitud de reserva inválida", err.Error())
		return
	}

	req, err := h.Store.CreateBookingRequest(draft)
	switch {
	case errors.Is(err, store.ErrServiceNotFound):
		utils.JSONError(c, http.StatusNotFound, "Servicio no encontrado", draft.ServiceID)
		return
	case errors.Is(err, store.ErrInvalidBookingRequest):
		utils.JSONError(c, http.StatusBadRequest, "Solicitud de reserva inválida", err.Error())
		return
	case err != nil:
		getLogger(c).Error("CreateBookingRequest failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "No se pudo crear la reserva", err.Error())
		return
	}
	c.JSON(http.StatusCreated, req)
}

// UpdateStatus handles PATCH /api/bookings/:id/status. Unknown ids are a
// no-op; leaving Accepted or Rejected is a conflict; requests for another
// provider's services are forbidden.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	u := h.sessionUser(c)
	if !u.IsProvider() {
		utils.JSONError(c, http.StatusForbidden, "Solo los proveedores pueden responder reservas", "")
		return
	}

	var body models.StatusUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Estado inválido", err.Error())
		return
	}

	err := h.Store.AnswerRequest(u.ID, id, body.Status)
	switch {
	case errors.Is(err, store.ErrNotRequestOwner):
		utils.JSONError(c, http.StatusForbidden, "La reserva pertenece a otro proveedor", id)
		return
	case errors.Is(err, models.ErrInvalidStatus):
		utils.JSONError(c, http.StatusBadRequest, "Estado inválido", string(body.Status))
		return
	case errors.Is(err, models.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "La reserva ya fue respondida", err.Error())
		return
	case err != nil:
		getLogger(c).Error("UpdateRequestStatus failed", zap.String("requestID", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "No se pudo actualizar la reserva", err.Error())
		return
	}

	req, ok := h.Store.BookingRequest(id)
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, req)
}

// sessionUser prefers the user stored by middleware.RequireProvider.
func (h *BookingHandler) sessionUser(c *gin.Context) *models.User {
	if v, ok := c.Get("user"); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return h.Store.CurrentUser()
}
