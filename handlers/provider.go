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

type ProviderHandler struct {
	Store *store.Store
}

func NewProviderHandler(s *store.Store) *ProviderHandler {
	return &ProviderHandler{Store: s}
}

// ListOwnServices handles GET /api/provider/services.
func (h *ProviderHandler) ListOwnServices(c *gin.Context) {
	u := h.Store.CurrentUser()
	if u == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Inicia sesión para continuar", "")
		return
	}
	p, ok := h.Store.Provider(u.ID)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Proveedor no encontrado", u.ID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": p.Services})
}

// AddService handles POST /api/provider/services.
func (h *ProviderHandler) AddService(c *gin.Context) {
	logger := getLogger(c)

	var draft models.ServiceDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Servicio inválido", err.Error())
		return
	}

	svc, err := h.Store.AddServiceToProvider(draft)
	if err != nil {
		if errors.Is(err, store.ErrInvalidServiceDraft) {
			utils.JSONError(c, http.StatusBadRequest, "Servicio inválido", err.Error())
			return
		}
		logger.Error("AddServiceToProvider failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "No se pudo agregar el servicio", err.Error())
		return
	}
	if svc == nil {
		// Session ended between the route guard and the mutation.
		c.Status(http.StatusNoContent)
		return
	}

	logger.Info("service added", zap.String("providerID", svc.ProviderID), zap.String("serviceID", svc.ID))
	c.JSON(http.StatusCreated, svc)
}
