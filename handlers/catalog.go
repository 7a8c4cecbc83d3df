package handlers

import (
	"net/http"
	"strings"

	"festeasy/models"
	"festeasy/services/store"
	"festeasy/utils"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Store *store.Store
}

func NewCatalogHandler(s *store.Store) *CatalogHandler {
	return &CatalogHandler{Store: s}
}

// ListProviders handles GET /api/providers?category=Food.
func (h *CatalogHandler) ListProviders(c *gin.Context) {
	category := models.ServiceCategory(strings.TrimSpace(c.Query("category")))
	if category != "" && !category.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "Categoría desconocida", string(category))
		return
	}
	c.JSON(http.StatusOK, gin.H{"providers": h.Store.Providers(category)})
}

// GetProvider handles GET /api/providers/:id.
func (h *CatalogHandler) GetProvider(c *gin.Context) {
	id := c.Param("id")
	provider, ok := h.Store.Provider(id)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Proveedor no encontrado", id)
		return
	}
	c.JSON(http.StatusOK, provider)
}
