package handlers

import (
	"net/http"

	"festeasy/models"
	"festeasy/services/store"
	"festeasy/utils"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	Store *store.Store
}

func NewCartHandler(s *store.Store) *CartHandler {
	return &CartHandler{Store: s}
}

// View is the cart as returned by every cart endpoint.
func (h *CartHandler) View() models.CartView {
	return models.CartView{Items: h.Store.Cart(), Total: h.Store.CartTotal()}
}

// GetCart handles GET /api/cart.
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.View())
}

// AddItem handles POST /api/cart/items. Unknown or duplicate services leave
// the cart unchanged.
func (h *CartHandler) AddItem(c *gin.Context) {
	var body struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Solicitud inválida", err.Error())
		return
	}
	h.Store.AddServiceToCart(body.ServiceID)
	c.JSON(http.StatusOK, h.View())
}

// RemoveItem handles DELETE /api/cart/items/:serviceId.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.Store.RemoveFromCart(c.Param("serviceId"))
	c.JSON(http.StatusOK, h.View())
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	h.Store.ClearCart()
	c.JSON(http.StatusOK, h.View())
}
