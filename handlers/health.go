package handlers

import (
	"net/http"

	"festeasy/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

func NewHealthHandler(monitor *utils.HealthMonitor) *HealthHandler {
	return &HealthHandler{Monitor: monitor}
}

// Health handles GET /health. The service is always up; the body reports
// which optional dependencies are usable.
func (h *HealthHandler) Health(c *gin.Context) {
	body := gin.H{"status": "ok", "message": "Hola, soy FestEasy"}
	if h.Monitor != nil {
		body["dependencies"] = h.Monitor.Status()
	}
	c.JSON(http.StatusOK, body)
}
