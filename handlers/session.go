package handlers

import (
	"errors"
	"net/http"

	"festeasy/models"
	"festeasy/services/auth"
	"festeasy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SessionHandler struct {
	Sessions *auth.SessionService
}

func NewSessionHandler(sessions *auth.SessionService) *SessionHandler {
	return &SessionHandler{Sessions: sessions}
}

// Login handles POST /api/session/login.
func (h *SessionHandler) Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Datos de acceso inválidos", err.Error())
		return
	}

	result, err := h.Sessions.Login(c.Request.Context(), creds)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusBadRequest, "Datos de acceso inválidos", err.Error())
			return
		}
		getLogger(c).Error("Login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "No se pudo iniciar sesión", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// Logout handles POST /api/session/logout.
func (h *SessionHandler) Logout(c *gin.Context) {
	h.Sessions.Logout()
	c.Status(http.StatusNoContent)
}

// Current handles GET /api/session.
func (h *SessionHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": h.Sessions.Current()})
}
