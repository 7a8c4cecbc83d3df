package middleware

import (
	"net/http"

	"festeasy/models"

	"github.com/gin-gonic/gin"
)

// CurrentUserFunc returns the session holder or nil.
type CurrentUserFunc func() *models.User

// RequireProvider rejects the request unless a provider is logged in. The
// user is stored in the context under "user".
func RequireProvider(current CurrentUserFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := current()
		if u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Inicia sesión para continuar."})
			return
		}
		if !u.IsProvider() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Solo los proveedores pueden realizar esta acción."})
			return
		}
		c.Set("user", u)
		c.Next()
	}
}
