package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfoliokollen/internal/service/auth"
	"portfoliokollen/pkg/util"
)

// AuthMiddleware guards portfolio routes: no session, no access. The
// store itself enforces nothing; access control lives here at the
// presentation boundary.
func AuthMiddleware(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := util.ExtractToken(c.Request)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		claims, err := authService.Verify(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		// stash session identity so handlers can use it
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)

		c.Next()
	}
}
