package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/c41m07/sf-restaurant/pkg/resp"
	"github.com/c41m07/sf-restaurant/utils"
)

// WSAuthMiddleware vérifie le ticket JWT depuis la query ou le header.
// Les connexions WebSocket passent le ticket en ?token= car le navigateur
// ne pose pas de header Authorization sur un Upgrade.
func WSAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		if t := c.Query("token"); t != "" {
			tokenStr = t
		} else if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			tokenStr = strings.TrimPrefix(h, "Bearer ")
		}

		if tokenStr == "" {
			resp.Unauthorized(c, "missing token")
			c.Abort()
			return
		}

		claims, err := utils.ParseTicket(tokenStr, secret)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("roles", claims.Roles)

		c.Next()
	}
}
