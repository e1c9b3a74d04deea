package middlewares

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/c41m07/sf-restaurant/entity"
	"github.com/c41m07/sf-restaurant/pkg/resp"
)

// AuthMiddleware vérifie le token API porté en Bearer et (si demandé) le rôle.
// Le token est l'apiToken stable généré à l'inscription, pas un JWT.
func AuthMiddleware(db *gorm.DB, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		var user entity.User
		if err := db.Where("api_token = ?", tokenStr).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				resp.Unauthorized(c, "invalid token")
			} else {
				resp.ServerError(c, err)
			}
			c.Abort()
			return
		}

		c.Set("user", &user)
		c.Set("userId", user.ID)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if user.HasRole(r) {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, "forbidden")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// CurrentUser renvoie l'utilisateur posé par AuthMiddleware.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get("user")
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
