package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/averyhsu/hotel-booking-backend/internal/auth"
	"github.com/averyhsu/hotel-booking-backend/internal/user"
)

// RequireAdmin ensures the authenticated user holds the admin role.
// It MUST be used after auth.AuthRequired middleware. The role is
// re-checked against the database so a revoked admin cannot keep using
// an old token.
func RequireAdmin(userService user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		u, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		if u.Role != user.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}

		// Keep the context role in sync with the database, not the token.
		c.Set("userRole", string(u.Role))

		c.Next()
	}
}
