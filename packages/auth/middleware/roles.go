package middleware

import (
	"net/http"

	"auth/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequireRole checks that the authenticated user carries a specific role.
// Roles are re-read from the database so a revoked role takes effect
// before the access token expires.
func RequireRole(db *gorm.DB, requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		if !user.HasRole(requiredRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error":         "Insufficient permissions",
				"required_role": requiredRole,
			})
			c.Abort()
			return
		}

		c.Set("user_roles", []string(user.Roles))
		c.Next()
	}
}
