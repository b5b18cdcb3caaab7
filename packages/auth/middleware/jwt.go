package middleware

import (
	"net/http"
	"strings"

	"auth/utils"

	"github.com/gin-gonic/gin"
)

// JWTMiddleware validates the Bearer token and stores the caller's
// identity in the request context.
func JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseAuthorization(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_roles", claims.Roles)
		c.Next()
	}
}

func parseAuthorization(c *gin.Context) (*utils.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := utils.ParseToken(parts[1])
	if err != nil {
		return nil, false
	}

	return claims, true
}

// GetUserID returns the authenticated user's id from the context
func GetUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

// GetUserEmail returns the authenticated user's email from the context
func GetUserEmail(c *gin.Context) (string, bool) {
	value, exists := c.Get("user_email")
	if !exists {
		return "", false
	}
	email, ok := value.(string)
	return email, ok
}
