package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Context keys are set by the auth module's JWT middleware; this package
// only reads them so it stays decoupled from the auth module itself.

func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

func isAdmin(c *gin.Context) bool {
	value, exists := c.Get("user_roles")
	if !exists {
		return false
	}
	roles, ok := value.([]string)
	if !ok {
		return false
	}
	for _, role := range roles {
		if role == "admin" {
			return true
		}
	}
	return false
}

func parsePagination(c *gin.Context) (page int, pageSize int) {
	page = 1
	pageSize = 10

	if pageParam := c.Query("page"); pageParam != "" {
		if p, err := strconv.Atoi(pageParam); err == nil && p > 0 {
			page = p
		}
	}

	if sizeParam := c.Query("pageSize"); sizeParam != "" {
		if ps, err := strconv.Atoi(sizeParam); err == nil && ps > 0 && ps <= 100 {
			pageSize = ps
		}
	}

	return page, pageSize
}
