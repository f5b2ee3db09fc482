package handler

import (
	"strconv"

	"github.com/aakb/rasid-api/internal/domain/enum"
	"github.com/aakb/rasid-api/internal/presentation/http/dto/response"
	"github.com/aakb/rasid-api/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	return c.GetString(middleware.ContextUserEmail)
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) enum.UserRole {
	role, exists := c.Get(middleware.ContextUserRole)
	if !exists {
		return ""
	}
	r, _ := role.(enum.UserRole)
	return r
}

// IsAdmin checks if the user has the admin role
func IsAdmin(c *gin.Context) bool {
	return GetUserRole(c) == enum.UserRoleAdmin
}

// parseUUIDParam reads a UUID path parameter, writing a 400 when malformed
func parseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "Invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// parseReceiptNo reads the receipt number path parameter
func parseReceiptNo(c *gin.Context) (int64, bool) {
	no, err := strconv.ParseInt(c.Param("no"), 10, 64)
	if err != nil || no < 1 {
		response.BadRequest(c, "Invalid receipt number")
		return 0, false
	}
	return no, true
}
