package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"glowbook-backend/models"
	"glowbook-backend/scheduling"
	"glowbook-backend/utils"
)

var (
	availability *scheduling.Checker
	slotLock     *scheduling.SlotLock
)

// InitScheduling wires the availability checker and the slot lock used
// by the booking handlers. Called once from main after the database and
// Redis connections are up.
func InitScheduling(db *gorm.DB, redisClient *redis.Client) {
	availability = scheduling.NewChecker(scheduling.NewGormStore(db), utils.GetLogger())
	slotLock = scheduling.NewSlotLock(redisClient, utils.GetLogger())
}

// currentUserUUID reads the authenticated user id injected by the auth
// middleware.
func currentUserUUID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("userId")
	if !exists {
		return uuid.Nil, false
	}
	str, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func currentRole(c *gin.Context) string {
	raw, exists := c.Get("role")
	if !exists {
		return ""
	}
	role, _ := raw.(string)
	return role
}

func isStaffOrAdmin(c *gin.Context) bool {
	role := currentRole(c)
	return role == models.RoleStaff || role == models.RoleAdmin
}
