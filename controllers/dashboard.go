package controllers

import (
	"net/http"
	"time"

	"glowbook-backend/config"
	"glowbook-backend/models"
	"glowbook-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview returns a role-shaped summary: customers get
// their own upcoming appointments, staff get today's schedule, admins
// additionally get revenue and stock alerts.
func GetDashboardOverview(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	today := utils.BeginningOfDay(time.Now())
	role := currentRole(c)

	if role == models.RoleCustomer {
		var upcoming []models.Booking
		config.DB.Preload("Service").Preload("Staff").
			Where("customer_id = ? AND scheduled_date >= ? AND status IN ?",
				userID, today, []string{models.BookingPending, models.BookingConfirmed}).
			Order("scheduled_date, scheduled_time").
			Limit(5).
			Find(&upcoming)

		var total int64
		config.DB.Model(&models.Booking{}).Where("customer_id = ?", userID).Count(&total)

		c.JSON(http.StatusOK, gin.H{
			"upcomingBookings": upcoming,
			"totalBookings":    total,
		})
		return
	}

	// Staff and admin share today's schedule and pending queue
	var todaysBookings []models.Booking
	config.DB.Preload("Service").Preload("Customer").Preload("Staff").
		Where("scheduled_date = ? AND status IN ?",
			today, []string{models.BookingPending, models.BookingConfirmed}).
		Order("scheduled_time").
		Find(&todaysBookings)

	var pendingCount int64
	config.DB.Model(&models.Booking{}).
		Where("status = ? AND scheduled_date >= ?", models.BookingPending, today).
		Count(&pendingCount)

	overview := gin.H{
		"todaysBookings": todaysBookings,
		"pendingCount":   pendingCount,
	}

	if role == models.RoleAdmin {
		firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

		var monthlyRevenue float64
		config.DB.Model(&models.Booking{}).
			Where("status = ? AND scheduled_date >= ?", models.BookingCompleted, firstOfMonth).
			Select("COALESCE(SUM(price), 0)").Scan(&monthlyRevenue)

		var totalCustomers int64
		config.DB.Model(&models.User{}).Where("role = ?", models.RoleCustomer).Count(&totalCustomers)

		var lowStock []models.InventoryItem
		config.DB.Where("quantity <= reorder_level").Order("quantity").Limit(5).Find(&lowStock)

		overview["monthlyRevenue"] = monthlyRevenue
		overview["totalCustomers"] = totalCustomers
		overview["lowStockItems"] = lowStock
	}

	c.JSON(http.StatusOK, overview)
}
