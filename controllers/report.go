// controllers/report.go
package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"glowbook-backend/config"
	"glowbook-backend/models"
	"glowbook-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReportController handles all reporting functions
type ReportController struct{}

// AnalyticsSummary represents the analytics data
type AnalyticsSummary struct {
	CurrentMonthRevenue float64          `json:"currentMonthRevenue"`
	MonthGrowth         float64          `json:"monthGrowth"`
	CurrentYearRevenue  float64          `json:"currentYearRevenue"`
	YearGrowth          float64          `json:"yearGrowth"`
	TopServices         []ServiceSummary `json:"topServices"`
	TopStaff            []StaffSummary   `json:"topStaff"`
	StatusBreakdown     []StatusCount    `json:"statusBreakdown"`
	QuickStats          QuickStatistics  `json:"quickStats"`
}

type ServiceSummary struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type StaffSummary struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type QuickStatistics struct {
	TotalCustomers int     `json:"totalCustomers"`
	TotalBookings  int     `json:"totalBookings"`
	AvgOrderValue  float64 `json:"avgOrderValue"`
}

// GetReportAnalytics returns the complete analytics summary
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	now := time.Now()
	currentYear, currentMonth, _ := now.Date()
	loc := now.Location()

	firstOfMonth := time.Date(currentYear, currentMonth, 1, 0, 0, 0, 0, loc)
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	currentMonthRevenue, err := rc.getRevenue(firstOfMonth, lastOfMonth)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get monthly revenue")
		return
	}

	lastMonthRevenue, err := rc.getRevenue(
		firstOfMonth.AddDate(0, -1, 0),
		lastOfMonth.AddDate(0, -1, 0))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last month revenue")
		return
	}

	currentYearRevenue, err := rc.getRevenue(
		time.Date(currentYear, 1, 1, 0, 0, 0, 0, loc),
		time.Date(currentYear, 12, 31, 23, 59, 59, 0, loc))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get yearly revenue")
		return
	}

	lastYearRevenue, err := rc.getRevenue(
		time.Date(currentYear-1, 1, 1, 0, 0, 0, 0, loc),
		time.Date(currentYear-1, 12, 31, 23, 59, 59, 0, loc))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last year revenue")
		return
	}

	topServices, err := rc.getTopServices(firstOfMonth, lastOfMonth, 4)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get top services")
		return
	}

	topStaff, err := rc.getTopStaff(firstOfMonth, lastOfMonth, 4)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get top staff")
		return
	}

	statusBreakdown, err := rc.getStatusBreakdown(firstOfMonth, lastOfMonth)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get status breakdown")
		return
	}

	quickStats, err := rc.getQuickStatistics()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get quick statistics")
		return
	}

	summary := AnalyticsSummary{
		CurrentMonthRevenue: currentMonthRevenue,
		MonthGrowth:         rc.calculateGrowthPercentage(currentMonthRevenue, lastMonthRevenue),
		CurrentYearRevenue:  currentYearRevenue,
		YearGrowth:          rc.calculateGrowthPercentage(currentYearRevenue, lastYearRevenue),
		TopServices:         topServices,
		TopStaff:            topStaff,
		StatusBreakdown:     statusBreakdown,
		QuickStats:          quickStats,
	}

	c.JSON(http.StatusOK, summary)
}

// ExportBookingsCSV streams the bookings of a date range as CSV
func (rc *ReportController) ExportBookingsCSV(c *gin.Context) {
	from, err := utils.ParseDate(c.DefaultQuery("from", time.Now().AddDate(0, -1, 0).Format("2006-01-02")))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD")
		return
	}
	to, err := utils.ParseDate(c.DefaultQuery("to", time.Now().Format("2006-01-02")))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD")
		return
	}

	var bookings []models.Booking
	if err := config.DB.Preload("Service").Preload("Customer").Preload("Staff").
		Where("scheduled_date BETWEEN ? AND ?", from, to).
		Order("scheduled_date, scheduled_time").
		Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	filename := fmt.Sprintf("bookings_%s_%s.csv", from.Format("2006-01-02"), to.Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename="+filename)

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"Date", "Time", "Service", "Customer", "Staff", "Status", "Price", "Notes"})
	for _, b := range bookings {
		staffName := ""
		if b.Staff != nil {
			staffName = b.Staff.Name
		}
		writer.Write([]string{
			b.ScheduledDate.Format("2006-01-02"),
			b.ScheduledTime,
			b.Service.Name,
			b.Customer.Name,
			staffName,
			b.Status,
			fmt.Sprintf("%.2f", b.Price),
			b.Notes,
		})
	}
}

// Helper functions for reports

func (rc *ReportController) getRevenue(start, end time.Time) (float64, error) {
	var total float64
	err := config.DB.Model(&models.Booking{}).
		Where("status = ? AND scheduled_date BETWEEN ? AND ?", models.BookingCompleted, start, end).
		Select("COALESCE(SUM(price), 0)").
		Scan(&total).Error
	return total, err
}

func (rc *ReportController) calculateGrowthPercentage(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return ((current - previous) / previous) * 100
}

func (rc *ReportController) getTopServices(start, end time.Time, limit int) ([]ServiceSummary, error) {
	var services []ServiceSummary

	err := config.DB.Table("bookings").
		Select("services.name, COUNT(bookings.id) as count, SUM(bookings.price) as revenue").
		Joins("JOIN services ON services.id = bookings.service_id").
		Where("bookings.status = ? AND bookings.scheduled_date BETWEEN ? AND ? AND bookings.deleted_at IS NULL",
			models.BookingCompleted, start, end).
		Group("services.name").
		Order("revenue DESC").
		Limit(limit).
		Scan(&services).Error

	return services, err
}

func (rc *ReportController) getTopStaff(start, end time.Time, limit int) ([]StaffSummary, error) {
	var staff []StaffSummary

	err := config.DB.Table("bookings").
		Select("users.name, COUNT(bookings.id) as count, SUM(bookings.price) as revenue").
		Joins("JOIN users ON users.id = bookings.staff_id").
		Where("bookings.status = ? AND bookings.scheduled_date BETWEEN ? AND ? AND bookings.deleted_at IS NULL",
			models.BookingCompleted, start, end).
		Group("users.name").
		Order("revenue DESC").
		Limit(limit).
		Scan(&staff).Error

	return staff, err
}

func (rc *ReportController) getStatusBreakdown(start, end time.Time) ([]StatusCount, error) {
	var breakdown []StatusCount

	err := config.DB.Table("bookings").
		Select("status, COUNT(*) as count").
		Where("scheduled_date BETWEEN ? AND ? AND deleted_at IS NULL", start, end).
		Group("status").
		Scan(&breakdown).Error

	return breakdown, err
}

func (rc *ReportController) getQuickStatistics() (QuickStatistics, error) {
	var stats QuickStatistics

	var totalCustomers int64
	if err := config.DB.Model(&models.User{}).
		Where("role = ?", models.RoleCustomer).
		Count(&totalCustomers).Error; err != nil {
		return stats, err
	}
	stats.TotalCustomers = int(totalCustomers)

	var totalBookings int64
	if err := config.DB.Model(&models.Booking{}).
		Count(&totalBookings).Error; err != nil {
		return stats, err
	}
	stats.TotalBookings = int(totalBookings)

	var avgOrder float64
	if err := config.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingCompleted).
		Select("COALESCE(AVG(price), 0)").
		Scan(&avgOrder).Error; err != nil {
		return stats, err
	}
	stats.AvgOrderValue = avgOrder

	return stats, nil
}
