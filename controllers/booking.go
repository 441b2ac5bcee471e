package controllers

import (
	"errors"
	"net/http"

	"glowbook-backend/config"
	"glowbook-backend/models"
	"glowbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateBookingInput defines the expected JSON structure for creating a booking
type CreateBookingInput struct {
	ServiceID string  `json:"serviceId" binding:"required"`
	StaffID   *string `json:"staffId"`
	Date      string  `json:"date" binding:"required"` // "2006-01-02"
	Time      string  `json:"time" binding:"required"` // "HH:MM"
	Notes     string  `json:"notes"`
}

// UpdateBookingStatusInput carries a status transition request
type UpdateBookingStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// RescheduleBookingInput moves a booking to a new slot
type RescheduleBookingInput struct {
	Date    string  `json:"date" binding:"required"`
	Time    string  `json:"time" binding:"required"`
	StaffID *string `json:"staffId"`
}

// CreateBooking books a slot for the authenticated customer. The write
// only happens if the slot survives the availability check while the
// slot lock is held.
func CreateBooking(c *gin.Context) {
	customerID, ok := currentUserUUID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	if !utils.ValidateTimeOfDay(input.Time) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time, expected HH:MM")
		return
	}

	serviceUUID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.Where("id = ? AND is_active = true", serviceUUID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	staffUUID, ok := resolveStaff(c, input.StaffID)
	if !ok {
		return
	}

	booking := models.Booking{
		ServiceID:     service.ID,
		CustomerID:    customerID,
		StaffID:       staffUUID,
		ScheduledDate: utils.BeginningOfDay(date),
		ScheduledTime: input.Time,
		Status:        models.BookingPending,
		Price:         service.Price,
		Notes:         input.Notes,
	}

	// Conflict checks only apply when a staff member is requested; an
	// unassigned booking is slotted by the front desk later.
	if staffUUID != nil {
		if !slotLock.Acquire(c.Request.Context(), *staffUUID, date, input.Time) {
			utils.RespondWithConflict(c, utils.SlotConflictMessage)
			return
		}
		defer slotLock.Release(c.Request.Context(), *staffUUID, date, input.Time)

		if !availability.IsSlotAvailable(c.Request.Context(), date, input.Time, *staffUUID, nil) {
			utils.RespondWithConflict(c, utils.SlotConflictMessage)
			return
		}
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithConflict(c, utils.SlotConflictMessage)
			return
		}
		utils.LogAndRespond(c, http.StatusInternalServerError, "Failed to create booking", err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBookings lists bookings. Customers see their own; staff and admin
// see everything, optionally filtered by status, staff or date range.
func GetBookings(c *gin.Context) {
	userID, ok := currentUserUUID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	query := config.DB.Preload("Service").Preload("Staff").Preload("Customer").
		Order("scheduled_date DESC, scheduled_time DESC")

	if !isStaffOrAdmin(c) {
		query = query.Where("customer_id = ?", userID)
	} else {
		if staffID := c.Query("staffId"); staffID != "" {
			query = query.Where("staff_id = ?", staffID)
		}
	}

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if from := c.Query("from"); from != "" {
		if fromDate, err := utils.ParseDate(from); err == nil {
			query = query.Where("scheduled_date >= ?", fromDate)
		}
	}
	if to := c.Query("to"); to != "" {
		if toDate, err := utils.ParseDate(to); err == nil {
			query = query.Where("scheduled_date <= ?", toDate)
		}
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking retrieves a specific booking by ID
func GetBooking(c *gin.Context) {
	booking, ok := loadAccessibleBooking(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateBookingStatus drives the booking state machine. Confirm and
// complete are staff/admin actions; cancel is also open to the owning
// customer.
func UpdateBookingStatus(c *gin.Context) {
	var input UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, ok := loadAccessibleBooking(c)
	if !ok {
		return
	}

	if input.Status != models.BookingCancelled && !isStaffOrAdmin(c) {
		utils.RespondWithError(c, http.StatusForbidden, "Only staff can confirm or complete bookings")
		return
	}

	if !models.CanTransition(booking.Status, input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest,
			"Cannot change status from "+booking.Status+" to "+input.Status)
		return
	}

	if err := config.DB.Model(&booking).Update("status", input.Status).Error; err != nil {
		utils.LogAndRespond(c, http.StatusInternalServerError, "Failed to update booking", err)
		return
	}

	booking.Status = input.Status
	c.JSON(http.StatusOK, booking)
}

// RescheduleBooking moves a booking to a new slot. The booking is
// excluded from its own conflict check, and a successful reschedule
// always re-opens the status to pending: moved slots need to be
// re-confirmed by staff.
func RescheduleBooking(c *gin.Context) {
	var input RescheduleBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}
	if !utils.ValidateTimeOfDay(input.Time) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time, expected HH:MM")
		return
	}

	booking, ok := loadAccessibleBooking(c)
	if !ok {
		return
	}

	if booking.IsTerminal() {
		utils.RespondWithError(c, http.StatusBadRequest, "Cannot reschedule a "+booking.Status+" booking")
		return
	}

	staffUUID := booking.StaffID
	if input.StaffID != nil {
		staffUUID, ok = resolveStaff(c, input.StaffID)
		if !ok {
			return
		}
	}

	if staffUUID != nil {
		if !slotLock.Acquire(c.Request.Context(), *staffUUID, date, input.Time) {
			utils.RespondWithConflict(c, utils.SlotConflictMessage)
			return
		}
		defer slotLock.Release(c.Request.Context(), *staffUUID, date, input.Time)

		if !availability.IsSlotAvailable(c.Request.Context(), date, input.Time, *staffUUID, &booking.ID) {
			utils.RespondWithConflict(c, utils.SlotConflictMessage)
			return
		}
	}

	updates := map[string]interface{}{
		"scheduled_date": utils.BeginningOfDay(date),
		"scheduled_time": input.Time,
		"staff_id":       staffUUID,
		"status":         models.BookingPending,
	}

	if err := config.DB.Model(&booking).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithConflict(c, utils.SlotConflictMessage)
			return
		}
		utils.LogAndRespond(c, http.StatusInternalServerError, "Failed to reschedule booking", err)
		return
	}

	booking.ScheduledDate = utils.BeginningOfDay(date)
	booking.ScheduledTime = input.Time
	booking.StaffID = staffUUID
	booking.Status = models.BookingPending
	c.JSON(http.StatusOK, booking)
}

// DeleteBooking hard deletes a booking regardless of state. Admin only.
func DeleteBooking(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	result := config.DB.Unscoped().Where("id = ?", bookingUUID).Delete(&models.Booking{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete booking")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// loadAccessibleBooking fetches the booking in the :id param and applies
// the ownership rule: customers may only touch their own bookings.
func loadAccessibleBooking(c *gin.Context) (models.Booking, bool) {
	var booking models.Booking

	userID, ok := currentUserUUID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return booking, false
	}

	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return booking, false
	}

	if err := config.DB.Preload("Service").Preload("Staff").Preload("Customer").
		First(&booking, "id = ?", bookingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return booking, false
	}

	if !isStaffOrAdmin(c) && booking.CustomerID != userID {
		utils.RespondWithError(c, http.StatusForbidden, "Not allowed to access this booking")
		return booking, false
	}

	return booking, true
}

// resolveStaff validates an optional staff id and checks the target is
// an active staff member.
func resolveStaff(c *gin.Context, staffID *string) (*uuid.UUID, bool) {
	if staffID == nil || *staffID == "" {
		return nil, true
	}

	staffUUID, err := uuid.Parse(*staffID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return nil, false
	}

	var staff models.User
	if err := config.DB.Where("id = ? AND role IN ? AND is_active = true",
		staffUUID, []string{models.RoleStaff, models.RoleAdmin}).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}

	return &staffUUID, true
}
