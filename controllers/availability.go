package controllers

import (
	"net/http"

	"glowbook-backend/scheduling"
	"glowbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetAvailability returns the free "HH:MM" slots for a staff member on a
// date: the working-hours window for that weekday minus slots taken by
// active bookings.
func GetAvailability(c *gin.Context) {
	staffID := c.Query("staffId")
	if staffID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "staffId is required")
		return
	}
	staffUUID, err := uuid.Parse(staffID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "date is required")
		return
	}
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	profile, err := getOrCreateProfile()
	if err != nil {
		utils.LogAndRespond(c, http.StatusInternalServerError, "Failed to load business profile", err)
		return
	}

	openHour, closeHour, open := profile.HoursFor(utils.WeekdayName(date))
	if !open {
		c.JSON(http.StatusOK, gin.H{
			"date":    dateStr,
			"staffId": staffID,
			"closed":  true,
			"slots":   []string{},
		})
		return
	}

	slots := availability.FreeSlots(c.Request.Context(), staffUUID, date,
		openHour, closeHour, scheduling.DefaultSlotInterval)

	c.JSON(http.StatusOK, gin.H{
		"date":    dateStr,
		"staffId": staffID,
		"closed":  false,
		"slots":   slots,
	})
}
