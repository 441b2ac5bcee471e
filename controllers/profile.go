package controllers

import (
	"errors"
	"net/http"
	"os"

	"glowbook-backend/config"
	"glowbook-backend/models"
	"glowbook-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// getOrCreateProfile returns the single business profile row, seeding it
// with defaults on first access.
func getOrCreateProfile() (models.BusinessProfile, error) {
	var profile models.BusinessProfile
	err := config.DB.First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.BusinessProfile{
			Name:         os.Getenv("BUSINESS_NAME"),
			WorkingHours: models.DefaultWorkingHours(),
		}
		if profile.Name == "" {
			profile.Name = "GlowBook Salon & Spa"
		}
		err = config.DB.Create(&profile).Error
	}
	return profile, err
}

func GetBusinessProfile(c *gin.Context) {
	profile, err := getOrCreateProfile()
	if err != nil {
		utils.LogAndRespond(c, http.StatusInternalServerError, "Failed to load business profile", err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func UpdateBusinessProfile(c *gin.Context) {
	var input struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
		Phone   *string `json:"phone"`
		Email   *string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	profile, err := getOrCreateProfile()
	if err != nil {
		utils.LogAndRespond(c, http.StatusInternalServerError, "Failed to load business profile", err)
		return
	}

	if input.Name != nil {
		profile.Name = *input.Name
	}
	if input.Address != nil {
		profile.Address = *input.Address
	}
	if input.Phone != nil {
		profile.Phone = *input.Phone
	}
	if input.Email != nil {
		profile.Email = *input.Email
	}

	if err := config.DB.Save(&profile).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

func UpdateWorkingHours(c *gin.Context) {
	var input struct {
		WorkingHours models.JSONB `json:"workingHours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	profile, err := getOrCreateProfile()
	if err != nil {
		utils.LogAndRespond(c, http.StatusInternalServerError, "Failed to load business profile", err)
		return
	}

	if err := config.DB.Model(&profile).
		Update("working_hours", input.WorkingHours).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update working hours")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Working hours updated"})
}

func UpdateNotificationSettings(c *gin.Context) {
	var input struct {
		AppointmentReminders  bool `json:"appointmentReminders"`
		WhatsAppNotifications bool `json:"whatsAppNotifications"`
		SMSNotifications      bool `json:"smsNotifications"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	profile, err := getOrCreateProfile()
	if err != nil {
		utils.LogAndRespond(c, http.StatusInternalServerError, "Failed to load business profile", err)
		return
	}

	if err := config.DB.Model(&profile).Updates(map[string]interface{}{
		"appointment_reminders":   input.AppointmentReminders,
		"whats_app_notifications": input.WhatsAppNotifications,
		"sms_notifications":       input.SMSNotifications,
	}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update notification settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification settings updated"})
}
