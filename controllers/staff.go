// controllers/staff.go
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

type CreateStaffInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"` // staff (default) or admin
	PhotoURL string `json:"photoUrl"`
}

type UpdateStaffInput struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	PhotoURL *string `json:"photoUrl"`
	IsActive *bool   `json:"isActive"`
}

// GetPublicStaff lists active staff members for the booking form
func GetPublicStaff(c *gin.Context) {
	var staff []models.User
	if err := config.DB.
		Where("role IN ? AND is_active = true", []string{models.RoleStaff, models.RoleAdmin}).
		Order("name").Find(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}

	out := make([]gin.H, 0, len(staff))
	for _, s := range staff {
		out = append(out, gin.H{
			"id":       s.ID,
			"name":     s.Name,
			"photoUrl": s.PhotoURL,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GetStaff lists all staff accounts (admin view)
func GetStaff(c *gin.Context) {
	var staff []models.User
	if err := config.DB.
		Where("role IN ?", []string{models.RoleStaff, models.RoleAdmin}).
		Order("name").Find(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}
	c.JSON(http.StatusOK, staff)
}

// AddStaff creates a staff or admin account
func AddStaff(c *gin.Context) {
	var input CreateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	role := input.Role
	if role == "" {
		role = models.RoleStaff
	}
	if role != models.RoleStaff && role != models.RoleAdmin {
		utils.RespondWithError(c, http.StatusBadRequest, "Role must be staff or admin")
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	staff := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: input.Password, // hashed in BeforeCreate
		Role:     role,
		PhotoURL: input.PhotoURL,
		IsActive: true,
	}

	if err := config.DB.Create(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create staff account")
		return
	}

	c.JSON(http.StatusCreated, staff)
}

// UpdateStaff updates a staff account
func UpdateStaff(c *gin.Context) {
	staffUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	var input UpdateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var staff models.User
	if err := config.DB.
		Where("id = ? AND role IN ?", staffUUID, []string{models.RoleStaff, models.RoleAdmin}).
		First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		staff.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		staff.Phone = *input.Phone
	}
	if input.PhotoURL != nil {
		staff.PhotoURL = *input.PhotoURL
	}
	if input.IsActive != nil {
		staff.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update staff account")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// DeleteStaff deactivates a staff account. The row is kept so historical
// bookings stay attributable.
func DeleteStaff(c *gin.Context) {
	staffUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	result := config.DB.Model(&models.User{}).
		Where("id = ? AND role IN ?", staffUUID, []string{models.RoleStaff, models.RoleAdmin}).
		Update("is_active", false)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate staff account")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff account deactivated"})
}
