// controllers/stylist.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/BelskviK/Styler-sub001/config"
	"github.com/BelskviK/Styler-sub001/models"
	"github.com/BelskviK/Styler-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateStylistInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateStylistInput struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"isActive"`
}

type AssignServicesInput struct {
	ServiceIDs []string `json:"serviceIds" binding:"required"`
}

// GetStylists lists the company's stylists with their assigned services.
// Open to any authenticated company member so customers can pick one.
func GetStylists(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	var stylists []models.User
	if err := config.DB.Preload("Services").
		Where("company_id = ? AND role = ?", ident.companyID, models.RoleStyler).
		Find(&stylists).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve stylists")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stylists})
}

// AddStylist creates a styler account in the company. Admin only.
func AddStylist(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	var input CreateStylistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	}

	stylist := models.User{
		Email:     input.Email,
		Phone:     utils.NormalizePhone(input.Phone),
		Name:      input.Name,
		Password:  input.Password, // hashed in BeforeCreate hook
		Role:      models.RoleStyler,
		CompanyID: ident.companyID,
	}

	if err := config.DB.Create(&stylist).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create stylist")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": stylist})
}

// UpdateStylist edits a styler's profile fields. Admin only.
func UpdateStylist(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	stylist, ok := findCompanyStylist(c, ident)
	if !ok {
		return
	}

	var input UpdateStylistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		stylist.Name = *input.Name
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
			return
		}
		stylist.Phone = utils.NormalizePhone(*input.Phone)
	}
	if input.IsActive != nil {
		stylist.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&stylist).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update stylist")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stylist})
}

// AssignServices replaces the set of services a styler offers. Admin only.
func AssignServices(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	stylist, ok := findCompanyStylist(c, ident)
	if !ok {
		return
	}

	var input AssignServicesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	services := make([]models.Service, 0, len(input.ServiceIDs))
	for _, id := range input.ServiceIDs {
		serviceUUID, err := uuid.Parse(id)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
			return
		}
		var service models.Service
		if err := config.DB.Where("company_id = ? AND id = ?", ident.companyID, serviceUUID).
			First(&service).Error; err != nil {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found: "+id)
			return
		}
		services = append(services, service)
	}

	if err := config.DB.Model(&stylist).Association("Services").Replace(services); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to assign services")
		return
	}

	stylist.Services = services
	c.JSON(http.StatusOK, gin.H{"data": stylist})
}

// DeleteStylist removes a styler account. Admin only.
func DeleteStylist(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	stylistUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid stylist ID format")
		return
	}

	result := config.DB.Where("company_id = ? AND id = ? AND role = ?",
		ident.companyID, stylistUUID, models.RoleStyler).Delete(&models.User{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete stylist")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Stylist not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stylist deleted successfully"})
}

func findCompanyStylist(c *gin.Context, ident callerIdentity) (models.User, bool) {
	var stylist models.User

	stylistUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid stylist ID format")
		return stylist, false
	}

	if err := config.DB.Where("company_id = ? AND id = ? AND role = ?",
		ident.companyID, stylistUUID, models.RoleStyler).First(&stylist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Stylist not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return stylist, false
	}

	return stylist, true
}
