package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/BelskviK/Styler-sub001/config"
	"github.com/BelskviK/Styler-sub001/models"
	"github.com/BelskviK/Styler-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`

	// Either register a new company (becomes its admin) or join an
	// existing one as a customer.
	CompanyName    string       `json:"companyName"`
	CompanyAddress string       `json:"companyAddress"`
	CompanyID      string       `json:"companyId"`
	WorkingHours   models.JSONB `json:"workingHours"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"` // email or phone
	Password   string `json:"password" binding:"required"`
}

func Register(c *gin.Context) {
	var input RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	var existingUser models.User
	result := config.DB.Where("email = ? OR phone = ?", input.Email, input.Phone).First(&existingUser)
	if result.Error == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email or phone already registered")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	role := models.RoleCustomer
	var companyID uuid.UUID

	switch {
	case input.CompanyName != "":
		// New company; the registering user becomes its admin.
		workingHours := input.WorkingHours
		if workingHours == nil {
			workingHours = defaultWorkingHours()
		}
		company := models.Company{
			ID:           uuid.New(),
			Name:         input.CompanyName,
			Address:      input.CompanyAddress,
			WorkingHours: workingHours,
		}
		if err := config.DB.Create(&company).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create company")
			return
		}
		role = models.RoleAdmin
		companyID = company.ID
	case input.CompanyID != "":
		parsed, err := uuid.Parse(input.CompanyID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid company ID format")
			return
		}
		var company models.Company
		if err := config.DB.First(&company, "id = ?", parsed).Error; err != nil {
			utils.RespondWithError(c, http.StatusNotFound, "Company not found")
			return
		}
		companyID = company.ID
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Either companyName or companyId is required")
		return
	}

	newUser := models.User{
		Email:     input.Email,
		Phone:     utils.NormalizePhone(input.Phone),
		Name:      input.Name,
		Password:  input.Password, // hashed in BeforeCreate hook
		Role:      role,
		CompanyID: companyID,
	}

	if err := config.DB.Create(&newUser).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := utils.GenerateToken(newUser.ID.String(), string(newUser.Role), companyID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user": gin.H{
			"id":        newUser.ID,
			"email":     newUser.Email,
			"name":      newUser.Name,
			"phone":     newUser.Phone,
			"role":      newUser.Role,
			"companyId": newUser.CompanyID,
		},
	})
}

func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	identifier := strings.TrimSpace(input.Identifier)

	var user models.User
	result := config.DB.Where("email = ? OR phone = ?", identifier, identifier).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), string(user.Role), user.CompanyID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"name":      user.Name,
			"phone":     user.Phone,
			"role":      user.Role,
			"companyId": user.CompanyID,
		},
	})
}

func Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "User ID not found in context")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"name":      user.Name,
			"phone":     user.Phone,
			"role":      user.Role,
			"companyId": user.CompanyID,
		},
	})
}

func defaultWorkingHours() models.JSONB {
	return models.JSONB{
		"monday":    map[string]interface{}{"open": "09:00", "close": "20:00", "closed": false},
		"tuesday":   map[string]interface{}{"open": "09:00", "close": "20:00", "closed": false},
		"wednesday": map[string]interface{}{"open": "09:00", "close": "20:00", "closed": false},
		"thursday":  map[string]interface{}{"open": "09:00", "close": "20:00", "closed": false},
		"friday":    map[string]interface{}{"open": "09:00", "close": "20:00", "closed": false},
		"saturday":  map[string]interface{}{"open": "09:00", "close": "21:00", "closed": false},
		"sunday":    map[string]interface{}{"open": "10:00", "close": "19:00", "closed": true},
	}
}
