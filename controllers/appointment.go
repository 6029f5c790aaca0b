// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/BelskviK/Styler-sub001/config"
	"github.com/BelskviK/Styler-sub001/models"
	"github.com/BelskviK/Styler-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateAppointmentInput defines the expected JSON structure for booking
type CreateAppointmentInput struct {
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	CustomerEmail string    `json:"customerEmail"`
	StylistID     string    `json:"stylistId"`
	ServiceID     string    `json:"serviceId"`
	ScheduledTime time.Time `json:"scheduledTime"`
}

type UpdateStatusInput struct {
	Status models.AppointmentStatus `json:"status" binding:"required"`
}

type callerIdentity struct {
	userID    uuid.UUID
	companyID uuid.UUID
	role      models.Role
}

func identityFromContext(c *gin.Context) (callerIdentity, bool) {
	var ident callerIdentity

	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return ident, false
	}
	companyID, exists := c.Get("companyId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Company ID not found in context")
		return ident, false
	}
	role, _ := c.Get("role")

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return ident, false
	}
	companyUUID, err := uuid.Parse(companyID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid company ID format")
		return ident, false
	}

	roleStr, _ := role.(string)
	ident = callerIdentity{
		userID:    userUUID,
		companyID: companyUUID,
		role:      models.Role(roleStr),
	}
	return ident, true
}

// scopedAppointments narrows an appointment query to the rows the caller is
// entitled to see. Admins see their company, stylers their own calendar and
// everyone else (customers included) only their own bookings. Unknown roles
// fall through to customer scope; there is no path to an unscoped query.
func scopedAppointments(ident callerIdentity) *gorm.DB {
	if models.CanManageStaff(ident.role) {
		return config.DB.Where("company_id = ?", ident.companyID)
	}
	if ident.role == models.RoleStyler {
		return config.DB.Where("stylist_id = ?", ident.userID)
	}
	return config.DB.Where("customer_id = ?", ident.userID)
}

// GetAppointments lists the caller's visible appointments, optionally
// narrowed by stylistId/customerId query params (admins only).
func GetAppointments(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	query := scopedAppointments(ident)

	if models.CanManageStaff(ident.role) {
		if stylistID := c.Query("stylistId"); stylistID != "" {
			stylistUUID, err := uuid.Parse(stylistID)
			if err != nil {
				utils.RespondWithError(c, http.StatusBadRequest, "Invalid stylist ID format")
				return
			}
			query = query.Where("stylist_id = ?", stylistUUID)
		}
		if customerID := c.Query("customerId"); customerID != "" {
			customerUUID, err := uuid.Parse(customerID)
			if err != nil {
				utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
				return
			}
			query = query.Where("customer_id = ?", customerUUID)
		}
	}

	var appointments []models.Appointment
	if err := query.Order("scheduled_time asc").Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": appointments})
}

// CreateAppointment books a new appointment. Validation failures come back
// as 422 with per-field messages so forms can surface them inline.
func CreateAppointment(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	fieldErrors := map[string]string{}
	if input.CustomerName == "" {
		fieldErrors["customerName"] = "Name is required"
	}
	if !utils.ValidatePhone(input.CustomerPhone) {
		fieldErrors["customerPhone"] = "Invalid phone number"
	}
	if input.CustomerEmail != "" && !utils.ValidateEmail(input.CustomerEmail) {
		fieldErrors["customerEmail"] = "Invalid email address"
	}
	if input.ScheduledTime.IsZero() {
		fieldErrors["scheduledTime"] = "Scheduled time is required"
	} else if !input.ScheduledTime.After(time.Now()) {
		fieldErrors["scheduledTime"] = "Scheduled time must be in the future"
	}

	stylistUUID, err := uuid.Parse(input.StylistID)
	if err != nil {
		fieldErrors["stylistId"] = "Invalid stylist ID"
	}
	serviceUUID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		fieldErrors["serviceId"] = "Invalid service ID"
	}

	if len(fieldErrors) > 0 {
		utils.RespondWithFieldErrors(c, "Appointment validation failed", fieldErrors)
		return
	}

	var stylist models.User
	if err := config.DB.Where("id = ? AND company_id = ? AND role = ?",
		stylistUUID, ident.companyID, models.RoleStyler).First(&stylist).Error; err != nil {
		utils.RespondWithFieldErrors(c, "Appointment validation failed",
			map[string]string{"stylistId": "Stylist not found"})
		return
	}

	var service models.Service
	if err := config.DB.Where("id = ? AND company_id = ?", serviceUUID, ident.companyID).
		First(&service).Error; err != nil {
		utils.RespondWithFieldErrors(c, "Appointment validation failed",
			map[string]string{"serviceId": "Service not found"})
		return
	}

	appointment := models.Appointment{
		CompanyID:     ident.companyID,
		StylistID:     stylistUUID,
		ServiceID:     serviceUUID,
		CustomerName:  input.CustomerName,
		CustomerPhone: utils.NormalizePhone(input.CustomerPhone),
		CustomerEmail: input.CustomerEmail,
		ScheduledTime: input.ScheduledTime,
		Status:        models.StatusPending,
	}
	if ident.role == models.RoleCustomer {
		customerID := ident.userID
		appointment.CustomerID = &customerID
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": appointment})
}

// UpdateAppointmentStatus moves an appointment through its lifecycle.
func UpdateAppointmentStatus(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !input.Status.Valid() {
		utils.RespondWithFieldErrors(c, "Status validation failed",
			map[string]string{"status": "Unknown status"})
		return
	}

	var appointment models.Appointment
	if err := scopedAppointments(ident).Where("id = ?", appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !appointment.Status.CanTransition(input.Status) {
		utils.RespondWithFieldErrors(c, "Status validation failed", map[string]string{
			"status": "Cannot change status from " + string(appointment.Status) + " to " + string(input.Status),
		})
		return
	}

	appointment.Status = input.Status
	if err := config.DB.Save(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": appointment})
}

// DeleteAppointment removes an appointment. Returns 404 when the id does not
// exist within the caller's scope; deleting twice is therefore visible to the
// client as not-found, which it treats as already done.
func DeleteAppointment(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	result := scopedAppointments(ident).Where("id = ?", appointmentUUID).
		Delete(&models.Appointment{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.Status(http.StatusNoContent)
}
