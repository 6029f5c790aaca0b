// controllers/subscription.go
package controllers

import (
	"net/http"

	"github.com/BelskviK/Styler-sub001/config"
	"github.com/BelskviK/Styler-sub001/models"
	"github.com/BelskviK/Styler-sub001/services"
	"github.com/BelskviK/Styler-sub001/utils"

	"github.com/gin-gonic/gin"
)

type CreateSubscriptionInput struct {
	PlanID string `json:"planId" binding:"required"`
}

// CreateSubscription subscribes the signed-in user to a paid plan via the
// payment provider and records the result.
func CreateSubscription(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		return
	}

	var input CreateSubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", ident.userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	paymentSvc := services.NewPaymentService()
	subscriptionID, err := paymentSvc.CreateSubscription(input.PlanID, user.ID.String(), user.Email)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Payment provider error")
		return
	}

	subscription := models.Subscription{
		UserID:               user.ID,
		PlanID:               input.PlanID,
		StripeSubscriptionID: subscriptionID,
		Status:               "active",
	}
	if err := config.DB.Create(&subscription).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record subscription")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":        true,
		"subscriptionId": subscriptionID,
	})
}
