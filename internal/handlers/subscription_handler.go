package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pesowise/internal/errors"
	"pesowise/internal/services"
)

// SubscriptionHandler handles subscription-related requests.
type SubscriptionHandler struct {
	subscriptionService services.SubscriptionServicer
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(subscriptionService services.SubscriptionServicer) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// CreateSubscriptionRequest represents the request payload for creating a subscription
type CreateSubscriptionRequest struct {
	Name   string `json:"name" binding:"required,max=200"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
	DueDay int    `json:"due_day" binding:"required,min=1,max=31"`
}

// SubscriptionResponse represents a subscription in the response
type SubscriptionResponse struct {
	ID     uint   `json:"id"`
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
	DueDay int    `json:"due_day"`
}

// CreateSubscription handles the creation of a new subscription
// @Summary     Create a subscription
// @Description Create a recurring monthly obligation. Amount is centavos; due_day is a day of month (1-31).
// @Tags        subscriptions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateSubscriptionRequest true "Subscription details"
// @Success     201 {object} SubscriptionResponse "Subscription created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	subscription, err := h.subscriptionService.CreateSubscription(userID, req.Name, req.Amount, req.DueDay)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"subscription": subscription})
}

// GetUserSubscriptions handles the retrieval of the user's subscriptions
// @Summary     Get user subscriptions
// @Description Get the authenticated user's subscriptions ordered by due day
// @Tags        subscriptions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} SubscriptionResponse "Subscriptions"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subscriptions [get]
func (h *SubscriptionHandler) GetUserSubscriptions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	subscriptions, err := h.subscriptionService.GetUserSubscriptions(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscriptions": subscriptions})
}

// DeleteSubscription handles the deletion of a subscription
// @Summary     Delete subscription
// @Description Delete a subscription by ID. Deleting a missing or non-owned subscription succeeds with deleted=0.
// @Tags        subscriptions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Subscription ID"
// @Success     200 {object} MessageResponse "Delete processed"
// @Failure     400 {object} ErrorResponse "Invalid subscription ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subscriptions/{id} [delete]
func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	subscriptionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	deleted, err := h.subscriptionService.DeleteSubscription(userID, subscriptionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription delete processed", "deleted": deleted})
}
