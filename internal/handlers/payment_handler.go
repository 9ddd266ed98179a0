package handlers

import (
	"net/http"

	"github.com/SubrotoKumar7/article-arena-server/internal/middleware"
	"github.com/SubrotoKumar7/article-arena-server/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentHandler handles checkout and reconciliation HTTP requests
type PaymentHandler struct {
	paymentService services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateCheckout handles POST /payments/checkout
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	var request struct {
		ContestID string `json:"contestId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contestID, err := primitive.ObjectIDFromHex(request.ContestID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contest ID format"})
		return
	}

	url, err := h.paymentService.CreateCheckout(c.Request.Context(), middleware.CurrentEmail(c), contestID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// ReconcileSuccess handles PATCH /payments/success
func (h *PaymentHandler) ReconcileSuccess(c *gin.Context) {
	var request struct {
		SessionID string `json:"sessionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.paymentService.ReconcileSuccess(c.Request.Context(), middleware.CurrentEmail(c), request.SessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// GetMine handles GET /payments/mine
func (h *PaymentHandler) GetMine(c *gin.Context) {
	payments, err := h.paymentService.GetByEmail(c.Request.Context(), middleware.CurrentEmail(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get payments: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// GetJoined handles GET /participants/mine
func (h *PaymentHandler) GetJoined(c *gin.Context) {
	participants, err := h.paymentService.GetJoined(c.Request.Context(), middleware.CurrentEmail(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get joined contests: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, participants)
}
