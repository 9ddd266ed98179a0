package handlers

import (
	"net/http"

	"github.com/SubrotoKumar7/article-arena-server/internal/middleware"
	"github.com/SubrotoKumar7/article-arena-server/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WinnerHandler handles winner declaration and reporting HTTP requests
type WinnerHandler struct {
	winnerService services.WinnerService
}

// NewWinnerHandler creates a new WinnerHandler
func NewWinnerHandler(winnerService services.WinnerService) *WinnerHandler {
	return &WinnerHandler{winnerService: winnerService}
}

// Declare handles POST /contests/:id/winner
func (h *WinnerHandler) Declare(c *gin.Context) {
	contestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var request struct {
		WinnerEmail string `json:"winnerEmail" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	winner, err := h.winnerService.Declare(c.Request.Context(), middleware.CurrentEmail(c), contestID, request.WinnerEmail)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, winner)
}

// GetRecent handles GET /winners/recent
func (h *WinnerHandler) GetRecent(c *gin.Context) {
	winners, err := h.winnerService.GetRecent(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get winners: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, winners)
}

// Leaderboard handles GET /leaderboard
func (h *WinnerHandler) Leaderboard(c *gin.Context) {
	entries, err := h.winnerService.Leaderboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get leaderboard: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// MyStats handles GET /stats/mine
func (h *WinnerHandler) MyStats(c *gin.Context) {
	entry, err := h.winnerService.StatsFor(c.Request.Context(), middleware.CurrentEmail(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get stats: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}
