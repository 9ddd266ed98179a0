package handlers

import (
	"net/http"
	"strconv"

	"github.com/SubrotoKumar7/article-arena-server/internal/middleware"
	"github.com/SubrotoKumar7/article-arena-server/internal/models"
	"github.com/SubrotoKumar7/article-arena-server/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContestHandler handles contest-related HTTP requests
type ContestHandler struct {
	contestService services.ContestService
}

// NewContestHandler creates a new ContestHandler
func NewContestHandler(contestService services.ContestService) *ContestHandler {
	return &ContestHandler{contestService: contestService}
}

// Create handles POST /contests
func (h *ContestHandler) Create(c *gin.Context) {
	var contest models.Contest
	if err := c.ShouldBindJSON(&contest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contest.CreatorEmail = middleware.CurrentEmail(c)

	if err := h.contestService.Create(c.Request.Context(), &contest); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contest)
}

// GetAll handles GET /contests
func (h *ContestHandler) GetAll(c *gin.Context) {
	contests, err := h.contestService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contests: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, contests)
}

// GetApproved handles GET /contests/approved
func (h *ContestHandler) GetApproved(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(services.DefaultPageLimit)))
	tag := c.Query("tag")

	result, err := h.contestService.GetApprovedPage(c.Request.Context(), tag, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contests: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPopular handles GET /contests/popular
func (h *ContestHandler) GetPopular(c *gin.Context) {
	contests, err := h.contestService.GetPopular(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contests: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, contests)
}

// GetByID handles GET /contests/:id
func (h *ContestHandler) GetByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	contest, err := h.contestService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, contest)
}

// GetMine handles GET /contests/mine
func (h *ContestHandler) GetMine(c *gin.Context) {
	contests, err := h.contestService.GetByCreator(c.Request.Context(), middleware.CurrentEmail(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contests: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, contests)
}

// Update handles PATCH /contests/:id
func (h *ContestHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var contest models.Contest
	if err := c.ShouldBindJSON(&contest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contest.ID = id

	if err := h.contestService.Update(c.Request.Context(), middleware.CurrentEmail(c), &contest); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, contest)
}

// Delete handles DELETE /contests/:id
func (h *ContestHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.contestService.Delete(c.Request.Context(), middleware.CurrentEmail(c), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "contest deleted"})
}

// Resolve handles PATCH /contests/:id/status
func (h *ContestHandler) Resolve(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var request struct {
		Status models.ContestStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contestService.Resolve(c.Request.Context(), id, request.Status); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "contest " + string(request.Status)})
}
