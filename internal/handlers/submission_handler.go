package handlers

import (
	"net/http"

	"github.com/SubrotoKumar7/article-arena-server/internal/middleware"
	"github.com/SubrotoKumar7/article-arena-server/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubmissionHandler handles submission-related HTTP requests
type SubmissionHandler struct {
	submissionService services.SubmissionService
}

// NewSubmissionHandler creates a new SubmissionHandler
func NewSubmissionHandler(submissionService services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// Submit handles POST /submissions
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var request struct {
		ContestID     string `json:"contestId" binding:"required"`
		SubmittedTask string `json:"submittedTask" binding:"required"`
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

	submission, err := h.submissionService.Submit(c.Request.Context(), middleware.CurrentEmail(c), contestID, request.SubmittedTask)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, submission)
}

// GetByContest handles GET /contests/:id/submissions
func (h *SubmissionHandler) GetByContest(c *gin.Context) {
	contestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	submissions, err := h.submissionService.GetByContest(c.Request.Context(), middleware.CurrentEmail(c), contestID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submissions)
}
