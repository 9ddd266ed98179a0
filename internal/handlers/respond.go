package handlers

import (
	"errors"
	"net/http"

	"github.com/SubrotoKumar7/article-arena-server/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// respondServiceError maps service errors onto the HTTP taxonomy:
// conflicts answer 409 with the conventional message body, ownership
// failures 403, missing documents 404, unpaid sessions 402 and everything
// else 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserExists),
		errors.Is(err, services.ErrPaymentRecorded),
		errors.Is(err, services.ErrAlreadyJoined),
		errors.Is(err, services.ErrAlreadySubmitted),
		errors.Is(err, services.ErrWinnerDeclared),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrContestNotOpen):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrPaymentNotCompleted):
		c.JSON(http.StatusPaymentRequired, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrForbidden),
		errors.Is(err, services.ErrNotParticipant):
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
	case errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
