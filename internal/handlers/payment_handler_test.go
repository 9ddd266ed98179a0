package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/SubrotoKumar7/article-arena-server/internal/middleware"
	"github.com/SubrotoKumar7/article-arena-server/internal/models"
	"github.com/SubrotoKumar7/article-arena-server/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubPaymentService struct {
	checkoutURL  string
	checkoutErr  error
	reconcileErr error
	payment      *models.Payment
}

func (s *stubPaymentService) CreateCheckout(_ context.Context, _ string, _ primitive.ObjectID) (string, error) {
	return s.checkoutURL, s.checkoutErr
}

func (s *stubPaymentService) ReconcileSuccess(_ context.Context, _, _ string) (*models.Payment, error) {
	if s.reconcileErr != nil {
		return nil, s.reconcileErr
	}
	return s.payment, nil
}

func (s *stubPaymentService) GetByEmail(_ context.Context, _ string) ([]*models.Payment, error) {
	return []*models.Payment{}, nil
}

func (s *stubPaymentService) GetJoined(_ context.Context, _ string) ([]*models.Participant, error) {
	return []*models.Participant{}, nil
}

func paymentRouter(stub *stubPaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	// Stand-in for Authenticate: requests arrive with a verified email.
	router.Use(func(c *gin.Context) {
		c.Set(middleware.EmailKey, "alice@example.com")
	})
	h := NewPaymentHandler(stub)
	router.POST("/payments/checkout", h.CreateCheckout)
	router.PATCH("/payments/success", h.ReconcileSuccess)
	return router
}

func TestCreateCheckoutReturnsRedirectURL(t *testing.T) {
	router := paymentRouter(&stubPaymentService{checkoutURL: "https://checkout.example.com/cs_1"})

	w := performJSON(router, http.MethodPost, "/payments/checkout", gin.H{"contestId": primitive.NewObjectID().Hex()})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://checkout.example.com/cs_1")
}

func TestCreateCheckoutRejectsMalformedContestID(t *testing.T) {
	router := paymentRouter(&stubPaymentService{})

	w := performJSON(router, http.MethodPost, "/payments/checkout", gin.H{"contestId": "not-an-id"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReconcileSuccessReturnsPayment(t *testing.T) {
	router := paymentRouter(&stubPaymentService{payment: &models.Payment{TransactionID: "pi_1", Amount: 25}})

	w := performJSON(router, http.MethodPatch, "/payments/success", gin.H{"sessionId": "cs_1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pi_1")
}

func TestReconcileSuccessReplayAnswersConflict(t *testing.T) {
	router := paymentRouter(&stubPaymentService{reconcileErr: services.ErrPaymentRecorded})

	w := performJSON(router, http.MethodPatch, "/payments/success", gin.H{"sessionId": "cs_1"})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Payment already exists")
}

func TestReconcileSuccessUnpaidAnswersPaymentRequired(t *testing.T) {
	router := paymentRouter(&stubPaymentService{reconcileErr: services.ErrPaymentNotCompleted})

	w := performJSON(router, http.MethodPatch, "/payments/success", gin.H{"sessionId": "cs_1"})
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}
