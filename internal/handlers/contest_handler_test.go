package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/SubrotoKumar7/article-arena-server/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubContestService struct {
	lastTag   string
	lastPage  int
	lastLimit int
	popular   []*models.Contest
}

func (s *stubContestService) Create(_ context.Context, _ *models.Contest) error { return nil }

func (s *stubContestService) GetByID(_ context.Context, _ primitive.ObjectID) (*models.Contest, error) {
	return &models.Contest{}, nil
}

func (s *stubContestService) GetAll(_ context.Context) ([]*models.Contest, error) { return nil, nil }

func (s *stubContestService) GetByCreator(_ context.Context, _ string) ([]*models.Contest, error) {
	return nil, nil
}

func (s *stubContestService) GetApprovedPage(_ context.Context, tag string, page, limit int) (*models.ContestPage, error) {
	s.lastTag = tag
	s.lastPage = page
	s.lastLimit = limit
	return &models.ContestPage{Contests: []*models.Contest{}, Page: page, Limit: limit}, nil
}

func (s *stubContestService) GetPopular(_ context.Context) ([]*models.Contest, error) {
	return s.popular, nil
}

func (s *stubContestService) Update(_ context.Context, _ string, _ *models.Contest) error {
	return nil
}

func (s *stubContestService) Delete(_ context.Context, _ string, _ primitive.ObjectID) error {
	return nil
}

func (s *stubContestService) Resolve(_ context.Context, _ primitive.ObjectID, _ models.ContestStatus) error {
	return nil
}

func TestGetApprovedParsesQueryParameters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubContestService{}
	router := gin.New()
	router.GET("/contests/approved", NewContestHandler(stub).GetApproved)

	w := performJSON(router, http.MethodGet, "/contests/approved?page=2&limit=10&tag=fiction", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, stub.lastPage)
	assert.Equal(t, 10, stub.lastLimit)
	assert.Equal(t, "fiction", stub.lastTag)
}

func TestGetApprovedDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubContestService{}
	router := gin.New()
	router.GET("/contests/approved", NewContestHandler(stub).GetApproved)

	w := performJSON(router, http.MethodGet, "/contests/approved", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, stub.lastPage)
	assert.Equal(t, 10, stub.lastLimit)
}

func TestGetByIDRejectsMalformedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/contests/:id", NewContestHandler(&stubContestService{}).GetByID)

	w := performJSON(router, http.MethodGet, "/contests/xyz", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
