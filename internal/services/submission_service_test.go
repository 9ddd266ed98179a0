package services

import (
	"context"
	"testing"

	"github.com/SubrotoKumar7/article-arena-server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func submissionFixture() (*SubmissionServiceImpl, *fakeSubmissionRepo, *fakeParticipantRepo, *models.Contest) {
	contest := &models.Contest{
		ID:           primitive.NewObjectID(),
		Name:         "Haiku Battle",
		CreatorEmail: "carol@example.com",
		Status:       models.ContestApproved,
	}
	submissionRepo := newFakeSubmissionRepo()
	participantRepo := newFakeParticipantRepo(&models.Participant{
		ContestID: contest.ID,
		Email:     "alice@example.com",
		UserName:  "Alice",
	})
	svc := NewSubmissionService(submissionRepo, participantRepo, newFakeContestRepo(contest))
	return svc, submissionRepo, participantRepo, contest
}

func TestSubmitStoresWorkAndFlipsFlag(t *testing.T) {
	svc, submissionRepo, participantRepo, contest := submissionFixture()

	submission, err := svc.Submit(context.Background(), "alice@example.com", contest.ID, "my haiku")
	require.NoError(t, err)

	assert.Equal(t, "my haiku", submission.SubmittedTask)
	assert.Equal(t, "Alice", submission.Name)
	assert.False(t, submission.WinnerDeclared)
	assert.Len(t, submissionRepo.submissions, 1)

	participant := participantRepo.participants[participantKey{contest.ID, "alice@example.com"}]
	assert.True(t, participant.Submitted)
}

func TestSubmitRequiresParticipation(t *testing.T) {
	svc, submissionRepo, _, contest := submissionFixture()

	_, err := svc.Submit(context.Background(), "lurker@example.com", contest.ID, "drive-by entry")
	assert.ErrorIs(t, err, ErrNotParticipant)
	assert.Empty(t, submissionRepo.submissions)
}

func TestSubmitTwice(t *testing.T) {
	svc, submissionRepo, _, contest := submissionFixture()

	_, err := svc.Submit(context.Background(), "alice@example.com", contest.ID, "first")
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), "alice@example.com", contest.ID, "second")
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Len(t, submissionRepo.submissions, 1)
}

func TestSubmitRequiresOpenContest(t *testing.T) {
	svc, _, _, contest := submissionFixture()
	contest.Status = models.ContestWinnerDeclared

	_, err := svc.Submit(context.Background(), "alice@example.com", contest.ID, "too late")
	assert.ErrorIs(t, err, ErrContestNotOpen)
}

func TestGetByContestRequiresOwnership(t *testing.T) {
	svc, _, _, contest := submissionFixture()

	_, err := svc.GetByContest(context.Background(), "mallory@example.com", contest.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetByContest(context.Background(), "carol@example.com", contest.ID)
	assert.NoError(t, err)
}
