package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SubrotoKumar7/article-arena-server/internal/models"
	"github.com/SubrotoKumar7/article-arena-server/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure SubmissionServiceImpl implements SubmissionService
var _ SubmissionService = (*SubmissionServiceImpl)(nil)

type SubmissionServiceImpl struct {
	submissionRepo  repositories.SubmissionRepository
	participantRepo repositories.ParticipantRepository
	contestRepo     repositories.ContestRepository
}

func NewSubmissionService(
	submissionRepo repositories.SubmissionRepository,
	participantRepo repositories.ParticipantRepository,
	contestRepo repositories.ContestRepository,
) *SubmissionServiceImpl {
	return &SubmissionServiceImpl{
		submissionRepo:  submissionRepo,
		participantRepo: participantRepo,
		contestRepo:     contestRepo,
	}
}

// Submit stores a participant's work for a contest and flips the submitted
// flag. One submission per participant per contest.
func (s *SubmissionServiceImpl) Submit(ctx context.Context, email string, contestID primitive.ObjectID, task string) (*models.Submission, error) {
	contest, err := s.contestRepo.FindByID(ctx, contestID)
	if err != nil {
		return nil, err
	}
	if contest.Status != models.ContestApproved {
		return nil, ErrContestNotOpen
	}

	participant, err := s.participantRepo.FindByContestAndEmail(ctx, contestID, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotParticipant
		}
		return nil, fmt.Errorf("look up participant: %w", err)
	}
	if participant.Submitted {
		return nil, ErrAlreadySubmitted
	}

	submission := &models.Submission{
		ContestID:     contestID,
		Email:         email,
		Name:          participant.UserName,
		SubmittedTask: task,
		SubmittedAt:   time.Now(),
	}
	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}
	if err := s.participantRepo.MarkSubmitted(ctx, contestID, email); err != nil {
		return nil, fmt.Errorf("mark participant submitted: %w", err)
	}

	slog.Info("submission received", "contestId", contestID.Hex(), "email", email)
	return submission, nil
}

// GetByContest lists a contest's submissions for its owning creator
func (s *SubmissionServiceImpl) GetByContest(ctx context.Context, requesterEmail string, contestID primitive.ObjectID) ([]*models.Submission, error) {
	contest, err := s.contestRepo.FindByID(ctx, contestID)
	if err != nil {
		return nil, err
	}
	if contest.CreatorEmail != requesterEmail {
		return nil, ErrForbidden
	}
	return s.submissionRepo.FindByContest(ctx, contestID)
}
