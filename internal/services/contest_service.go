package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SubrotoKumar7/article-arena-server/internal/models"
	"github.com/SubrotoKumar7/article-arena-server/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PopularLimit caps the popular-contests listing.
const PopularLimit = 6

// DefaultPageLimit is the page size used when the client sends none.
const DefaultPageLimit = 10

// Compile-time check to ensure ContestServiceImpl implements ContestService
var _ ContestService = (*ContestServiceImpl)(nil)

type ContestServiceImpl struct {
	contestRepo repositories.ContestRepository
	userRepo    repositories.UserRepository
}

func NewContestService(contestRepo repositories.ContestRepository, userRepo repositories.UserRepository) *ContestServiceImpl {
	return &ContestServiceImpl{
		contestRepo: contestRepo,
		userRepo:    userRepo,
	}
}

// Create stores a new contest. Whatever the request carried, the lifecycle
// starts pending with nobody joined.
func (s *ContestServiceImpl) Create(ctx context.Context, contest *models.Contest) error {
	contest.Status = models.ContestPending
	contest.ParticipantCount = 0

	if err := s.contestRepo.Create(ctx, contest); err != nil {
		return fmt.Errorf("create contest: %w", err)
	}

	slog.Info("contest created", "contestId", contest.ID.Hex(), "creator", contest.CreatorEmail)
	return nil
}

// GetByID retrieves one contest
func (s *ContestServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contest, error) {
	return s.contestRepo.FindByID(ctx, id)
}

// GetAll lists every contest
func (s *ContestServiceImpl) GetAll(ctx context.Context) ([]*models.Contest, error) {
	return s.contestRepo.FindAll(ctx)
}

// GetByCreator lists a creator's own contests
func (s *ContestServiceImpl) GetByCreator(ctx context.Context, creatorEmail string) ([]*models.Contest, error) {
	return s.contestRepo.FindByCreator(ctx, creatorEmail)
}

// GetApprovedPage lists approved contests with skip/limit pagination and the
// total page count.
func (s *ContestServiceImpl) GetApprovedPage(ctx context.Context, tag string, page, limit int) (*models.ContestPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}

	contests, total, err := s.contestRepo.FindApproved(ctx, tag, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list approved contests: %w", err)
	}

	return &models.ContestPage{
		Contests:   contests,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
	}, nil
}

// GetPopular lists the most-joined approved contests
func (s *ContestServiceImpl) GetPopular(ctx context.Context) ([]*models.Contest, error) {
	return s.contestRepo.FindPopular(ctx, PopularLimit)
}

// Update edits a contest. Only the owning creator may edit, and only while
// the contest has not been resolved by an admin yet. A partial body edits
// only the fields it carries; omitted fields keep their stored values, and
// lifecycle fields are never editable. The passed contest is overwritten
// with the merged document.
func (s *ContestServiceImpl) Update(ctx context.Context, requesterEmail string, contest *models.Contest) error {
	existing, err := s.contestRepo.FindByID(ctx, contest.ID)
	if err != nil {
		return err
	}
	if existing.CreatorEmail != requesterEmail {
		return ErrForbidden
	}
	if existing.Status != models.ContestPending {
		return ErrInvalidTransition
	}

	if contest.Name != "" {
		existing.Name = contest.Name
	}
	if contest.Image != "" {
		existing.Image = contest.Image
	}
	if contest.Description != "" {
		existing.Description = contest.Description
	}
	if contest.TaskInstruction != "" {
		existing.TaskInstruction = contest.TaskInstruction
	}
	if contest.Tag != "" {
		existing.Tag = contest.Tag
	}
	if contest.Price > 0 {
		existing.Price = contest.Price
	}
	if contest.PrizeMoney > 0 {
		existing.PrizeMoney = contest.PrizeMoney
	}
	if !contest.Deadline.IsZero() {
		existing.Deadline = contest.Deadline
	}
	if contest.CreatorName != "" {
		existing.CreatorName = contest.CreatorName
	}

	if err := s.contestRepo.Update(ctx, existing); err != nil {
		return err
	}
	*contest = *existing
	return nil
}

// Delete removes a contest. Admins may remove anything, creators only their
// own still-pending contests.
func (s *ContestServiceImpl) Delete(ctx context.Context, requesterEmail string, id primitive.ObjectID) error {
	requester, err := s.userRepo.FindByEmail(ctx, requesterEmail)
	if err != nil {
		return err
	}

	if requester.Role != models.RoleAdmin {
		contest, err := s.contestRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if contest.CreatorEmail != requesterEmail {
			return ErrForbidden
		}
		if contest.Status != models.ContestPending {
			return ErrInvalidTransition
		}
	}

	if err := s.contestRepo.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("contest deleted", "contestId", id.Hex(), "requester", requesterEmail)
	return nil
}

// Resolve applies the admin decision to a pending contest
func (s *ContestServiceImpl) Resolve(ctx context.Context, id primitive.ObjectID, to models.ContestStatus) error {
	if !models.ContestPending.CanTransition(to) {
		return ErrInvalidTransition
	}

	if err := s.contestRepo.UpdateStatus(ctx, id, models.ContestPending, to); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Either the contest does not exist or it was resolved before;
			// tell the two cases apart for the caller.
			if _, findErr := s.contestRepo.FindByID(ctx, id); findErr != nil {
				return findErr
			}
			return ErrInvalidTransition
		}
		return err
	}

	slog.Info("contest resolved", "contestId", id.Hex(), "status", to)
	return nil
}
