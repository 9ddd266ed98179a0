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

// RecentWinnersLimit caps the recent-winners listing.
const RecentWinnersLimit = 10

// Compile-time check to ensure WinnerServiceImpl implements WinnerService
var _ WinnerService = (*WinnerServiceImpl)(nil)

type WinnerServiceImpl struct {
	winnerRepo      repositories.WinnerRepository
	submissionRepo  repositories.SubmissionRepository
	participantRepo repositories.ParticipantRepository
	contestRepo     repositories.ContestRepository
	userRepo        repositories.UserRepository
	txRunner        repositories.TxRunner
}

func NewWinnerService(
	winnerRepo repositories.WinnerRepository,
	submissionRepo repositories.SubmissionRepository,
	participantRepo repositories.ParticipantRepository,
	contestRepo repositories.ContestRepository,
	userRepo repositories.UserRepository,
	txRunner repositories.TxRunner,
) *WinnerServiceImpl {
	return &WinnerServiceImpl{
		winnerRepo:      winnerRepo,
		submissionRepo:  submissionRepo,
		participantRepo: participantRepo,
		contestRepo:     contestRepo,
		userRepo:        userRepo,
		txRunner:        txRunner,
	}
}

// Declare records the winner of a contest. Guards: the requester owns the
// contest, the contest is approved, no winner exists yet, and the chosen
// email actually submitted. Effects run as one transaction: winner row,
// submissions marked resolved, lifecycle moved to winner_declared.
func (s *WinnerServiceImpl) Declare(ctx context.Context, requesterEmail string, contestID primitive.ObjectID, winnerEmail string) (*models.Winner, error) {
	contest, err := s.contestRepo.FindByID(ctx, contestID)
	if err != nil {
		return nil, err
	}
	if contest.CreatorEmail != requesterEmail {
		return nil, ErrForbidden
	}
	if contest.Status != models.ContestApproved {
		if contest.Status == models.ContestWinnerDeclared {
			return nil, ErrWinnerDeclared
		}
		return nil, ErrInvalidTransition
	}

	if _, err := s.winnerRepo.FindByContestID(ctx, contestID); err == nil {
		return nil, ErrWinnerDeclared
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("look up winner: %w", err)
	}

	if _, err := s.submissionRepo.FindByContestAndEmail(ctx, contestID, winnerEmail); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("no submission from %s for this contest: %w", winnerEmail, err)
		}
		return nil, fmt.Errorf("look up submission: %w", err)
	}

	user, err := s.userRepo.FindByEmail(ctx, winnerEmail)
	if err != nil {
		return nil, err
	}

	winner := &models.Winner{
		ContestID:   contestID,
		Email:       winnerEmail,
		Name:        user.Name,
		PhotoURL:    user.PhotoURL,
		ContestName: contest.Name,
		PrizeMoney:  contest.PrizeMoney,
	}

	err = s.txRunner.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.winnerRepo.Create(txCtx, winner); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrWinnerDeclared
			}
			return fmt.Errorf("record winner: %w", err)
		}
		if err := s.submissionRepo.MarkDeclaredByContest(txCtx, contestID); err != nil {
			return fmt.Errorf("mark submissions resolved: %w", err)
		}
		if err := s.contestRepo.UpdateStatus(txCtx, contestID, models.ContestApproved, models.ContestWinnerDeclared); err != nil {
			return fmt.Errorf("close contest lifecycle: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("winner declared",
		"contestId", contestID.Hex(), "winner", winnerEmail, "prize", contest.PrizeMoney)
	return winner, nil
}

// GetRecent lists the latest declared winners
func (s *WinnerServiceImpl) GetRecent(ctx context.Context) ([]*models.Winner, error) {
	return s.winnerRepo.FindRecent(ctx, RecentWinnersLimit)
}

// Leaderboard computes the per-user participation/win projection
func (s *WinnerServiceImpl) Leaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	return s.participantRepo.Leaderboard(ctx)
}

// StatsFor computes the projection for one user. A user who never joined
// anything gets an all-zero entry rather than an error.
func (s *WinnerServiceImpl) StatsFor(ctx context.Context, email string) (*models.LeaderboardEntry, error) {
	entry, err := s.participantRepo.LeaderboardForEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.LeaderboardEntry{Email: email}, nil
		}
		return nil, err
	}
	return entry, nil
}
