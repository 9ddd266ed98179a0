package repositories

import (
	"context"

	"github.com/SubrotoKumar7/article-arena-server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TxRunner executes fn as one atomic unit. Repository calls made with the
// context passed to fn take part in the same multi-document transaction; any
// error from fn aborts the whole unit.
type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	UpdateRole(ctx context.Context, email string, role models.Role) error
}

// ContestRepository defines the interface for contest data operations
type ContestRepository interface {
	Create(ctx context.Context, contest *models.Contest) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contest, error)
	FindAll(ctx context.Context) ([]*models.Contest, error)
	FindByCreator(ctx context.Context, creatorEmail string) ([]*models.Contest, error)
	FindApproved(ctx context.Context, tag string, page, limit int) ([]*models.Contest, int64, error)
	FindPopular(ctx context.Context, limit int) ([]*models.Contest, error)
	Update(ctx context.Context, contest *models.Contest) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to models.ContestStatus) error
	IncrementParticipantCount(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PaymentRepository defines the interface for the entry-fee ledger
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error)
	FindByEmail(ctx context.Context, email string) ([]*models.Payment, error)
}

// ParticipantRepository defines the interface for participant data operations
type ParticipantRepository interface {
	Create(ctx context.Context, participant *models.Participant) error
	FindByContestAndEmail(ctx context.Context, contestID primitive.ObjectID, email string) (*models.Participant, error)
	FindByEmail(ctx context.Context, email string) ([]*models.Participant, error)
	MarkSubmitted(ctx context.Context, contestID primitive.ObjectID, email string) error
	Leaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error)
	LeaderboardForEmail(ctx context.Context, email string) (*models.LeaderboardEntry, error)
}

// SubmissionRepository defines the interface for submission data operations
type SubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	FindByContest(ctx context.Context, contestID primitive.ObjectID) ([]*models.Submission, error)
	FindByContestAndEmail(ctx context.Context, contestID primitive.ObjectID, email string) (*models.Submission, error)
	MarkDeclaredByContest(ctx context.Context, contestID primitive.ObjectID) error
}

// WinnerRepository defines the interface for winner data operations
type WinnerRepository interface {
	Create(ctx context.Context, winner *models.Winner) error
	FindByContestID(ctx context.Context, contestID primitive.ObjectID) (*models.Winner, error)
	FindRecent(ctx context.Context, limit int) ([]*models.Winner, error)
}
