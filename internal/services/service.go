package services

import (
	"context"

	"github.com/SubrotoKumar7/article-arena-server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService defines the interface for account operations
type UserService interface {
	// Register creates an account with the default role. Registering an
	// existing email fails with ErrUserExists and writes nothing.
	Register(ctx context.Context, user *models.User) error

	// GetAll lists every account.
	GetAll(ctx context.Context) ([]*models.User, error)

	// GetRole resolves an email to its role; unknown emails answer the
	// default role rather than an error.
	GetRole(ctx context.Context, email string) (models.Role, error)

	// UpdateRole sets the role of the account with the given email.
	UpdateRole(ctx context.Context, email string, role models.Role) error
}

// ContestService defines the interface for the contest lifecycle
type ContestService interface {
	// Create stores a new contest as pending with a zero participant count.
	Create(ctx context.Context, contest *models.Contest) error

	// GetByID retrieves one contest.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contest, error)

	// GetAll lists every contest regardless of status.
	GetAll(ctx context.Context) ([]*models.Contest, error)

	// GetByCreator lists the contests a creator owns.
	GetByCreator(ctx context.Context, creatorEmail string) ([]*models.Contest, error)

	// GetApprovedPage lists approved contests page by page, optionally
	// filtered by tag.
	GetApprovedPage(ctx context.Context, tag string, page, limit int) (*models.ContestPage, error)

	// GetPopular lists the approved contests with the most participants.
	GetPopular(ctx context.Context) ([]*models.Contest, error)

	// Update edits a contest; only the owning creator may edit and only
	// while the contest is still pending.
	Update(ctx context.Context, requesterEmail string, contest *models.Contest) error

	// Delete removes a contest; admins may delete any contest, creators
	// only their own pending ones.
	Delete(ctx context.Context, requesterEmail string, id primitive.ObjectID) error

	// Resolve is the admin decision point: pending moves to approved or
	// rejected, exactly once.
	Resolve(ctx context.Context, id primitive.ObjectID, to models.ContestStatus) error
}

// PaymentService defines the interface for checkout and reconciliation
type PaymentService interface {
	// CreateCheckout opens a provider checkout session for a contest entry
	// fee and returns the redirect URL.
	CreateCheckout(ctx context.Context, email string, contestID primitive.ObjectID) (string, error)

	// ReconcileSuccess converts a completed checkout session into a ledger
	// row and a participant row and bumps the contest counter, all as one
	// atomic unit. Replays are rejected with ErrPaymentRecorded.
	ReconcileSuccess(ctx context.Context, email, sessionID string) (*models.Payment, error)

	// GetByEmail lists a payer's ledger rows.
	GetByEmail(ctx context.Context, email string) ([]*models.Payment, error)

	// GetJoined lists the contests a user has paid to join.
	GetJoined(ctx context.Context, email string) ([]*models.Participant, error)
}

// SubmissionService defines the interface for contest submissions
type SubmissionService interface {
	// Submit stores a participant's work and flips the submitted flag.
	Submit(ctx context.Context, email string, contestID primitive.ObjectID, task string) (*models.Submission, error)

	// GetByContest lists a contest's submissions for its owning creator.
	GetByContest(ctx context.Context, requesterEmail string, contestID primitive.ObjectID) ([]*models.Submission, error)
}

// WinnerService defines the interface for winner declaration and reporting
type WinnerService interface {
	// Declare records the single winner of a contest, marks its submissions
	// resolved and closes the lifecycle. A second declaration fails with
	// ErrWinnerDeclared and mutates nothing.
	Declare(ctx context.Context, requesterEmail string, contestID primitive.ObjectID, winnerEmail string) (*models.Winner, error)

	// GetRecent lists the latest declared winners.
	GetRecent(ctx context.Context) ([]*models.Winner, error)

	// Leaderboard computes the per-user participation/win projection.
	Leaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error)

	// StatsFor computes the projection for one user.
	StatsFor(ctx context.Context, email string) (*models.LeaderboardEntry, error)
}
