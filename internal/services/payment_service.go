package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SubrotoKumar7/article-arena-server/internal/models"
	"github.com/SubrotoKumar7/article-arena-server/internal/repositories"
	"github.com/SubrotoKumar7/article-arena-server/pkg/payments"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure PaymentServiceImpl implements PaymentService
var _ PaymentService = (*PaymentServiceImpl)(nil)

type PaymentServiceImpl struct {
	gateway         payments.Gateway
	paymentRepo     repositories.PaymentRepository
	participantRepo repositories.ParticipantRepository
	contestRepo     repositories.ContestRepository
	userRepo        repositories.UserRepository
	txRunner        repositories.TxRunner
	currency        string
}

func NewPaymentService(
	gateway payments.Gateway,
	paymentRepo repositories.PaymentRepository,
	participantRepo repositories.ParticipantRepository,
	contestRepo repositories.ContestRepository,
	userRepo repositories.UserRepository,
	txRunner repositories.TxRunner,
	currency string,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		gateway:         gateway,
		paymentRepo:     paymentRepo,
		participantRepo: participantRepo,
		contestRepo:     contestRepo,
		userRepo:        userRepo,
		txRunner:        txRunner,
		currency:        currency,
	}
}

// CreateCheckout opens a provider checkout session for a contest entry fee.
// The contest must be approved with an open deadline, and the user must not
// have joined it before.
func (s *PaymentServiceImpl) CreateCheckout(ctx context.Context, email string, contestID primitive.ObjectID) (string, error) {
	contest, err := s.contestRepo.FindByID(ctx, contestID)
	if err != nil {
		return "", err
	}
	if contest.Status != models.ContestApproved {
		return "", ErrContestNotOpen
	}
	if !contest.Deadline.IsZero() && contest.Deadline.Before(time.Now()) {
		return "", ErrContestNotOpen
	}

	if _, err := s.participantRepo.FindByContestAndEmail(ctx, contestID, email); err == nil {
		return "", ErrAlreadyJoined
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", fmt.Errorf("look up participant: %w", err)
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, payments.CheckoutRequest{
		ContestID:     contestID.Hex(),
		ContestName:   contest.Name,
		CustomerEmail: email,
		Amount:        contest.Price,
		Currency:      s.currency,
	})
	if err != nil {
		return "", err
	}

	slog.Info("checkout session created",
		"sessionId", session.ID, "contestId", contestID.Hex(), "email", email)
	return session.URL, nil
}

// ReconcileSuccess turns a completed checkout session into durable records:
// one ledger row keyed by the provider's transaction id, one participant row
// and one counter increment, committed as a single transaction. The method
// is safe to replay: a known transaction id answers ErrPaymentRecorded
// before anything is written, and the unique indexes settle races between
// concurrent replays inside the transaction.
func (s *PaymentServiceImpl) ReconcileSuccess(ctx context.Context, email, sessionID string) (*models.Payment, error) {
	detail, err := s.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("retrieve checkout session: %w", err)
	}

	// The session records which customer paid it. Nobody else can claim
	// the entry, no matter how they learned the session id.
	if detail.CustomerEmail != "" && detail.CustomerEmail != email {
		slog.Warn("checkout session paid by a different customer",
			"sessionId", sessionID, "email", email)
		return nil, ErrForbidden
	}

	if _, err := s.paymentRepo.FindByTransactionID(ctx, detail.TransactionID); err == nil {
		return nil, ErrPaymentRecorded
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("look up payment: %w", err)
	}

	if !detail.Paid {
		slog.Warn("checkout session not paid", "sessionId", sessionID, "email", email)
		return nil, ErrPaymentNotCompleted
	}

	contestID, err := primitive.ObjectIDFromHex(detail.ContestID)
	if err != nil {
		return nil, fmt.Errorf("session %s carries no valid contest id: %w", sessionID, err)
	}

	contest, err := s.contestRepo.FindByID(ctx, contestID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		TransactionID: detail.TransactionID,
		ContestID:     contestID,
		Email:         email,
		Amount:        detail.Amount,
		Currency:      detail.Currency,
		PaidAt:        time.Now(),
	}
	participant := &models.Participant{
		ContestID:    contestID,
		Email:        email,
		ContestName:  contest.Name,
		ContestImage: contest.Image,
		PrizeMoney:   contest.PrizeMoney,
		Deadline:     contest.Deadline,
		UserName:     user.Name,
		UserPhotoURL: user.PhotoURL,
		Submitted:    false,
		JoinedAt:     time.Now(),
	}

	err = s.txRunner.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.paymentRepo.Create(txCtx, payment); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrPaymentRecorded
			}
			return fmt.Errorf("record payment: %w", err)
		}
		if err := s.participantRepo.Create(txCtx, participant); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrAlreadyJoined
			}
			return fmt.Errorf("record participant: %w", err)
		}
		if err := s.contestRepo.IncrementParticipantCount(txCtx, contestID); err != nil {
			return fmt.Errorf("increment participant count: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("payment reconciled",
		"transactionId", payment.TransactionID, "contestId", contestID.Hex(), "email", email)
	return payment, nil
}

// GetByEmail lists a payer's ledger rows
func (s *PaymentServiceImpl) GetByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	return s.paymentRepo.FindByEmail(ctx, email)
}

// GetJoined lists the contests a user has paid to join
func (s *PaymentServiceImpl) GetJoined(ctx context.Context, email string) ([]*models.Participant, error) {
	return s.participantRepo.FindByEmail(ctx, email)
}
