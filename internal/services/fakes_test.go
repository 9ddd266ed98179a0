package services

import (
	"context"

	"github.com/SubrotoKumar7/article-arena-server/internal/models"
	"github.com/SubrotoKumar7/article-arena-server/pkg/payments"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// errDuplicateKey mimics the driver's unique-index violation so the
// services' IsDuplicateKeyError branches are exercised for real.
var errDuplicateKey = mongo.WriteException{
	WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		r.users[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.Email]; ok {
		return errDuplicateKey
	}
	user.ID = primitive.NewObjectID()
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return user, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*models.User, error) {
	all := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, u)
	}
	return all, nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, email string, role models.Role) error {
	user, ok := r.users[email]
	if !ok {
		return mongo.ErrNoDocuments
	}
	user.Role = role
	return nil
}

type fakeContestRepo struct {
	contests     map[primitive.ObjectID]*models.Contest
	popularLimit int
	lastPage     int
	lastLimit    int
	total        int64
}

func newFakeContestRepo(contests ...*models.Contest) *fakeContestRepo {
	r := &fakeContestRepo{contests: make(map[primitive.ObjectID]*models.Contest)}
	for _, c := range contests {
		if c.ID.IsZero() {
			c.ID = primitive.NewObjectID()
		}
		r.contests[c.ID] = c
	}
	return r
}

func (r *fakeContestRepo) Create(_ context.Context, contest *models.Contest) error {
	contest.ID = primitive.NewObjectID()
	r.contests[contest.ID] = contest
	return nil
}

func (r *fakeContestRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Contest, error) {
	contest, ok := r.contests[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return contest, nil
}

func (r *fakeContestRepo) FindAll(_ context.Context) ([]*models.Contest, error) {
	all := make([]*models.Contest, 0, len(r.contests))
	for _, c := range r.contests {
		all = append(all, c)
	}
	return all, nil
}

func (r *fakeContestRepo) FindByCreator(_ context.Context, creatorEmail string) ([]*models.Contest, error) {
	var owned []*models.Contest
	for _, c := range r.contests {
		if c.CreatorEmail == creatorEmail {
			owned = append(owned, c)
		}
	}
	return owned, nil
}

func (r *fakeContestRepo) FindApproved(_ context.Context, _ string, page, limit int) ([]*models.Contest, int64, error) {
	r.lastPage = page
	r.lastLimit = limit
	return []*models.Contest{}, r.total, nil
}

func (r *fakeContestRepo) FindPopular(_ context.Context, limit int) ([]*models.Contest, error) {
	r.popularLimit = limit
	return []*models.Contest{}, nil
}

func (r *fakeContestRepo) Update(_ context.Context, contest *models.Contest) error {
	if _, ok := r.contests[contest.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.contests[contest.ID] = contest
	return nil
}

func (r *fakeContestRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, from, to models.ContestStatus) error {
	contest, ok := r.contests[id]
	if !ok || contest.Status != from {
		return mongo.ErrNoDocuments
	}
	contest.Status = to
	return nil
}

func (r *fakeContestRepo) IncrementParticipantCount(_ context.Context, id primitive.ObjectID) error {
	contest, ok := r.contests[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	contest.ParticipantCount++
	return nil
}

func (r *fakeContestRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.contests[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.contests, id)
	return nil
}

type fakePaymentRepo struct {
	payments map[string]*models.Payment
}

func newFakePaymentRepo(payments ...*models.Payment) *fakePaymentRepo {
	r := &fakePaymentRepo{payments: make(map[string]*models.Payment)}
	for _, p := range payments {
		r.payments[p.TransactionID] = p
	}
	return r
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *models.Payment) error {
	if _, ok := r.payments[payment.TransactionID]; ok {
		return errDuplicateKey
	}
	payment.ID = primitive.NewObjectID()
	r.payments[payment.TransactionID] = payment
	return nil
}

func (r *fakePaymentRepo) FindByTransactionID(_ context.Context, transactionID string) (*models.Payment, error) {
	payment, ok := r.payments[transactionID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return payment, nil
}

func (r *fakePaymentRepo) FindByEmail(_ context.Context, email string) ([]*models.Payment, error) {
	var out []*models.Payment
	for _, p := range r.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

type participantKey struct {
	contestID primitive.ObjectID
	email     string
}

type fakeParticipantRepo struct {
	participants map[participantKey]*models.Participant
	leaderboard  []*models.LeaderboardEntry
}

func newFakeParticipantRepo(participants ...*models.Participant) *fakeParticipantRepo {
	r := &fakeParticipantRepo{participants: make(map[participantKey]*models.Participant)}
	for _, p := range participants {
		r.participants[participantKey{p.ContestID, p.Email}] = p
	}
	return r
}

func (r *fakeParticipantRepo) Create(_ context.Context, participant *models.Participant) error {
	key := participantKey{participant.ContestID, participant.Email}
	if _, ok := r.participants[key]; ok {
		return errDuplicateKey
	}
	participant.ID = primitive.NewObjectID()
	r.participants[key] = participant
	return nil
}

func (r *fakeParticipantRepo) FindByContestAndEmail(_ context.Context, contestID primitive.ObjectID, email string) (*models.Participant, error) {
	participant, ok := r.participants[participantKey{contestID, email}]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return participant, nil
}

func (r *fakeParticipantRepo) FindByEmail(_ context.Context, email string) ([]*models.Participant, error) {
	var out []*models.Participant
	for _, p := range r.participants {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeParticipantRepo) MarkSubmitted(_ context.Context, contestID primitive.ObjectID, email string) error {
	participant, ok := r.participants[participantKey{contestID, email}]
	if !ok {
		return mongo.ErrNoDocuments
	}
	participant.Submitted = true
	return nil
}

func (r *fakeParticipantRepo) Leaderboard(_ context.Context) ([]*models.LeaderboardEntry, error) {
	return r.leaderboard, nil
}

func (r *fakeParticipantRepo) LeaderboardForEmail(_ context.Context, email string) (*models.LeaderboardEntry, error) {
	for _, e := range r.leaderboard {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type submissionKey struct {
	contestID primitive.ObjectID
	email     string
}

type fakeSubmissionRepo struct {
	submissions map[submissionKey]*models.Submission
}

func newFakeSubmissionRepo(submissions ...*models.Submission) *fakeSubmissionRepo {
	r := &fakeSubmissionRepo{submissions: make(map[submissionKey]*models.Submission)}
	for _, s := range submissions {
		r.submissions[submissionKey{s.ContestID, s.Email}] = s
	}
	return r
}

func (r *fakeSubmissionRepo) Create(_ context.Context, submission *models.Submission) error {
	submission.ID = primitive.NewObjectID()
	r.submissions[submissionKey{submission.ContestID, submission.Email}] = submission
	return nil
}

func (r *fakeSubmissionRepo) FindByContest(_ context.Context, contestID primitive.ObjectID) ([]*models.Submission, error) {
	var out []*models.Submission
	for _, s := range r.submissions {
		if s.ContestID == contestID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubmissionRepo) FindByContestAndEmail(_ context.Context, contestID primitive.ObjectID, email string) (*models.Submission, error) {
	submission, ok := r.submissions[submissionKey{contestID, email}]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return submission, nil
}

func (r *fakeSubmissionRepo) MarkDeclaredByContest(_ context.Context, contestID primitive.ObjectID) error {
	for _, s := range r.submissions {
		if s.ContestID == contestID {
			s.WinnerDeclared = true
		}
	}
	return nil
}

type fakeWinnerRepo struct {
	winners map[primitive.ObjectID]*models.Winner
}

func newFakeWinnerRepo(winners ...*models.Winner) *fakeWinnerRepo {
	r := &fakeWinnerRepo{winners: make(map[primitive.ObjectID]*models.Winner)}
	for _, w := range winners {
		r.winners[w.ContestID] = w
	}
	return r
}

func (r *fakeWinnerRepo) Create(_ context.Context, winner *models.Winner) error {
	if _, ok := r.winners[winner.ContestID]; ok {
		return errDuplicateKey
	}
	winner.ID = primitive.NewObjectID()
	r.winners[winner.ContestID] = winner
	return nil
}

func (r *fakeWinnerRepo) FindByContestID(_ context.Context, contestID primitive.ObjectID) (*models.Winner, error) {
	winner, ok := r.winners[contestID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return winner, nil
}

func (r *fakeWinnerRepo) FindRecent(_ context.Context, limit int) ([]*models.Winner, error) {
	out := make([]*models.Winner, 0, len(r.winners))
	for _, w := range r.winners {
		out = append(out, w)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeTxRunner runs the unit in place. When handed the fakes the unit
// writes to, an error from fn restores their pre-unit contents, matching
// the abort behavior of a real transaction. Unset fakes are skipped.
type fakeTxRunner struct {
	calls        int
	payments     *fakePaymentRepo
	participants *fakeParticipantRepo
	contests     *fakeContestRepo
}

func (t *fakeTxRunner) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	undo := t.snapshot()
	if err := fn(ctx); err != nil {
		undo()
		return err
	}
	return nil
}

func (t *fakeTxRunner) snapshot() func() {
	var paymentSnap map[string]*models.Payment
	if t.payments != nil {
		paymentSnap = make(map[string]*models.Payment, len(t.payments.payments))
		for k, v := range t.payments.payments {
			paymentSnap[k] = v
		}
	}
	var participantSnap map[participantKey]*models.Participant
	if t.participants != nil {
		participantSnap = make(map[participantKey]*models.Participant, len(t.participants.participants))
		for k, v := range t.participants.participants {
			participantSnap[k] = v
		}
	}
	var contestSnap map[primitive.ObjectID]models.Contest
	if t.contests != nil {
		contestSnap = make(map[primitive.ObjectID]models.Contest, len(t.contests.contests))
		for k, v := range t.contests.contests {
			contestSnap[k] = *v
		}
	}
	return func() {
		if t.payments != nil {
			t.payments.payments = paymentSnap
		}
		if t.participants != nil {
			t.participants.participants = participantSnap
		}
		if t.contests != nil {
			for k, v := range contestSnap {
				if stored, ok := t.contests.contests[k]; ok {
					*stored = v
				}
			}
		}
	}
}

type fakeGateway struct {
	sessions    map[string]*payments.SessionDetail
	lastRequest payments.CheckoutRequest
	createdURL  string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		sessions:   make(map[string]*payments.SessionDetail),
		createdURL: "https://checkout.example.com/session",
	}
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, req payments.CheckoutRequest) (*payments.CheckoutSession, error) {
	g.lastRequest = req
	return &payments.CheckoutSession{ID: "cs_test", URL: g.createdURL}, nil
}

func (g *fakeGateway) GetCheckoutSession(_ context.Context, sessionID string) (*payments.SessionDetail, error) {
	detail, ok := g.sessions[sessionID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return detail, nil
}
