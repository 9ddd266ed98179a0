package mongodb

import (
	"context"

	"github.com/SubrotoKumar7/article-arena-server/internal/models"
	"github.com/SubrotoKumar7/article-arena-server/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure SubmissionRepository implements the interface
var _ repositories.SubmissionRepository = (*SubmissionRepository)(nil)

// SubmissionRepository handles MongoDB operations for Submission
type SubmissionRepository struct {
	collection *mongo.Collection
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{
		collection: db.Collection("submissions"),
	}
}

// Create appends a submission
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	submission.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, submission)
	return err
}

// FindByContest retrieves all submissions for a contest, newest first
func (r *SubmissionRepository) FindByContest(ctx context.Context, contestID primitive.ObjectID) ([]*models.Submission, error) {
	opts := options.Find().SetSort(bson.M{"submittedAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"contestId": contestID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []*models.Submission
	if err = cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	if submissions == nil {
		submissions = []*models.Submission{}
	}
	return submissions, nil
}

// FindByContestAndEmail finds one participant's submission for a contest
func (r *SubmissionRepository) FindByContestAndEmail(ctx context.Context, contestID primitive.ObjectID, email string) (*models.Submission, error) {
	var submission models.Submission
	filter := bson.M{"contestId": contestID, "email": email}
	err := r.collection.FindOne(ctx, filter).Decode(&submission)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &submission, nil
}

// MarkDeclaredByContest flags every submission of a contest as resolved.
// Intentionally a bulk update: the flag means "this contest has its winner",
// the winning entry itself lives in the winners collection.
func (r *SubmissionRepository) MarkDeclaredByContest(ctx context.Context, contestID primitive.ObjectID) error {
	filter := bson.M{"contestId": contestID}
	update := bson.M{"$set": bson.M{"winnerDeclared": true}}
	_, err := r.collection.UpdateMany(ctx, filter, update)
	return err
}
