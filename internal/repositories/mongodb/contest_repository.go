package mongodb

import (
	"context"
	"time"

	"github.com/SubrotoKumar7/article-arena-server/internal/models"
	"github.com/SubrotoKumar7/article-arena-server/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure ContestRepository implements the interface
var _ repositories.ContestRepository = (*ContestRepository)(nil)

// ContestRepository handles MongoDB operations for Contest
type ContestRepository struct {
	collection *mongo.Collection
}

// NewContestRepository creates a new ContestRepository
func NewContestRepository(db *mongo.Database) *ContestRepository {
	return &ContestRepository{
		collection: db.Collection("contests"),
	}
}

// Create inserts a new contest
func (r *ContestRepository) Create(ctx context.Context, contest *models.Contest) error {
	contest.ID = primitive.NewObjectID()
	contest.CreatedAt = time.Now()
	contest.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, contest)
	return err
}

// FindByID finds a contest by ID
func (r *ContestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Contest, error) {
	var contest models.Contest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&contest)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &contest, nil
}

// FindAll retrieves all contests regardless of status
func (r *ContestRepository) FindAll(ctx context.Context) ([]*models.Contest, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	return r.findMany(ctx, bson.M{}, opts)
}

// FindByCreator retrieves all contests owned by a creator
func (r *ContestRepository) FindByCreator(ctx context.Context, creatorEmail string) ([]*models.Contest, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	return r.findMany(ctx, bson.M{"creatorEmail": creatorEmail}, opts)
}

// FindApproved retrieves a page of approved contests (winner-declared ones
// included, they were approved before resolving) with an optional tag filter.
// Returns the page and the total match count for page arithmetic.
func (r *ContestRepository) FindApproved(ctx context.Context, tag string, page, limit int) ([]*models.Contest, int64, error) {
	filter := bson.M{"status": bson.M{"$in": []models.ContestStatus{models.ContestApproved, models.ContestWinnerDeclared}}}
	if tag != "" {
		filter["tag"] = tag
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	contests, err := r.findMany(ctx, filter, pageFindOptions(page, limit))
	if err != nil {
		return nil, 0, err
	}
	return contests, total, nil
}

// FindPopular retrieves approved contests ranked by participant count descending
func (r *ContestRepository) FindPopular(ctx context.Context, limit int) ([]*models.Contest, error) {
	filter := bson.M{"status": bson.M{"$in": []models.ContestStatus{models.ContestApproved, models.ContestWinnerDeclared}}}
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.M{"participantCount": -1})
	return r.findMany(ctx, filter, opts)
}

// pageFindOptions translates one-based page arithmetic into the driver's
// skip/limit options, newest contests first.
func pageFindOptions(page, limit int) *options.FindOptions {
	return options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"createdAt": -1})
}

// Update persists a full contest document; callers merge partial edits
// into the stored state before handing it over
func (r *ContestRepository) Update(ctx context.Context, contest *models.Contest) error {
	contest.UpdatedAt = time.Now()
	filter := bson.M{"_id": contest.ID}
	update := bson.M{"$set": contest}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// UpdateStatus moves a contest from one lifecycle status to another. The
// current status is part of the filter, so a concurrent transition loses
// cleanly with ErrNoDocuments instead of overwriting the earlier decision.
func (r *ContestRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to models.ContestStatus) error {
	filter := bson.M{"_id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// IncrementParticipantCount atomically bumps the participant counter
func (r *ContestRepository) IncrementParticipantCount(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$inc": bson.M{"participantCount": 1}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete deletes a contest by ID
func (r *ContestRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *ContestRepository) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.Contest, error) {
	var contests []*models.Contest
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &contests); err != nil {
		return nil, err
	}
	if contests == nil {
		contests = []*models.Contest{}
	}
	return contests, nil
}
