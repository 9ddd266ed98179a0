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

// Compile-time check to ensure ParticipantRepository implements the interface
var _ repositories.ParticipantRepository = (*ParticipantRepository)(nil)

// ParticipantRepository handles MongoDB operations for Participant
type ParticipantRepository struct {
	collection *mongo.Collection
}

// NewParticipantRepository creates a new ParticipantRepository
func NewParticipantRepository(db *mongo.Database) *ParticipantRepository {
	return &ParticipantRepository{
		collection: db.Collection("participants"),
	}
}

// Create inserts a participant row. The unique (contestId, email) index makes
// a double join fail with a duplicate-key error.
func (r *ParticipantRepository) Create(ctx context.Context, participant *models.Participant) error {
	participant.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, participant)
	return err
}

// FindByContestAndEmail finds one participant row
func (r *ParticipantRepository) FindByContestAndEmail(ctx context.Context, contestID primitive.ObjectID, email string) (*models.Participant, error) {
	var participant models.Participant
	filter := bson.M{"contestId": contestID, "email": email}
	err := r.collection.FindOne(ctx, filter).Decode(&participant)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &participant, nil
}

// FindByEmail retrieves every contest a user has joined, newest first
func (r *ParticipantRepository) FindByEmail(ctx context.Context, email string) ([]*models.Participant, error) {
	opts := options.Find().SetSort(bson.M{"joinedAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var participants []*models.Participant
	if err = cursor.All(ctx, &participants); err != nil {
		return nil, err
	}
	if participants == nil {
		participants = []*models.Participant{}
	}
	return participants, nil
}

// MarkSubmitted flips the submitted flag for one participant
func (r *ParticipantRepository) MarkSubmitted(ctx context.Context, contestID primitive.ObjectID, email string) error {
	filter := bson.M{"contestId": contestID, "email": email}
	update := bson.M{"$set": bson.M{"submitted": true}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Leaderboard groups participants by email, left-joins their winner rows and
// projects participations, wins, prize total and win percentage.
func (r *ParticipantRepository) Leaderboard(ctx context.Context) ([]*models.LeaderboardEntry, error) {
	return r.aggregate(ctx, bson.M{})
}

// LeaderboardForEmail computes the same projection for a single user
func (r *ParticipantRepository) LeaderboardForEmail(ctx context.Context, email string) (*models.LeaderboardEntry, error) {
	entries, err := r.aggregate(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return entries[0], nil
}

func (r *ParticipantRepository) aggregate(ctx context.Context, match bson.M) ([]*models.LeaderboardEntry, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":            "$email",
			"name":           bson.M{"$first": "$userName"},
			"participations": bson.M{"$sum": 1},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "winners",
			"localField":   "_id",
			"foreignField": "email",
			"as":           "winnerDocs",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"wins":       bson.M{"$size": "$winnerDocs"},
			"totalPrize": bson.M{"$sum": "$winnerDocs.prizeMoney"},
		}}},
		{{Key: "$addFields", Value: bson.M{
			"winPercentage": bson.M{"$multiply": bson.A{
				bson.M{"$divide": bson.A{"$wins", "$participations"}},
				100,
			}},
		}}},
		{{Key: "$project", Value: bson.M{"winnerDocs": 0}}},
		{{Key: "$sort", Value: bson.M{"totalPrize": -1, "wins": -1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*models.LeaderboardEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*models.LeaderboardEntry{}
	}
	return entries, nil
}
