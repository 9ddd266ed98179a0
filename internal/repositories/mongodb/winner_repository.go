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

// Compile-time check to ensure WinnerRepository implements the interface
var _ repositories.WinnerRepository = (*WinnerRepository)(nil)

// WinnerRepository handles MongoDB operations for Winner
type WinnerRepository struct {
	collection *mongo.Collection
}

// NewWinnerRepository creates a new WinnerRepository
func NewWinnerRepository(db *mongo.Database) *WinnerRepository {
	return &WinnerRepository{
		collection: db.Collection("winners"),
	}
}

// Create inserts the winner row. The unique index on contestId rejects a
// second winner for the same contest with a duplicate-key error.
func (r *WinnerRepository) Create(ctx context.Context, winner *models.Winner) error {
	winner.ID = primitive.NewObjectID()
	winner.DeclaredAt = time.Now()
	_, err := r.collection.InsertOne(ctx, winner)
	return err
}

// FindByContestID finds the winner of a contest
func (r *WinnerRepository) FindByContestID(ctx context.Context, contestID primitive.ObjectID) (*models.Winner, error) {
	var winner models.Winner
	err := r.collection.FindOne(ctx, bson.M{"contestId": contestID}).Decode(&winner)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &winner, nil
}

// FindRecent retrieves the most recently declared winners
func (r *WinnerRepository) FindRecent(ctx context.Context, limit int) ([]*models.Winner, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.M{"declaredAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var winners []*models.Winner
	if err = cursor.All(ctx, &winners); err != nil {
		return nil, err
	}
	if winners == nil {
		winners = []*models.Winner{}
	}
	return winners, nil
}
