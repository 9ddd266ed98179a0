package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes the invariants depend on:
// one account per email, one ledger row per transaction, one join per
// (contest, email) pair and one winner per contest. Safe to call on every
// startup, index creation is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		"contests": {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "participantCount", Value: -1}}},
			{Keys: bson.D{{Key: "creatorEmail", Value: 1}}},
		},
		"payments": {
			{Keys: bson.D{{Key: "transactionId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}},
		},
		"participants": {
			{Keys: bson.D{{Key: "contestId", Value: 1}, {Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}},
		},
		"submissions": {
			{Keys: bson.D{{Key: "contestId", Value: 1}, {Key: "email", Value: 1}}},
		},
		"winners": {
			{Keys: bson.D{{Key: "contestId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "declaredAt", Value: -1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
