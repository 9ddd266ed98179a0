package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Winner records the single declared victor of a contest. ContestID carries a
// unique index, so a contest can never hold two winner documents.
type Winner struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ContestID   primitive.ObjectID `bson:"contestId" json:"contestId"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name" json:"name"`
	PhotoURL    string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	ContestName string             `bson:"contestName" json:"contestName"`
	PrizeMoney  float64            `bson:"prizeMoney" json:"prizeMoney"`
	DeclaredAt  time.Time          `bson:"declaredAt" json:"declaredAt"`
}
