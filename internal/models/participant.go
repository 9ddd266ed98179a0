package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Participant links a paid user to a contest. It exists only as the outcome
// of a reconciled payment and carries denormalized contest and user display
// fields so joined-contest listings need no extra lookups. (contestId, email)
// has a unique compound index.
type Participant struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ContestID    primitive.ObjectID `bson:"contestId" json:"contestId"`
	Email        string             `bson:"email" json:"email"`
	ContestName  string             `bson:"contestName" json:"contestName"`
	ContestImage string             `bson:"contestImage,omitempty" json:"contestImage,omitempty"`
	PrizeMoney   float64            `bson:"prizeMoney" json:"prizeMoney"`
	Deadline     time.Time          `bson:"deadline" json:"deadline"`
	UserName     string             `bson:"userName" json:"userName"`
	UserPhotoURL string             `bson:"userPhotoURL,omitempty" json:"userPhotoURL,omitempty"`
	Submitted    bool               `bson:"submitted" json:"submitted"`
	JoinedAt     time.Time          `bson:"joinedAt" json:"joinedAt"`
}
