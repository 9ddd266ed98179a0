package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is a participant's delivered work for a contest. WinnerDeclared
// flips for every submission of a contest once its winner is recorded; the
// winning entry itself is identified by the Winner document.
type Submission struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ContestID      primitive.ObjectID `bson:"contestId" json:"contestId"`
	Email          string             `bson:"email" json:"email"`
	Name           string             `bson:"name" json:"name"`
	SubmittedTask  string             `bson:"submittedTask" json:"submittedTask"`
	WinnerDeclared bool               `bson:"winnerDeclared" json:"winnerDeclared"`
	SubmittedAt    time.Time          `bson:"submittedAt" json:"submittedAt"`
}
