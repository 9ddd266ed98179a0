package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContestStatus is the contest lifecycle. A contest is created pending, an
// admin resolves it to approved or rejected exactly once, and an approved
// contest moves to winner_declared when its winner is recorded. No other
// transitions exist.
type ContestStatus string

const (
	ContestPending        ContestStatus = "pending"
	ContestApproved       ContestStatus = "approved"
	ContestRejected       ContestStatus = "rejected"
	ContestWinnerDeclared ContestStatus = "winner_declared"
)

// CanTransition reports whether moving from s to next is a legal lifecycle step.
func (s ContestStatus) CanTransition(next ContestStatus) bool {
	switch s {
	case ContestPending:
		return next == ContestApproved || next == ContestRejected
	case ContestApproved:
		return next == ContestWinnerDeclared
	default:
		return false
	}
}

// Contest represents a creator-owned contest
type Contest struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name             string             `bson:"name" json:"name"`
	Image            string             `bson:"image,omitempty" json:"image,omitempty"`
	Description      string             `bson:"description" json:"description"`
	TaskInstruction  string             `bson:"taskInstruction,omitempty" json:"taskInstruction,omitempty"`
	Tag              string             `bson:"tag,omitempty" json:"tag,omitempty"`
	Price            float64            `bson:"price" json:"price"`
	PrizeMoney       float64            `bson:"prizeMoney" json:"prizeMoney"`
	Deadline         time.Time          `bson:"deadline" json:"deadline"`
	CreatorEmail     string             `bson:"creatorEmail" json:"creatorEmail"`
	CreatorName      string             `bson:"creatorName,omitempty" json:"creatorName,omitempty"`
	Status           ContestStatus      `bson:"status" json:"status"`
	ParticipantCount int64              `bson:"participantCount" json:"participantCount"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
