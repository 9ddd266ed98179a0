package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is one row of the append-only entry-fee ledger. TransactionID is
// the payment provider's intent id and carries a unique index, so a ledger
// row is write-once per transaction.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	ContestID     primitive.ObjectID `bson:"contestId" json:"contestId"`
	Email         string             `bson:"email" json:"email"`
	Amount        float64            `bson:"amount" json:"amount"`
	Currency      string             `bson:"currency" json:"currency"`
	PaidAt        time.Time          `bson:"paidAt" json:"paidAt"`
}
