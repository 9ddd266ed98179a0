package mongodb

import (
	"context"

	"github.com/SubrotoKumar7/article-arena-server/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure TxRunner implements the interface
var _ repositories.TxRunner = (*TxRunner)(nil)

// TxRunner runs a function inside a MongoDB multi-document transaction.
// Repositories pick up the session through the context, so the payment
// reconciliation writes (ledger row, participant row, counter increment)
// commit or abort as one unit.
type TxRunner struct {
	client *mongo.Client
}

// NewTxRunner creates a new TxRunner
func NewTxRunner(client *mongo.Client) *TxRunner {
	return &TxRunner{client: client}
}

// WithinTransaction executes fn inside a session transaction. Any error from
// fn aborts the transaction and is returned unchanged.
func (t *TxRunner) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	return err
}
