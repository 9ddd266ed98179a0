package payments

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// CheckoutRequest carries everything the provider needs to build a checkout
// session for one contest entry fee.
type CheckoutRequest struct {
	ContestID     string
	ContestName   string
	CustomerEmail string
	Amount        float64
	Currency      string
}

// CheckoutSession is the created session the client gets redirected to
type CheckoutSession struct {
	ID  string
	URL string
}

// SessionDetail is the provider's view of a session after checkout
type SessionDetail struct {
	SessionID     string
	TransactionID string
	Paid          bool
	ContestID     string
	CustomerEmail string
	Amount        float64
	Currency      string
}

// Gateway is the payment-provider surface the services depend on
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*SessionDetail, error)
}

// Compile-time check to ensure Client implements Gateway
var _ Gateway = (*Client)(nil)

// Client talks to Stripe Checkout. With MockAPI enabled it fabricates
// sessions in memory instead, every mock session reports as paid.
type Client struct {
	api        *client.API
	successURL string
	cancelURL  string
	mock       bool

	mu           sync.Mutex
	mockSessions map[string]CheckoutRequest
}

// NewClient creates a payment client
func NewClient(secretKey, successURL, cancelURL string, mock bool) *Client {
	c := &Client{
		successURL: successURL,
		cancelURL:  cancelURL,
		mock:       mock,
	}
	if mock {
		c.mockSessions = make(map[string]CheckoutRequest)
		return c
	}
	c.api = client.New(secretKey, nil)
	return c
}

// CreateCheckoutSession opens a checkout session for one contest entry.
// The contest id travels in the session metadata so reconciliation can find
// its way back without any server-side session store.
func (c *Client) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	if c.mock {
		return c.mockCreate(req)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(c.successURL),
		CancelURL:     stripe.String(c.cancelURL),
		CustomerEmail: stripe.String(req.CustomerEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(toMinorUnits(req.Amount)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ContestName),
					},
				},
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("contestId", req.ContestID)
	params.AddMetadata("contestName", req.ContestName)

	session, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	return &CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// GetCheckoutSession retrieves a session by id
func (c *Client) GetCheckoutSession(ctx context.Context, sessionID string) (*SessionDetail, error) {
	if c.mock {
		return c.mockGet(sessionID)
	}

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("payment_intent")

	session, err := c.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("retrieve checkout session: %w", err)
	}

	detail := &SessionDetail{
		SessionID: session.ID,
		Paid:      session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		ContestID: session.Metadata["contestId"],
		Amount:    float64(session.AmountTotal) / 100,
		Currency:  string(session.Currency),
	}
	if session.PaymentIntent != nil {
		detail.TransactionID = session.PaymentIntent.ID
	}
	if session.CustomerDetails != nil {
		detail.CustomerEmail = session.CustomerDetails.Email
	}
	return detail, nil
}

func (c *Client) mockCreate(req CheckoutRequest) (*CheckoutSession, error) {
	id := fmt.Sprintf("cs_mock_%012d", rand.Int63n(1_000_000_000_000))

	c.mu.Lock()
	c.mockSessions[id] = req
	c.mu.Unlock()

	return &CheckoutSession{ID: id, URL: c.successURL}, nil
}

func (c *Client) mockGet(sessionID string) (*SessionDetail, error) {
	c.mu.Lock()
	req, ok := c.mockSessions[sessionID]
	c.mu.Unlock()
	if !ok {
		return nil, errors.New("unknown checkout session")
	}

	return &SessionDetail{
		SessionID:     sessionID,
		TransactionID: "pi_" + sessionID,
		Paid:          true,
		ContestID:     req.ContestID,
		CustomerEmail: req.CustomerEmail,
		Amount:        req.Amount,
		Currency:      req.Currency,
	}, nil
}

// toMinorUnits converts a major-unit price to the provider's integer minor
// units, rounding to the nearest cent.
func toMinorUnits(amount float64) int64 {
	return int64(amount*100 + 0.5)
}
