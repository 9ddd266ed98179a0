package services

import "errors"

// Sentinel errors the handlers translate into HTTP statuses. Conflict-style
// errors keep the wording the API has always answered with.
var (
	// ErrUserExists is returned when registering an email that already has an account.
	ErrUserExists = errors.New("user already exists")

	// ErrPaymentRecorded is returned when a checkout session's transaction id
	// already has a ledger row, i.e. a replayed success callback.
	ErrPaymentRecorded = errors.New("Payment already exists")

	// ErrPaymentNotCompleted is returned when the provider reports the
	// session as not paid.
	ErrPaymentNotCompleted = errors.New("payment not completed")

	// ErrAlreadyJoined is returned when a user attempts a second join of the
	// same contest.
	ErrAlreadyJoined = errors.New("already joined this contest")

	// ErrContestNotOpen is returned when joining a contest that is not
	// approved or whose deadline has passed.
	ErrContestNotOpen = errors.New("contest is not open for joining")

	// ErrNotParticipant is returned when submitting to a contest the user
	// never joined.
	ErrNotParticipant = errors.New("not a participant of this contest")

	// ErrAlreadySubmitted is returned on a second submission for the same
	// contest.
	ErrAlreadySubmitted = errors.New("submission already exists")

	// ErrWinnerDeclared is returned when declaring a winner for a contest
	// that already has one.
	ErrWinnerDeclared = errors.New("winner already declared")

	// ErrInvalidTransition is returned for a lifecycle change the state
	// machine does not allow.
	ErrInvalidTransition = errors.New("invalid contest status transition")

	// ErrForbidden is returned when the requester does not own the resource
	// the operation is scoped to.
	ErrForbidden = errors.New("forbidden")
)
