package domain

import "errors"

var (
	// ErrAlreadySubscribed is returned when an equivalent or subsuming
	// subscription already exists for the user.
	ErrAlreadySubscribed = errors.New("already subscribed")

	// ErrNotSubscribed is returned when unsubscribing from an exact
	// subscription that does not exist.
	ErrNotSubscribed = errors.New("not subscribed")

	// ErrNotRegistered is returned for operations that require the user to
	// have talked to the bot before.
	ErrNotRegistered = errors.New("user not registered")

	// ErrInvalidExpectation is returned when an expectation constrains
	// neither the reply target nor the sender.
	ErrInvalidExpectation = errors.New("expectation must constrain a reply-to message, a sender, or both")
)
