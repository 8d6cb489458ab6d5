package ports

import (
	"context"

	"github.com/imharvol/bog-utils-bot/internal/domain"
)

// SubscriptionStore persists event subscriptions.
type SubscriptionStore interface {
	// Subscribe inserts a subscription after removing rows it subsumes.
	// Returns domain.ErrAlreadySubscribed if an equivalent or subsuming row
	// already exists.
	Subscribe(ctx context.Context, sub domain.Subscription) error

	// Unsubscribe removes subscriptions. A wildcard in either field deletes
	// by the remaining concrete field(s); two wildcards delete everything
	// for the user. An exact triple must exist, otherwise
	// domain.ErrNotSubscribed is returned.
	Unsubscribe(ctx context.Context, sub domain.Subscription) error

	// ListSubscriptions returns the user's subscriptions in insertion order.
	ListSubscriptions(ctx context.Context, userID int64) ([]domain.Subscription, error)

	// MatchSubscribers returns the distinct user ids whose subscriptions
	// match the event, honoring wildcards in both positions.
	MatchSubscribers(ctx context.Context, eventName, address string) ([]int64, error)
}

// UserStore persists chat users and their default address.
type UserStore interface {
	EnsureUser(ctx context.Context, id int64, username string) error
	SetAddress(ctx context.Context, id int64, address string) error
	ClearAddress(ctx context.Context, id int64) error
	// GetAddress returns the user's default address, empty when unset, or
	// domain.ErrNotRegistered when the user is unknown.
	GetAddress(ctx context.Context, id int64) (string, error)
}
