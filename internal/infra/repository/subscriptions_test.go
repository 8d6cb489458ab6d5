package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/imharvol/bog-utils-bot/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	return db
}

func TestSubscribeAndMatch(t *testing.T) {
	ctx := context.Background()
	repo := NewSubscriptionRepository(setupTestDB(t))

	require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 1, EventName: "OrderExecuted", Address: "0xabc"}))

	userIDs, err := repo.MatchSubscribers(ctx, "OrderExecuted", "0xabc")
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, userIDs)

	userIDs, err = repo.MatchSubscribers(ctx, "OrderExecuted", "0xother")
	require.NoError(t, err)
	assert.Empty(t, userIDs)

	userIDs, err = repo.MatchSubscribers(ctx, "OrderCancelled", "0xabc")
	require.NoError(t, err)
	assert.Empty(t, userIDs)
}

func TestSubscribeRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewSubscriptionRepository(setupTestDB(t))

	sub := domain.Subscription{UserID: 1, EventName: "OrderExecuted", Address: "0xabc"}
	require.NoError(t, repo.Subscribe(ctx, sub))
	assert.ErrorIs(t, repo.Subscribe(ctx, sub), domain.ErrAlreadySubscribed)
}

func TestSubscribeRejectsSubsumed(t *testing.T) {
	ctx := context.Background()
	repo := NewSubscriptionRepository(setupTestDB(t))

	require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 1, EventName: domain.Wildcard, Address: "0xabc"}))

	// A concrete subscription already covered by the wildcard is redundant.
	err := repo.Subscribe(ctx, domain.Subscription{UserID: 1, EventName: "OrderExecuted", Address: "0xabc"})
	assert.ErrorIs(t, err, domain.ErrAlreadySubscribed)

	// A different address is not covered.
	require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 1, EventName: "OrderExecuted", Address: "0xdef"}))
}

func TestSubscribeWildcardReplacesSubsumedRows(t *testing.T) {
	ctx := context.Background()
	repo := NewSubscriptionRepository(setupTestDB(t))

	require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 1, EventName: "OrderExecuted", Address: "0xabc"}))
	require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 1, EventName: "OrderCancelled", Address: "0xabc"}))
	require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 1, EventName: "OrderExecuted", Address: "0xdef"}))

	require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 1, EventName: domain.Wildcard, Address: "0xabc"}))

	subs, err := repo.ListSubscriptions(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.Subscription{
		{UserID: 1, EventName: "OrderExecuted", Address: "0xdef"},
		{UserID: 1, EventName: domain.Wildcard, Address: "0xabc"},
	}, subs)
}

func TestMatchSubscribersWildcards(t *testing.T) {
	ctx := context.Background()
	repo := NewSubscriptionRepository(setupTestDB(t))

	require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 1, EventName: "OrderExecuted", Address: "0xabc"}))
	require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 2, EventName: domain.Wildcard, Address: "0xabc"}))
	require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 3, EventName: "OrderExecuted", Address: domain.Wildcard}))
	require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 4, EventName: domain.Wildcard, Address: domain.Wildcard}))
	require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 5, EventName: "OrderCancelled", Address: "0xdef"}))

	userIDs, err := repo.MatchSubscribers(ctx, "OrderExecuted", "0xabc")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, userIDs)
}

func TestMatchSubscribersDeduplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewSubscriptionRepository(setupTestDB(t))

	require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 1, EventName: "OrderExecuted", Address: "0xabc"}))
	require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 1, EventName: domain.Wildcard, Address: "0xdef"}))
	require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 1, EventName: "OrderCancelled", Address: domain.Wildcard}))

	userIDs, err := repo.MatchSubscribers(ctx, "OrderCancelled", "0xdef")
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, userIDs)
}

func TestUnsubscribeExact(t *testing.T) {
	ctx := context.Background()
	repo := NewSubscriptionRepository(setupTestDB(t))

	sub := domain.Subscription{UserID: 1, EventName: "OrderExecuted", Address: "0xabc"}
	require.NoError(t, repo.Subscribe(ctx, sub))
	require.NoError(t, repo.Unsubscribe(ctx, sub))

	subs, err := repo.ListSubscriptions(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, subs)

	assert.ErrorIs(t, repo.Unsubscribe(ctx, sub), domain.ErrNotSubscribed)
}

func TestUnsubscribeWildcards(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, repo *SubscriptionRepository) {
		require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 1, EventName: "OrderExecuted", Address: "0xabc"}))
		require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 1, EventName: "OrderCancelled", Address: "0xabc"}))
		require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 1, EventName: "OrderExecuted", Address: "0xdef"}))
		require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 2, EventName: "OrderExecuted", Address: "0xabc"}))
	}

	t.Run("both wildcards remove everything for the user", func(t *testing.T) {
		repo := NewSubscriptionRepository(setupTestDB(t))
		seed(t, repo)

		require.NoError(t, repo.Unsubscribe(ctx, domain.Subscription{UserID: 1, EventName: domain.Wildcard, Address: domain.Wildcard}))

		subs, err := repo.ListSubscriptions(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, subs)

		// The other user's rows are untouched.
		subs, err = repo.ListSubscriptions(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, subs, 1)
	})

	t.Run("event wildcard removes by address", func(t *testing.T) {
		repo := NewSubscriptionRepository(setupTestDB(t))
		seed(t, repo)

		require.NoError(t, repo.Unsubscribe(ctx, domain.Subscription{UserID: 1, EventName: domain.Wildcard, Address: "0xabc"}))

		subs, err := repo.ListSubscriptions(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []domain.Subscription{
			{UserID: 1, EventName: "OrderExecuted", Address: "0xdef"},
		}, subs)
	})

	t.Run("address wildcard removes by event", func(t *testing.T) {
		repo := NewSubscriptionRepository(setupTestDB(t))
		seed(t, repo)

		require.NoError(t, repo.Unsubscribe(ctx, domain.Subscription{UserID: 1, EventName: "OrderExecuted", Address: domain.Wildcard}))

		subs, err := repo.ListSubscriptions(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []domain.Subscription{
			{UserID: 1, EventName: "OrderCancelled", Address: "0xabc"},
		}, subs)
	})
}

func TestListSubscriptionsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewSubscriptionRepository(setupTestDB(t))

	require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 1, EventName: "OrderFailed", Address: "0xccc"}))
	require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 1, EventName: "OrderExecuted", Address: "0xaaa"}))
	require.NoError(t, repo.Subscribe(ctx, domain.Subscription{UserID: 1, EventName: "OrderCancelled", Address: "0xbbb"}))

	subs, err := repo.ListSubscriptions(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.Subscription{
		{UserID: 1, EventName: "OrderFailed", Address: "0xccc"},
		{UserID: 1, EventName: "OrderExecuted", Address: "0xaaa"},
		{UserID: 1, EventName: "OrderCancelled", Address: "0xbbb"},
	}, subs)
}
