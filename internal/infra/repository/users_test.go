package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imharvol/bog-utils-bot/internal/domain"
)

func TestEnsureUserIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	require.NoError(t, repo.EnsureUser(ctx, 42, "alice"))
	require.NoError(t, repo.EnsureUser(ctx, 42, "alice-renamed"))

	var record userRecord
	require.NoError(t, repo.db.First(&record, "id = ?", 42).Error)
	require.NotNil(t, record.Username)
	assert.Equal(t, "alice", *record.Username)
}

func TestEnsureUserWithoutUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	// Several users without a public username must not collide on the
	// username index.
	require.NoError(t, repo.EnsureUser(ctx, 1, ""))
	require.NoError(t, repo.EnsureUser(ctx, 2, ""))

	var count int64
	require.NoError(t, repo.db.Model(&userRecord{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestAddressLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	require.NoError(t, repo.EnsureUser(ctx, 42, "alice"))

	// Registered but no address set yet.
	addr, err := repo.GetAddress(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, addr)

	require.NoError(t, repo.SetAddress(ctx, 42, "0xabc"))
	addr, err = repo.GetAddress(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", addr)

	require.NoError(t, repo.ClearAddress(ctx, 42))
	addr, err = repo.GetAddress(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, addr)
}

func TestAddressRequiresRegistration(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	_, err := repo.GetAddress(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotRegistered)
	assert.ErrorIs(t, repo.SetAddress(ctx, 99, "0xabc"), domain.ErrNotRegistered)
	assert.ErrorIs(t, repo.ClearAddress(ctx, 99), domain.ErrNotRegistered)
}
