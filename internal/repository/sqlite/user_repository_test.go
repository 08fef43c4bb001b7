package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-cms/internal/domain"
	"catalog-cms/internal/repository"
)

func newTestDB(t *testing.T) (*UserRepository, *ItemRepository) {
	t.Helper()

	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	users := NewUserRepository(db).(*UserRepository)
	items := NewItemRepository(db).(*ItemRepository)
	require.NoError(t, users.Init(context.Background()))
	require.NoError(t, items.Init(context.Background()))
	return users, items
}

func TestUserRepositoryCreateAndGet(t *testing.T) {
	users, _ := newTestDB(t)
	ctx := context.Background()

	user := &domain.User{Username: "alice", PasswordHash: "hash"}
	id, err := users.Create(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.False(t, user.RegisteredAt.IsZero())

	byID, err := users.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
	assert.Equal(t, "hash", byID.PasswordHash)

	byName, err := users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, id, byName.ID)
}

func TestUserRepositoryDuplicateUsername(t *testing.T) {
	users, _ := newTestDB(t)
	ctx := context.Background()

	_, err := users.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = users.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h2"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestUserRepositoryNotFound(t *testing.T) {
	users, _ := newTestDB(t)
	ctx := context.Background()

	_, err := users.GetByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = users.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = users.Update(ctx, &domain.User{ID: 999, Username: "x", PasswordHash: "y"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, users.Delete(ctx, 999), repository.ErrNotFound)
}

func TestUserRepositoryUpdate(t *testing.T) {
	users, _ := newTestDB(t)
	ctx := context.Background()

	user := &domain.User{Username: "alice", PasswordHash: "old"}
	_, err := users.Create(ctx, user)
	require.NoError(t, err)

	user.Username = "alice2"
	user.PasswordHash = "new"
	require.NoError(t, users.Update(ctx, user))

	got, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice2", got.Username)
	assert.Equal(t, "new", got.PasswordHash)
}

func TestUserRepositoryUpdateDuplicateUsername(t *testing.T) {
	users, _ := newTestDB(t)
	ctx := context.Background()

	_, err := users.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h"})
	require.NoError(t, err)
	bob := &domain.User{Username: "bob", PasswordHash: "h"}
	_, err = users.Create(ctx, bob)
	require.NoError(t, err)

	bob.Username = "alice"
	assert.ErrorIs(t, users.Update(ctx, bob), repository.ErrDuplicate)
}

func TestUserRepositoryDeleteRemovesOnlyTarget(t *testing.T) {
	users, _ := newTestDB(t)
	ctx := context.Background()

	alice := &domain.User{Username: "alice", PasswordHash: "h"}
	bob := &domain.User{Username: "bob", PasswordHash: "h"}
	_, err := users.Create(ctx, alice)
	require.NoError(t, err)
	_, err = users.Create(ctx, bob)
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, alice.ID))

	_, err = users.GetByID(ctx, alice.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	remaining, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "bob", remaining[0].Username)
}
