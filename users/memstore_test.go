package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredUser(username, email string) *User {
	return &User{
		Username: username,
		Nama:     "Test User",
		Email:    email,
		Password: "$2a$10$fakehashfakehashfakehash",
		History:  "[]",
	}
}

func TestMemStore_CreateFillsIdentity(t *testing.T) {
	t.Parallel()

	store := NewMemStore()
	user := newStoredUser("budi", "budi@gmail.com")

	require.NoError(t, store.Create(context.Background(), user))
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestMemStore_UniqueUsernameAndEmail(t *testing.T) {
	t.Parallel()

	store := NewMemStore()
	require.NoError(t, store.Create(context.Background(), newStoredUser("budi", "budi@gmail.com")))

	err := store.Create(context.Background(), newStoredUser("budi", "other@gmail.com"))
	assert.ErrorIs(t, err, ErrDuplicate)

	err = store.Create(context.Background(), newStoredUser("other", "budi@gmail.com"))
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMemStore_FindByAccount(t *testing.T) {
	t.Parallel()

	store := NewMemStore()
	require.NoError(t, store.Create(context.Background(), newStoredUser("budi", "budi@gmail.com")))

	byUsername, err := store.FindByAccount(context.Background(), "budi")
	require.NoError(t, err)
	byEmail, err := store.FindByAccount(context.Background(), "budi@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, byUsername.ID, byEmail.ID)

	_, err = store.FindByAccount(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStore_DeleteByID(t *testing.T) {
	t.Parallel()

	store := NewMemStore()
	user := newStoredUser("budi", "budi@gmail.com")
	require.NoError(t, store.Create(context.Background(), user))

	count, err := store.DeleteByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Deleting a missing id reports zero removed, not an error.
	count, err = store.DeleteByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	_, err = store.FindByID(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStore_FindAllStoredOrder(t *testing.T) {
	t.Parallel()

	store := NewMemStore()
	require.NoError(t, store.Create(context.Background(), newStoredUser("budi", "budi@gmail.com")))
	require.NoError(t, store.Create(context.Background(), newStoredUser("sari", "sari@gmail.com")))

	list, err := store.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "budi", list[0].Username)
	assert.Equal(t, "sari", list[1].Username)
}
