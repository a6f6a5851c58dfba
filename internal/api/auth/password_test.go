package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/storage"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "hunter3"))
	assert.False(t, CheckPassword("not a hash", "hunter2"))
}

func TestCreateUser(t *testing.T) {
	store := storage.NewMemory()
	ctx := context.Background()

	user, err := CreateUser(ctx, store, "admin", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	stored, err := store.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, stored)
	// The stored password must be a hash, never the plaintext.
	assert.NotEqual(t, "hunter2", stored.Password)
	assert.True(t, CheckPassword(stored.Password, "hunter2"))

	_, err = CreateUser(ctx, store, "admin", "other")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestBootstrapIdempotent(t *testing.T) {
	store := storage.NewMemory()
	ctx := context.Background()

	require.NoError(t, Bootstrap(ctx, store, "admin", "hunter2"))
	require.NoError(t, Bootstrap(ctx, store, "admin", "different"))

	// The second bootstrap must not overwrite the existing credentials.
	user, err := store.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, CheckPassword(user.Password, "hunter2"))
}
