package authService

import (
	"BlogSpace/internal/api/auth"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowAndUnfollow(t *testing.T) {
	env := newTestService()
	ada := registerTestUser(t, env)

	grace, err := env.svc.User().RegisterUser(context.Background(), auth.RegisterRequest{
		Username: "grace",
		Email:    "grace@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, env.svc.Follow().Follow(context.Background(), ada.ID, grace.ID))
	assert.True(t, env.store.follows[ada.ID][grace.ID])

	// Following twice is idempotent.
	require.NoError(t, env.svc.Follow().Follow(context.Background(), ada.ID, grace.ID))

	require.NoError(t, env.svc.Follow().Unfollow(context.Background(), ada.ID, grace.ID))
	assert.False(t, env.store.follows[ada.ID][grace.ID])
}

func TestFollowRejectsSelfAndMissing(t *testing.T) {
	env := newTestService()
	ada := registerTestUser(t, env)

	err := env.svc.Follow().Follow(context.Background(), ada.ID, ada.ID)
	assert.ErrorIs(t, err, auth.ErrSelfFollow)

	err = env.svc.Follow().Follow(context.Background(), ada.ID, "missing")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
