package authService

import (
	"BlogSpace/internal/api/auth"
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByIDHidesEmail(t *testing.T) {
	env := newTestService()
	created := registerTestUser(t, env)

	public, err := env.svc.User().GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, public.Email)
	assert.Equal(t, "ada", public.Username)

	me, err := env.svc.User().GetMe(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", me.Email)
}

func TestGetByIDMissing(t *testing.T) {
	env := newTestService()

	_, err := env.svc.User().GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	env := newTestService()
	created := registerTestUser(t, env)

	updated, err := env.svc.User().UpdateProfile(context.Background(), created.ID, auth.UpdateProfileRequest{
		FullName: "Augusta Ada King",
		Bio:      "Wrote the first program",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Augusta Ada King", updated.FullName)
	assert.Equal(t, "Wrote the first program", updated.Bio)
}

func TestDeleteUser(t *testing.T) {
	env := newTestService()
	created := registerTestUser(t, env)

	require.NoError(t, env.svc.User().DeleteUser(context.Background(), created.ID))

	_, err := env.svc.User().GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, auth.ErrUserNotFound)

	err = env.svc.User().DeleteUser(context.Background(), created.ID)
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestUpdateProfileOversizedAvatar(t *testing.T) {
	env := newTestService()
	created := registerTestUser(t, env)

	avatar := &multipart.FileHeader{Filename: "huge.png", Size: 6 * 1024 * 1024}
	_, err := env.svc.User().UpdateProfile(context.Background(), created.ID, auth.UpdateProfileRequest{}, avatar)
	assert.ErrorIs(t, err, auth.ErrFileTooLarge)
}
