package authService

import (
	"BlogSpace/internal/api/auth"
	jwtPkg "BlogSpace/pkg/jwt"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordResetFlow(t *testing.T) {
	t.Setenv(jwtPkg.AccessTokenSecretEnv, "test-secret")
	env := newTestService()
	registerTestUser(t, env)

	require.NoError(t, env.svc.Password().SendResetOTP(context.Background(), "ada@example.com"))

	otp := env.smtp.sent["ada@example.com"]
	require.Len(t, otp, 5)

	err := env.svc.Password().ResetPassword(context.Background(), auth.ResetPasswordRequest{
		Email:    "ada@example.com",
		Code:     otp,
		Password: "brand-new-password",
	})
	require.NoError(t, err)

	// Old password no longer works, new one does.
	_, err = env.svc.Auth().Login(context.Background(), auth.LoginRequest{
		Username: "ada",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = env.svc.Auth().Login(context.Background(), auth.LoginRequest{
		Username: "ada",
		Password: "brand-new-password",
	})
	assert.NoError(t, err)

	// The OTP is single-use.
	err = env.svc.Password().ResetPassword(context.Background(), auth.ResetPasswordRequest{
		Email:    "ada@example.com",
		Code:     otp,
		Password: "another-password",
	})
	assert.ErrorIs(t, err, auth.ErrOTPExpired)
}

func TestPasswordResetWrongCode(t *testing.T) {
	env := newTestService()
	registerTestUser(t, env)

	require.NoError(t, env.svc.Password().SendResetOTP(context.Background(), "ada@example.com"))

	err := env.svc.Password().ResetPassword(context.Background(), auth.ResetPasswordRequest{
		Email:    "ada@example.com",
		Code:     "00000",
		Password: "whatever-else",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidOTP)
}

func TestSendResetOTPUnknownEmailIsSilent(t *testing.T) {
	env := newTestService()

	// No account enumeration: unknown emails still look successful.
	require.NoError(t, env.svc.Password().SendResetOTP(context.Background(), "nobody@example.com"))
	assert.Empty(t, env.smtp.sent)
}
