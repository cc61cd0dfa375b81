package jwtPkg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golang-jwt/jwt/v5"
)

func TestSignAndVerify(t *testing.T) {
	t.Setenv(AccessTokenSecretEnv, "test-secret")

	data := map[string]interface{}{
		"id":       "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		"username": "ada",
		"role":     "user",
	}

	raw, expiredAt, err := Sign(data, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.Greater(t, expiredAt, time.Now().Unix())

	token, err := VerifyToken(raw)
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "ada", claims["username"])
	assert.NotEmpty(t, claims["jti"])
}

func TestVerifyTokenExpired(t *testing.T) {
	t.Setenv(AccessTokenSecretEnv, "test-secret")

	raw, _, err := Sign(map[string]interface{}{"id": "x"}, -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(raw)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTokenGarbage(t *testing.T) {
	t.Setenv(AccessTokenSecretEnv, "test-secret")

	_, err := VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	t.Setenv(AccessTokenSecretEnv, "secret-one")
	raw, _, err := Sign(map[string]interface{}{"id": "x"}, time.Hour)
	require.NoError(t, err)

	t.Setenv(AccessTokenSecretEnv, "secret-two")
	_, err = VerifyToken(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenID(t *testing.T) {
	t.Setenv(AccessTokenSecretEnv, "test-secret")

	raw, _, err := Sign(map[string]interface{}{"id": "x"}, time.Hour)
	require.NoError(t, err)

	token, err := VerifyToken(raw)
	require.NoError(t, err)

	jti, remaining, err := TokenID(token)
	require.NoError(t, err)
	assert.NotEmpty(t, jti)
	assert.Greater(t, remaining, 59*time.Minute)
	assert.LessOrEqual(t, remaining, time.Hour)
}
