package middleware

import (
	"BlogSpace/internal/entity"
	jwtPkg "BlogSpace/pkg/jwt"
	"context"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRedis struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newStubRedis() *stubRedis {
	return &stubRedis{revoked: map[string]bool{}}
}

func (f *stubRedis) SetOTP(context.Context, string, string, time.Duration) error { return nil }
func (f *stubRedis) GetOTP(context.Context, string) (string, error)              { return "", nil }
func (f *stubRedis) DeleteOTP(context.Context, string) error                     { return nil }

func (f *stubRedis) RevokeToken(_ context.Context, jti string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[jti] = true
	return nil
}

func (f *stubRedis) IsTokenRevoked(_ context.Context, jti string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.revoked[jti], nil
}

type stubUsers struct {
	users map[string]entity.User
}

func (s *stubUsers) GetUserByID(_ context.Context, id string) (entity.User, error) {
	user, ok := s.users[id]
	if !ok {
		return entity.User{}, fiber.ErrNotFound
	}
	return user, nil
}

func newTestApp(t *testing.T) (*fiber.App, *stubRedis, *stubUsers) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	redisServer := newStubRedis()
	users := &stubUsers{users: map[string]entity.User{
		"user-1":  {ID: "user-1", Username: "ada", Email: "ada@example.com", Role: entity.RoleUser},
		"admin-1": {ID: "admin-1", Username: "root", Email: "root@example.com", Role: entity.RoleAdmin},
	}}

	m := New(logger, redisServer, users)

	app := fiber.New()
	app.Get("/protected", m.NewTokenMiddleware, func(c *fiber.Ctx) error {
		user, err := jwtPkg.GetUserLoginData(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"id": user.ID, "role": user.Role})
	})
	app.Get("/optional", m.NewOptionalTokenMiddleware, func(c *fiber.Ctx) error {
		if _, err := jwtPkg.GetUserLoginData(c); err != nil {
			return c.JSON(fiber.Map{"anonymous": true})
		}
		return c.JSON(fiber.Map{"anonymous": false})
	})
	app.Get("/admin", m.NewAdminMiddleware, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	return app, redisServer, users
}

func signToken(t *testing.T, userID string, lifetime time.Duration) string {
	t.Helper()
	raw, _, err := jwtPkg.Sign(map[string]interface{}{
		"id":       userID,
		"username": "ada",
		"email":    "ada@example.com",
		"role":     "user",
	}, lifetime)
	require.NoError(t, err)
	return raw
}

func TestTokenMiddlewareRejectsMissingHeader(t *testing.T) {
	t.Setenv(jwtPkg.AccessTokenSecretEnv, "test-secret")
	app, _, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestTokenMiddlewareAcceptsValidToken(t *testing.T) {
	t.Setenv(jwtPkg.AccessTokenSecretEnv, "test-secret")
	app, _, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1", time.Hour))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTokenMiddlewareRejectsExpiredToken(t *testing.T) {
	t.Setenv(jwtPkg.AccessTokenSecretEnv, "test-secret")
	app, _, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1", -time.Minute))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestTokenMiddlewareRejectsRevokedToken(t *testing.T) {
	t.Setenv(jwtPkg.AccessTokenSecretEnv, "test-secret")
	app, redisServer, _ := newTestApp(t)

	raw := signToken(t, "user-1", time.Hour)

	token, err := jwtPkg.VerifyToken(raw)
	require.NoError(t, err)
	jti, _, err := jwtPkg.TokenID(token)
	require.NoError(t, err)
	require.NoError(t, redisServer.RevokeToken(context.Background(), jti, time.Hour))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestTokenMiddlewareDeletedUserIs404(t *testing.T) {
	t.Setenv(jwtPkg.AccessTokenSecretEnv, "test-secret")
	app, _, users := newTestApp(t)

	raw := signToken(t, "user-1", time.Hour)
	delete(users.users, "user-1")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestOptionalTokenMiddleware(t *testing.T) {
	t.Setenv(jwtPkg.AccessTokenSecretEnv, "test-secret")
	app, _, _ := newTestApp(t)

	// Anonymous passes through.
	req := httptest.NewRequest("GET", "/optional", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// A present-but-garbage token is still rejected.
	req = httptest.NewRequest("GET", "/optional", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// A valid token attaches identity.
	req = httptest.NewRequest("GET", "/optional", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1", time.Hour))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminMiddleware(t *testing.T) {
	t.Setenv(jwtPkg.AccessTokenSecretEnv, "test-secret")
	app, _, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1", time.Hour))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// The role check trusts the stored row, so the admin's token claims may
	// even be stale.
	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "admin-1", time.Hour))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
