package middleware

import (
	"BlogSpace/internal/entity"
	contextPkg "BlogSpace/pkg/context"
	jwtPkg "BlogSpace/pkg/jwt"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// NewTokenMiddleware guards routes that require an authenticated caller.
func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	user, errResp := m.authenticate(ctx)
	if errResp != nil {
		return errResp(ctx)
	}

	ctx.Locals("user", user)
	return ctx.Next()
}

// NewOptionalTokenMiddleware attaches an identity when a valid bearer token is
// present and proceeds anonymously when the Authorization header is absent. A
// header that is present but invalid, expired or revoked is still rejected.
func (m *middleware) NewOptionalTokenMiddleware(ctx *fiber.Ctx) error {
	if ctx.Get("Authorization") == "" {
		return ctx.Next()
	}

	user, errResp := m.authenticate(ctx)
	if errResp != nil {
		return errResp(ctx)
	}

	ctx.Locals("user", user)
	return ctx.Next()
}

// NewAdminMiddleware additionally requires the loaded user's role to be admin.
func (m *middleware) NewAdminMiddleware(ctx *fiber.Ctx) error {
	user, errResp := m.authenticate(ctx)
	if errResp != nil {
		return errResp(ctx)
	}

	if user.Role != entity.RoleAdmin {
		m.log.WithFields(logrus.Fields{
			"path":    ctx.Path(),
			"user_id": user.ID,
		}).Warn("Non-admin user attempted admin route")
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden",
		})
	}

	ctx.Locals("user", user)
	return ctx.Next()
}

type errorResponder func(*fiber.Ctx) error

func unauthorized(message string) errorResponder {
	return func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": message,
		})
	}
}

func notFound(message string) errorResponder {
	return func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": message,
		})
	}
}

func (m *middleware) authenticate(ctx *fiber.Ctx) (entity.UserLoginData, errorResponder) {
	accessToken, err := jwtPkg.TokenFromHeader(ctx)
	if err != nil || accessToken == "" {
		m.log.WithFields(logrus.Fields{
			"path":   ctx.Path(),
			"method": ctx.Method(),
		}).Warn("Authorization header missing or malformed")
		return entity.UserLoginData{}, unauthorized("Unauthorized, access token invalid or expired")
	}

	token, err := jwtPkg.VerifyToken(accessToken)
	if err != nil {
		if errors.Is(err, jwtPkg.ErrTokenExpired) {
			return entity.UserLoginData{}, unauthorized("Unauthorized, access token expired")
		}
		m.log.WithFields(logrus.Fields{
			"path":  ctx.Path(),
			"error": err.Error(),
		}).Warn("Token verification failed")
		return entity.UserLoginData{}, unauthorized("Unauthorized, access token invalid or expired")
	}

	jti, remaining, err := jwtPkg.TokenID(token)
	if err != nil {
		return entity.UserLoginData{}, unauthorized("Unauthorized, access token invalid or expired")
	}

	// Logout revokes by jti for the token's remaining lifetime.
	ctx.Locals("token_jti", jti)
	ctx.Locals("token_ttl", remaining)

	c := contextPkg.FromFiberCtx(ctx)

	revoked, err := m.redisServer.IsTokenRevoked(c, jti)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"path":  ctx.Path(),
			"error": err.Error(),
		}).Error("Token revocation check failed")
		return entity.UserLoginData{}, unauthorized("Unauthorized, access token invalid or expired")
	}
	if revoked {
		m.log.WithFields(logrus.Fields{
			"path": ctx.Path(),
			"jti":  jti,
		}).Warn("Revoked token presented")
		return entity.UserLoginData{}, unauthorized("Unauthorized, access token invalid or expired")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entity.UserLoginData{}, unauthorized("Unauthorized, access token invalid or expired")
	}

	id, _ := claims["id"].(string)
	if id == "" {
		m.log.WithFields(logrus.Fields{
			"path": ctx.Path(),
		}).Warn("Token claims are missing required fields")
		return entity.UserLoginData{}, unauthorized("Unauthorized, access token invalid or expired")
	}

	// Confirm the account behind the token still exists; the stored row is
	// also what the role check trusts, not the (older) claim.
	user, err := m.users.GetUserByID(c, id)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"path":    ctx.Path(),
			"user_id": id,
			"error":   err.Error(),
		}).Warn("Token subject no longer exists")
		return entity.UserLoginData{}, notFound("User not found")
	}

	return entity.UserLoginData{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}
