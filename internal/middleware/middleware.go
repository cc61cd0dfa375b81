package middleware

import (
	"BlogSpace/internal/entity"
	"BlogSpace/pkg/redis"
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Middleware interface {
	NewRateLimiter(ctx *fiber.Ctx) error
	NewTokenMiddleware(ctx *fiber.Ctx) error
	NewOptionalTokenMiddleware(ctx *fiber.Ctx) error
	NewAdminMiddleware(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

// UserStore is the lookup the token middleware uses to confirm the token's
// subject still exists. A valid token referencing a deleted account is a 404.
type UserStore interface {
	GetUserByID(ctx context.Context, id string) (entity.User, error)
}

type middleware struct {
	rateLimitter        *rateLimiter
	requestIDMiddleware fiber.Handler
	redisServer         redis.IRedis
	users               UserStore
	log                 *logrus.Logger
}

func New(logger *logrus.Logger, redisServer redis.IRedis, users UserStore) Middleware {
	rateLimit := newRateLimiter(50, 100)
	requestID := NewRequestIDMiddleware()

	return &middleware{
		rateLimitter:        rateLimit,
		requestIDMiddleware: requestID,
		redisServer:         redisServer,
		users:               users,
		log:                 logger,
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}
