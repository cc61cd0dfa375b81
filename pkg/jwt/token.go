package jwtPkg

import (
	"BlogSpace/internal/entity"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const AccessTokenSecretEnv = "JWT_ACCESS_TOKEN_SECRET"

var (
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

// Sign issues an HS256 access token. Every token carries a unique jti so it
// can be revoked individually before its expiry.
func Sign(data map[string]interface{}, expiresIn time.Duration) (string, int64, error) {
	expiredAt := time.Now().Add(expiresIn).Unix()

	secret := os.Getenv(AccessTokenSecretEnv)
	if secret == "" {
		return "", 0, fmt.Errorf("%s not set", AccessTokenSecretEnv)
	}

	claims := jwt.MapClaims{}
	claims["exp"] = expiredAt
	claims["jti"] = uuid.NewString()

	for k, v := range data {
		claims[k] = v
	}

	to := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := to.SignedString([]byte(secret))
	if err != nil {
		logrus.WithError(err).Error("Failed to sign token")
		return "", 0, err
	}

	return accessToken, expiredAt, nil
}

// VerifyToken parses and validates a raw token string.
func VerifyToken(accessToken string) (*jwt.Token, error) {
	secret := os.Getenv(AccessTokenSecretEnv)
	if secret == "" {
		return nil, errors.New("JWT secret not configured")
	}

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	return token, nil
}

// TokenFromHeader extracts the raw bearer token from the Authorization header.
// Returns an empty string when no header is present at all.
func TokenFromHeader(c *fiber.Ctx) (string, error) {
	header := c.Get("Authorization")
	if header == "" {
		return "", nil
	}

	if !strings.HasPrefix(header, "Bearer ") {
		return "", errors.New("invalid Authorization format")
	}

	accessToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if accessToken == "" {
		return "", errors.New("empty token")
	}

	return accessToken, nil
}

// TokenID returns the jti claim and remaining lifetime of a verified token.
// The remaining lifetime is what a revocation entry's TTL is set to.
func TokenID(token *jwt.Token) (string, time.Duration, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", 0, ErrInvalidToken
	}

	jti, ok := claims["jti"].(string)
	if !ok || jti == "" {
		return "", 0, ErrInvalidToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return "", 0, ErrInvalidToken
	}

	return jti, time.Until(exp.Time), nil
}

func GetUserLoginData(c *fiber.Ctx) (entity.UserLoginData, error) {
	userData := c.Locals("user")

	user, ok := userData.(entity.UserLoginData)
	if !ok {
		return entity.UserLoginData{}, fiber.ErrUnauthorized
	}

	return user, nil
}
