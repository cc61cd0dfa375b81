package authHandler

import (
	"BlogSpace/internal/api/auth"
	contextPkg "BlogSpace/pkg/context"
	"BlogSpace/pkg/handlerUtil"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AuthHandler) HandleGoogleLogin(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	authURL, err := h.authService.Auth().LoginGoogle()
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "google_login")
	}

	return ctx.Redirect(authURL.String(), fiber.StatusTemporaryRedirect)
}

func (h *AuthHandler) CallBackFromGoogle(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	code := ctx.Query("code")
	if code == "" {
		return errHandler.HandleUnauthorized(ctx, requestID, "Missing authorization code")
	}

	payload, err := h.googleProvider.GetUserExchangeToken(ctx, code)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Google token exchange failed")
	}

	var googleUser auth.UserGoogle
	if err := json.Unmarshal(payload, &googleUser); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_google_user")
	}

	res, err := h.authService.Auth().UserLoginGoogle(c, googleUser)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "google_callback")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}
