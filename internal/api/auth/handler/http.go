package authHandler

import (
	authService "BlogSpace/internal/api/auth/service"
	"BlogSpace/internal/middleware"
	"BlogSpace/pkg/google"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log            *logrus.Logger
	authService    authService.AuthService
	validator      *validator.Validate
	middleware     middleware.Middleware
	googleProvider google.ItfGoogle
}

func New(
	log *logrus.Logger,
	as authService.AuthService,
	validate *validator.Validate,
	middleware middleware.Middleware,
	googleProvider google.ItfGoogle) *AuthHandler {
	return &AuthHandler{
		log:            log,
		authService:    as,
		validator:      validate,
		middleware:     middleware,
		googleProvider: googleProvider,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")
	auth.Get("/login-google", h.HandleGoogleLogin)
	auth.Get("/callback-google", h.CallBackFromGoogle)

	users := srv.Group("/users")
	users.Post("/signup", h.HandleRegister)
	users.Post("/login", h.HandleLogin)
	users.Post("/logout", h.middleware.NewTokenMiddleware, h.HandleLogout)
	users.Get("/me", h.middleware.NewTokenMiddleware, h.HandleGetMe)
	users.Put("/profile", h.middleware.NewTokenMiddleware, h.HandleUpdateProfile)
	users.Post("/follow/:id", h.middleware.NewTokenMiddleware, h.HandleFollow)
	users.Post("/unfollow/:id", h.middleware.NewTokenMiddleware, h.HandleUnfollow)
	users.Get("/:id", h.HandleGetUserById)
	users.Delete("/:id", h.middleware.NewAdminMiddleware, h.HandleDeleteUser)

	password := srv.Group("/password")
	password.Post("/send-otp", h.HandleSendResetOTP)
	password.Patch("/reset", h.HandleResetPassword)
}
