package config

import (
	"BlogSpace/database/postgres"
	authHandler "BlogSpace/internal/api/auth/handler"
	authRepository "BlogSpace/internal/api/auth/repository"
	authService "BlogSpace/internal/api/auth/service"
	blogHandler "BlogSpace/internal/api/blog/handler"
	blogRepository "BlogSpace/internal/api/blog/repository"
	blogService "BlogSpace/internal/api/blog/service"
	mediaHandler "BlogSpace/internal/api/media/handler"
	mediaService "BlogSpace/internal/api/media/service"
	"BlogSpace/internal/middleware"
	"BlogSpace/pkg/bcrypt"
	"BlogSpace/pkg/google"
	"BlogSpace/pkg/redis"
	"BlogSpace/pkg/s3"
	"BlogSpace/pkg/smtp"
	"BlogSpace/pkg/utils"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	bcryptUtils    bcrypt.IBcrypt
	handlers       []handler
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
	smtpMailer     smtp.ItfSmtp
	s3Client       s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithGoogleProvider(provider google.ItfGoogle) ServerOption {
	return func(s *Server) error {
		s.googleProvider = provider
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth domain. The token middleware needs the user repository to confirm
	// a token's subject still exists, so both are built first.
	authRepo := authRepository.New(s.db, s.log)
	s.middleware = middleware.New(s.log, s.redisServer, authRepo)

	authServices := authService.New(s.log, authRepo, s.googleProvider, s.smtpMailer, s.redisServer, s.s3Client, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware, s.googleProvider)

	// Blog domain
	blogRepo := blogRepository.New(s.db, s.log)
	blogServices := blogService.New(s.log, blogRepo, s.s3Client, s.utils)
	blogHandlers := blogHandler.New(s.log, blogServices, s.validator, s.middleware)

	// Media domain
	mediaServices := mediaService.New(s.log, s.s3Client, s.utils)
	mediaHandlers := mediaHandler.New(s.log, mediaServices, s.middleware)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, blogHandlers, mediaHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	router := s.engine.Group("/api/v1")

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

// Shutdown stops accepting new connections and drains in-flight requests
// before the process exits.
func (s *Server) Shutdown() error {
	return s.engine.ShutdownWithTimeout(10 * time.Second)
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
