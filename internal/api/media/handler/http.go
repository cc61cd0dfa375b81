package mediaHandler

import (
	mediaService "BlogSpace/internal/api/media/service"
	"BlogSpace/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MediaHandler struct {
	log          *logrus.Logger
	mediaService mediaService.MediaService
	middleware   middleware.Middleware
}

func New(
	log *logrus.Logger,
	ms mediaService.MediaService,
	middleware middleware.Middleware) *MediaHandler {
	return &MediaHandler{
		log:          log,
		mediaService: ms,
		middleware:   middleware,
	}
}

func (h *MediaHandler) Start(srv fiber.Router) {
	media := srv.Group("/media")
	media.Post("/upload-image", h.middleware.NewTokenMiddleware, h.HandleUploadImage)
	media.Post("/upload-video", h.middleware.NewTokenMiddleware, h.HandleUploadVideo)
	media.Get("/presign/:publicId", h.middleware.NewTokenMiddleware, h.HandlePresignMedia)
	media.Delete("/:publicId", h.middleware.NewTokenMiddleware, h.HandleDeleteMedia)
}
