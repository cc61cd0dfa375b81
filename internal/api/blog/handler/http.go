package blogHandler

import (
	blogService "BlogSpace/internal/api/blog/service"
	"BlogSpace/internal/entity"
	"BlogSpace/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogHandler struct {
	log         *logrus.Logger
	blogService blogService.BlogService
	validator   *validator.Validate
	middleware  middleware.Middleware
}

func New(
	log *logrus.Logger,
	bs blogService.BlogService,
	validate *validator.Validate,
	middleware middleware.Middleware) *BlogHandler {
	return &BlogHandler{
		log:         log,
		blogService: bs,
		validator:   validate,
		middleware:  middleware,
	}
}

func (h *BlogHandler) Start(srv fiber.Router) {
	blogs := srv.Group("/blogs")
	blogs.Get("", h.middleware.NewOptionalTokenMiddleware, h.HandleListBlogs)
	blogs.Post("", h.middleware.NewTokenMiddleware, h.HandleCreateBlog)
	blogs.Get("/:id", h.middleware.NewOptionalTokenMiddleware, h.HandleGetBlog)
	blogs.Put("/:id", h.middleware.NewTokenMiddleware, h.HandleUpdateBlog)
	blogs.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteBlog)
	blogs.Post("/:id/like", h.middleware.NewTokenMiddleware, h.HandleToggleLike)
	blogs.Post("/:id/comments", h.middleware.NewTokenMiddleware, h.HandleCreateComment)
	blogs.Delete("/:id/comments/:commentId", h.middleware.NewTokenMiddleware, h.HandleDeleteComment)
}

// viewerID resolves the caller's identity, which is empty on anonymous
// requests that passed the optional token middleware.
func viewerID(ctx *fiber.Ctx) string {
	user, ok := ctx.Locals("user").(entity.UserLoginData)
	if !ok {
		return ""
	}
	return user.ID
}
