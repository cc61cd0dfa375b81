package mediaHandler

import (
	"BlogSpace/internal/api/media"
	contextPkg "BlogSpace/pkg/context"
	"BlogSpace/pkg/handlerUtil"
	"mime/multipart"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *MediaHandler) HandleUploadImage(ctx *fiber.Ctx) error {
	return h.handleUpload(ctx, "upload_image", h.mediaService.UploadImage)
}

func (h *MediaHandler) HandleUploadVideo(ctx *fiber.Ctx) error {
	return h.handleUpload(ctx, "upload_video", h.mediaService.UploadVideo)
}

func (h *MediaHandler) handleUpload(ctx *fiber.Ctx, operation string, upload func(context.Context, *multipart.FileHeader) (media.UploadResponse, error)) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	file, err := ctx.FormFile("file")
	if err != nil {
		file = nil
	}

	res, err := upload(c, file)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), operation)
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, res)
	}
}

func (h *MediaHandler) HandlePresignMedia(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	publicID, err := url.PathUnescape(ctx.Params("publicId"))
	if err != nil || publicID == "" {
		return errHandler.HandleSuccess(ctx, fiber.StatusBadRequest, fiber.Map{"error": "Invalid public id"})
	}

	res, err := h.mediaService.Presign(c, publicID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "presign_media")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *MediaHandler) HandleDeleteMedia(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	publicID, err := url.PathUnescape(ctx.Params("publicId"))
	if err != nil || publicID == "" {
		return errHandler.HandleSuccess(ctx, fiber.StatusBadRequest, fiber.Map{"error": "Invalid public id"})
	}

	if err := h.mediaService.Delete(c, publicID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_media")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{"message": "Media deleted"})
	}
}
