package media

import (
	"BlogSpace/pkg/response"
	"net/http"
)

var (
	ErrNoFileProvided     = response.NewError(http.StatusBadRequest, "No file provided")
	ErrInvalidFile        = response.NewError(http.StatusBadRequest, "Invalid or oversized file")
	ErrFailedToUploadFile = response.NewError(http.StatusInternalServerError, "Failed to upload file")
	ErrFailedToDeleteFile = response.NewError(http.StatusInternalServerError, "Failed to delete file")
	ErrMediaNotFound      = response.NewError(http.StatusNotFound, "Media not found")
)
