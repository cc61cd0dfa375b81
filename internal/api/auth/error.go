package auth

import (
	"BlogSpace/pkg/response"
	"net/http"
)

var (
	ErrUsernameAlreadyExists = response.NewError(http.StatusConflict, "username already exists")
	ErrEmailAlreadyExists    = response.NewError(http.StatusConflict, "email already exists")
	ErrInvalidCredentials    = response.NewError(http.StatusUnauthorized, "invalid username/email or password")
	ErrUserNotFound          = response.NewError(http.StatusNotFound, "user not found")
	ErrSelfFollow            = response.NewError(http.StatusBadRequest, "cannot follow yourself")
	ErrInvalidOTP            = response.NewError(http.StatusBadRequest, "invalid otp")
	ErrOTPExpired            = response.NewError(http.StatusBadRequest, "otp expired or not found")
	ErrInvalidFileType       = response.NewError(http.StatusBadRequest, "invalid file type")
	ErrFileTooLarge          = response.NewError(http.StatusBadRequest, "file too large")
	ErrFailedToUploadFile    = response.NewError(http.StatusInternalServerError, "failed to upload file")
)
