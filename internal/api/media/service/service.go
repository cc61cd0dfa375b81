package mediaService

import (
	"BlogSpace/internal/api/media"
	contextPkg "BlogSpace/pkg/context"
	"BlogSpace/pkg/s3"
	"BlogSpace/pkg/utils"
	"context"
	"mime/multipart"

	"github.com/sirupsen/logrus"
)

type MediaService interface {
	UploadImage(c context.Context, file *multipart.FileHeader) (media.UploadResponse, error)
	UploadVideo(c context.Context, file *multipart.FileHeader) (media.UploadResponse, error)
	Presign(c context.Context, publicID string) (media.PresignResponse, error)
	Delete(c context.Context, publicID string) error
}

type mediaService struct {
	log      *logrus.Logger
	s3Client s3.ItfS3
	utils    utils.IUtils
}

func New(log *logrus.Logger, s3Client s3.ItfS3, utils utils.IUtils) MediaService {
	return &mediaService{
		log:      log,
		s3Client: s3Client,
		utils:    utils,
	}
}

func (s *mediaService) UploadImage(c context.Context, file *multipart.FileHeader) (media.UploadResponse, error) {
	return s.upload(c, file, "images", s.utils.ValidateImageFile)
}

func (s *mediaService) UploadVideo(c context.Context, file *multipart.FileHeader) (media.UploadResponse, error) {
	return s.upload(c, file, "videos", s.utils.ValidateVideoFile)
}

func (s *mediaService) upload(c context.Context, file *multipart.FileHeader, folder string, validate func(*multipart.FileHeader) error) (media.UploadResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if file == nil {
		return media.UploadResponse{}, media.ErrNoFileProvided
	}

	if err := validate(file); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"filename":   file.Filename,
			"size":       file.Size,
			"error":      err.Error(),
		}).Warn("Rejected media upload")
		return media.UploadResponse{}, media.ErrInvalidFile
	}

	result, err := s.s3Client.UploadFile(file, folder)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"filename":   file.Filename,
			"error":      err.Error(),
		}).Error("Failed to upload media")
		return media.UploadResponse{}, media.ErrFailedToUploadFile
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"key":        result.Key,
	}).Info("Media uploaded")

	return media.UploadResponse{
		URL:      result.URL,
		PublicID: result.Key,
	}, nil
}

// Presign issues a time-limited download URL for a stored object, addressed
// by the public id upload responses hand out.
func (s *mediaService) Presign(c context.Context, publicID string) (media.PresignResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	presigned, err := s.s3Client.PresignUrl(publicID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"public_id":  publicID,
			"error":      err.Error(),
		}).Warn("Failed to presign media")
		return media.PresignResponse{}, media.ErrMediaNotFound
	}

	return media.PresignResponse{URL: presigned}, nil
}

func (s *mediaService) Delete(c context.Context, publicID string) error {
	requestID := contextPkg.GetRequestID(c)

	if err := s.s3Client.DeleteFile(publicID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"public_id":  publicID,
			"error":      err.Error(),
		}).Error("Failed to delete media")
		return media.ErrFailedToDeleteFile
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"public_id":  publicID,
	}).Info("Media deleted")

	return nil
}
