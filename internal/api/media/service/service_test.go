package mediaService

import (
	"BlogSpace/internal/api/media"
	"BlogSpace/pkg/s3"
	"BlogSpace/pkg/utils"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubS3 answers uploads with a fixed key and lets tests fail individual
// storage calls.
type stubS3 struct {
	presignErr error
	deleteErr  error
	deleted    []string
}

func (s *stubS3) UploadFile(file *multipart.FileHeader, folder string) (s3.UploadResult, error) {
	key := folder + "/" + file.Filename
	return s3.UploadResult{URL: "https://bucket.s3.amazonaws.com/" + key, Key: key}, nil
}

func (s *stubS3) PresignUrl(fileURL string) (string, error) {
	if s.presignErr != nil {
		return "", s.presignErr
	}
	return fileURL + "?signature=abc", nil
}

func (s *stubS3) DeleteFile(key string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *stubS3) DeleteByURL(fileURL string) error { return s.DeleteFile(fileURL) }

func newTestService() (MediaService, *stubS3) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	storage := &stubS3{}
	return New(logger, storage, utils.New()), storage
}

func imageHeader(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}
}

func TestUploadImageRejectsMissingFile(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UploadImage(context.Background(), nil)
	assert.ErrorIs(t, err, media.ErrNoFileProvided)
}

func TestUploadImageRejectsOversizedFile(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UploadImage(context.Background(), imageHeader("huge.png", 6*1024*1024))
	assert.ErrorIs(t, err, media.ErrInvalidFile)
}

func TestUploadImageReturnsPublicID(t *testing.T) {
	svc, _ := newTestService()

	res, err := svc.UploadImage(context.Background(), imageHeader("photo.png", 1024))
	require.NoError(t, err)
	assert.Equal(t, "images/photo.png", res.PublicID)
	assert.Contains(t, res.URL, "images/photo.png")
}

func TestPresignMedia(t *testing.T) {
	svc, _ := newTestService()

	res, err := svc.Presign(context.Background(), "images/photo.png")
	require.NoError(t, err)
	assert.Equal(t, "images/photo.png?signature=abc", res.URL)
}

func TestPresignMissingObject(t *testing.T) {
	svc, storage := newTestService()
	storage.presignErr = errors.New("file does not exist")

	_, err := svc.Presign(context.Background(), "images/gone.png")
	assert.ErrorIs(t, err, media.ErrMediaNotFound)
}

func TestDeleteMedia(t *testing.T) {
	svc, storage := newTestService()

	require.NoError(t, svc.Delete(context.Background(), "images/photo.png"))
	assert.Equal(t, []string{"images/photo.png"}, storage.deleted)

	storage.deleteErr = errors.New("access denied")
	err := svc.Delete(context.Background(), "images/photo.png")
	assert.ErrorIs(t, err, media.ErrFailedToDeleteFile)
}
