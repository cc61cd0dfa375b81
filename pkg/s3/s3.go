package s3

import (
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
)

type ItfS3 interface {
	UploadFile(file *multipart.FileHeader, folder string) (UploadResult, error)
	PresignUrl(fileURL string) (string, error)
	DeleteFile(key string) error
	DeleteByURL(fileURL string) error
}

// UploadResult carries the stored object's public URL and its key. The key is
// what delete requests address (the "public id" in the media API).
type UploadResult struct {
	URL string
	Key string
}

type s3Client struct {
	client     *s3.S3
	session    *session.Session
	bucketName string
}

func New() (ItfS3, error) {
	sess, err := newSession()
	if err != nil {
		return nil, err
	}

	return &s3Client{
		client:     s3.New(sess),
		session:    sess,
		bucketName: os.Getenv("AWS_BUCKET_NAME"),
	}, nil
}

func (s *s3Client) UploadFile(file *multipart.FileHeader, folder string) (UploadResult, error) {
	uploader := s3manager.NewUploader(s.session)

	key := uniqueKey(folder, file.Filename)

	src, err := file.Open()
	if err != nil {
		return UploadResult{}, err
	}
	defer func(src multipart.File) {
		_ = src.Close()
	}(src)

	uploadOutput, err := uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return UploadResult{}, err
	}

	return UploadResult{URL: uploadOutput.Location, Key: key}, nil
}

func (s *s3Client) PresignUrl(fileURL string) (string, error) {
	key := extractKeyFromS3Url(fileURL)

	decodedKey, err := url.QueryUnescape(key)
	if err != nil {
		return "", fmt.Errorf("failed to decode S3 key: %w", err)
	}

	_, err = s.client.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(decodedKey),
	})
	if err != nil {
		return "", fmt.Errorf("file does not exist: %w", err)
	}

	req, _ := s.client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(decodedKey),
	})

	urlStr, err := req.Presign(15 * time.Minute)
	if err != nil {
		return "", err
	}

	return urlStr, nil
}

func (s *s3Client) DeleteFile(key string) error {
	decodedKey, err := url.QueryUnescape(key)
	if err != nil {
		return fmt.Errorf("failed to decode key: %w", err)
	}

	_, err = s.client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(decodedKey),
	})

	return err
}

// DeleteByURL removes the object a stored public URL points at. Callers that
// only persisted the URL (blog covers, avatars) use this for best-effort
// cleanup of replaced media.
func (s *s3Client) DeleteByURL(fileURL string) error {
	return s.DeleteFile(extractKeyFromS3Url(fileURL))
}

func extractKeyFromS3Url(fileURL string) string {
	parts := strings.Split(fileURL, ".com/")
	if len(parts) > 1 {
		return parts[1]
	}
	return fileURL
}

func newSession() (*session.Session, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(os.Getenv("AWS_REGION")),
		Credentials: credentials.NewStaticCredentials(
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			"",
		),
	})
	if err != nil {
		return nil, err
	}

	return sess, nil
}

func uniqueKey(folder, fileName string) string {
	ext := filepath.Ext(fileName)
	base := strings.TrimSuffix(filepath.Base(fileName), ext)
	base = strings.ReplaceAll(base, " ", "-")

	key := fmt.Sprintf("%s-%s%s", base, uuid.NewString(), ext)
	if folder != "" {
		key = folder + "/" + key
	}
	return key
}
