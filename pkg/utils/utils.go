package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	maxImageSize = 5 * 1024 * 1024
	maxVideoSize = 50 * 1024 * 1024

	// Words-per-minute figure used to derive a post's read time.
	readTimeWPM = 200

	placeholderCoverURL = "https://static.blogspace.app/placeholders/cover.png"
)

// Validation failures callers may want to branch on; anything else from the
// validators is a generic rejection.
var (
	ErrFileTooLarge    = errors.New("file size exceeds limit")
	ErrUnsupportedFile = errors.New("unsupported file type")
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	ValidateImageFile(file *multipart.FileHeader) error
	ValidateVideoFile(file *multipart.FileHeader) error
	ReadTime(content string) int
	PlaceholderAvatarURL(displayName string) string
	PlaceholderCoverURL() string
}

type utils struct{}

func New() IUtils {
	return &utils{}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".webm": true,
	".mov":  true,
}

func (u *utils) ValidateImageFile(file *multipart.FileHeader) error {
	if file == nil {
		return errors.New("no file uploaded")
	}

	if file.Size > maxImageSize {
		return ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		return fmt.Errorf("%w: %s", ErrUnsupportedFile, ext)
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("%w: %s", ErrUnsupportedFile, contentType)
	}

	return nil
}

func (u *utils) ValidateVideoFile(file *multipart.FileHeader) error {
	if file == nil {
		return errors.New("no file uploaded")
	}

	if file.Size > maxVideoSize {
		return ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !videoExtensions[ext] {
		return fmt.Errorf("%w: %s", ErrUnsupportedFile, ext)
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "video/") {
		return fmt.Errorf("%w: %s", ErrUnsupportedFile, contentType)
	}

	return nil
}

// ReadTime derives the estimated reading minutes from the content's word
// count: ceil(words/200), never below 1 for non-empty content.
func (u *utils) ReadTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / float64(readTimeWPM)))
}

// PlaceholderAvatarURL returns a deterministic generated-avatar URL keyed by
// the author's display name, so missing avatars are never served as null.
func (u *utils) PlaceholderAvatarURL(displayName string) string {
	name := strings.TrimSpace(displayName)
	if name == "" {
		name = "Anonymous"
	}
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(name))
}

func (u *utils) PlaceholderCoverURL() string {
	return placeholderCoverURL
}
