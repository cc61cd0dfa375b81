package utils

import (
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTime(t *testing.T) {
	u := New()

	assert.Equal(t, 0, u.ReadTime(""))
	assert.Equal(t, 0, u.ReadTime("   \n\t "))
	assert.Equal(t, 1, u.ReadTime("hello"))
	assert.Equal(t, 1, u.ReadTime(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, u.ReadTime(strings.Repeat("word ", 201)))
	assert.Equal(t, 3, u.ReadTime(strings.Repeat("word ", 450)))
}

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	first, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.Len(t, first, 26)

	second, err := u.NewULIDFromTimestamp(time.Now().Add(time.Second))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	// ULIDs are lexicographically ordered by timestamp.
	assert.Less(t, first, second)
}

func TestPlaceholderAvatarURL(t *testing.T) {
	u := New()

	url := u.PlaceholderAvatarURL("Ada Lovelace")
	assert.Contains(t, url, "Ada+Lovelace")
	// Deterministic per name.
	assert.Equal(t, url, u.PlaceholderAvatarURL("Ada Lovelace"))

	assert.Contains(t, u.PlaceholderAvatarURL("  "), "Anonymous")
}

func TestPlaceholderCoverURL(t *testing.T) {
	u := New()
	assert.NotEmpty(t, u.PlaceholderCoverURL())
}

func TestValidateImageFileSentinels(t *testing.T) {
	u := New()

	err := u.ValidateImageFile(&multipart.FileHeader{Filename: "big.png", Size: 6 * 1024 * 1024})
	assert.ErrorIs(t, err, ErrFileTooLarge)

	err = u.ValidateImageFile(&multipart.FileHeader{Filename: "notes.txt", Size: 10})
	assert.ErrorIs(t, err, ErrUnsupportedFile)
}

func TestValidateVideoFileSentinels(t *testing.T) {
	u := New()

	err := u.ValidateVideoFile(&multipart.FileHeader{Filename: "movie.mp4", Size: 51 * 1024 * 1024})
	assert.ErrorIs(t, err, ErrFileTooLarge)

	err = u.ValidateVideoFile(&multipart.FileHeader{Filename: "movie.avi", Size: 10})
	assert.ErrorIs(t, err, ErrUnsupportedFile)
}
