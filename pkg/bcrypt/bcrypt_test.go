package bcrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	b := NewWithCost(4)

	hash, err := b.HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.NoError(t, b.ComparePassword(hash, "s3cret-password"))
	assert.Error(t, b.ComparePassword(hash, "wrong-password"))
}
