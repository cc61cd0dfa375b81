package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeToggleOptimisticFlip(t *testing.T) {
	lt := NewLikeToggle(false, 10)
	assert.Equal(t, LikeStateIdle, lt.State())

	require.True(t, lt.Toggle())
	assert.Equal(t, LikeStatePending, lt.State())
	assert.True(t, lt.Liked())
	assert.Equal(t, 11, lt.Count())
}

func TestLikeToggleBlocksWhilePending(t *testing.T) {
	lt := NewLikeToggle(false, 0)

	require.True(t, lt.Toggle())
	// Second flip while the first is settling is refused.
	assert.False(t, lt.Toggle())
	assert.True(t, lt.Liked())
	assert.Equal(t, 1, lt.Count())
}

func TestLikeToggleCommitAdoptsServerTruth(t *testing.T) {
	lt := NewLikeToggle(false, 10)
	lt.Toggle()

	// The server counted differently; its answer wins.
	lt.Commit(LikeResult{IsLiked: true, LikeCount: 14})
	assert.Equal(t, LikeStateCommitted, lt.State())
	assert.True(t, lt.Liked())
	assert.Equal(t, 14, lt.Count())

	// Settled toggles can flip again.
	require.True(t, lt.Toggle())
	assert.False(t, lt.Liked())
	assert.Equal(t, 13, lt.Count())
}

func TestLikeToggleFailRollsBack(t *testing.T) {
	lt := NewLikeToggle(true, 5)
	lt.Toggle()
	assert.False(t, lt.Liked())
	assert.Equal(t, 4, lt.Count())

	lt.Fail()
	assert.Equal(t, LikeStateRolledBack, lt.State())
	assert.True(t, lt.Liked())
	assert.Equal(t, 5, lt.Count())

	// Fail outside pending is a no-op.
	lt.Fail()
	assert.True(t, lt.Liked())
	assert.Equal(t, 5, lt.Count())
}
