package client

import "sync"

// LikeToggleState tracks where an optimistic like sits between the local
// flip and the server's verdict.
type LikeToggleState string

const (
	LikeStateIdle       LikeToggleState = "idle"
	LikeStatePending    LikeToggleState = "pending"
	LikeStateCommitted  LikeToggleState = "committed"
	LikeStateRolledBack LikeToggleState = "rolledback"
)

// LikeToggle is the optimistic like button: Toggle flips the visible state
// immediately, Commit converges it to what the server answered, and Fail
// restores the snapshot taken before the flip. The visible state never waits
// on the network.
type LikeToggle struct {
	mu    sync.Mutex
	state LikeToggleState

	liked bool
	count int

	prevLiked bool
	prevCount int
}

func NewLikeToggle(liked bool, count int) *LikeToggle {
	return &LikeToggle{
		state: LikeStateIdle,
		liked: liked,
		count: count,
	}
}

// Toggle snapshots the current state and applies the optimistic flip.
// Toggling again while pending is a no-op; the first flip must settle first.
func (t *LikeToggle) Toggle() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == LikeStatePending {
		return false
	}

	t.prevLiked = t.liked
	t.prevCount = t.count

	if t.liked {
		t.liked = false
		t.count--
	} else {
		t.liked = true
		t.count++
	}

	t.state = LikeStatePending
	return true
}

// Commit adopts the server's answer, which wins over the optimistic guess.
func (t *LikeToggle) Commit(res LikeResult) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.liked = res.IsLiked
	t.count = res.LikeCount
	t.state = LikeStateCommitted
}

// Fail rolls back to the pre-toggle snapshot.
func (t *LikeToggle) Fail() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != LikeStatePending {
		return
	}

	t.liked = t.prevLiked
	t.count = t.prevCount
	t.state = LikeStateRolledBack
}

func (t *LikeToggle) Liked() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.liked
}

func (t *LikeToggle) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

func (t *LikeToggle) State() LikeToggleState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}
