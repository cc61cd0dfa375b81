package client

import (
	"context"
	"sync"
)

// FeedFetcher drives a paginated, filtered blog list. It refuses to start a
// fetch while one is running, and it stamps every fetch with a generation
// number so a response that arrives after the filters changed is discarded
// instead of overwriting newer state.
type FeedFetcher struct {
	client *Client

	mu         sync.Mutex
	opts       ListOptions
	inFlight   bool
	generation uint64
	latest     BlogList
	hasLoaded  bool
}

func NewFeedFetcher(c *Client, opts ListOptions) *FeedFetcher {
	return &FeedFetcher{
		client: c,
		opts:   opts,
	}
}

// SetOptions replaces the filter state and invalidates any fetch still in
// flight.
func (f *FeedFetcher) SetOptions(opts ListOptions) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opts = opts
	f.generation++
}

func (f *FeedFetcher) Options() ListOptions {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opts
}

// Latest returns the most recent accepted page and whether any page has been
// accepted yet.
func (f *FeedFetcher) Latest() (BlogList, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest, f.hasLoaded
}

// Fetch loads the current page. The boolean result is false when the fetch
// was skipped (already in flight) or its response was stale on arrival.
func (f *FeedFetcher) Fetch(ctx context.Context) (BlogList, bool, error) {
	f.mu.Lock()
	if f.inFlight {
		f.mu.Unlock()
		return BlogList{}, false, nil
	}
	f.inFlight = true
	gen := f.generation
	opts := f.opts
	f.mu.Unlock()

	list, err := f.client.ListBlogs(ctx, opts)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight = false

	if err != nil {
		return BlogList{}, false, err
	}

	if gen != f.generation {
		// Filters changed while the request was on the wire.
		return BlogList{}, false, nil
	}

	f.latest = list
	f.hasLoaded = true
	return list, true, nil
}
