package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedServer(t *testing.T, release <-chan struct{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if release != nil {
			<-release
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"items":      []map[string]interface{}{{"id": "b1", "title": "Post"}},
			"total":      1,
			"page":       1,
			"totalPages": 1,
		})
	}))
}

func TestFeedFetcherFetch(t *testing.T) {
	srv := feedServer(t, nil)
	defer srv.Close()

	f := NewFeedFetcher(New(srv.URL), ListOptions{Limit: 10})

	list, ok, err := f.Fetch(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, list.Total)

	latest, loaded := f.Latest()
	assert.True(t, loaded)
	assert.Equal(t, list, latest)
}

func TestFeedFetcherSkipsOverlappingFetch(t *testing.T) {
	release := make(chan struct{})
	srv := feedServer(t, release)
	defer srv.Close()

	f := NewFeedFetcher(New(srv.URL), ListOptions{})

	var wg sync.WaitGroup
	wg.Add(1)
	firstStarted := make(chan struct{})
	go func() {
		defer wg.Done()
		close(firstStarted)
		_, ok, err := f.Fetch(context.Background())
		assert.NoError(t, err)
		assert.True(t, ok)
	}()

	<-firstStarted
	// Wait until the first fetch is marked in flight.
	for {
		f.mu.Lock()
		inFlight := f.inFlight
		f.mu.Unlock()
		if inFlight {
			break
		}
	}

	// The overlapping fetch is skipped without touching the network.
	_, ok, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	close(release)
	wg.Wait()
}

func TestFeedFetcherDiscardsStaleResponse(t *testing.T) {
	release := make(chan struct{})
	srv := feedServer(t, release)
	defer srv.Close()

	f := NewFeedFetcher(New(srv.URL), ListOptions{Category: "technology"})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, ok, err := f.Fetch(context.Background())
		assert.NoError(t, err)
		// The filters changed mid-flight, so the response is stale.
		assert.False(t, ok)
	}()

	for {
		f.mu.Lock()
		inFlight := f.inFlight
		f.mu.Unlock()
		if inFlight {
			break
		}
	}

	f.SetOptions(ListOptions{Category: "travel"})
	close(release)
	<-done

	_, loaded := f.Latest()
	assert.False(t, loaded)
}
