package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type college struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func collectionServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		payload := map[string]interface{}{
			"success": true,
			"data": []college{
				{Name: "Alpha Institute of Tech", Slug: "alpha-institute-of-tech"},
			},
		}
		json.NewEncoder(w).Encode(payload)
	}))
}

func TestFetchCachesWithinFreshWindow(t *testing.T) {
	var hits int32
	srv := collectionServer(t, &hits)
	defer srv.Close()

	f := New(srv.URL)
	defer f.Close()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		items, err := FetchList[college](ctx, f, EntityColleges, Params{})
		if err != nil {
			t.Fatalf("fetch %d failed: %v", i, err)
		}
		if len(items) != 1 || items[0].Slug != "alpha-institute-of-tech" {
			t.Fatalf("unexpected items: %+v", items)
		}
	}

	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("expected 1 network request for repeated fetches, got %d", got)
	}
}

func TestFetchDistinctParamsCacheApart(t *testing.T) {
	var hits int32
	srv := collectionServer(t, &hits)
	defer srv.Close()

	f := New(srv.URL)
	defer f.Close()

	ctx := context.Background()
	if _, err := f.Fetch(ctx, EntityColleges, Params{}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Fetch(ctx, EntityColleges, Params{Search: "alpha"}); err != nil {
		t.Fatal(err)
	}

	if got := atomic.LoadInt32(&hits); got != 2 {
		t.Errorf("expected 2 network requests for distinct params, got %d", got)
	}
}

func TestInvalidateDropsOnlyThatEntity(t *testing.T) {
	var hits int32
	srv := collectionServer(t, &hits)
	defer srv.Close()

	f := New(srv.URL)
	defer f.Close()

	ctx := context.Background()
	f.Fetch(ctx, EntityColleges, Params{})
	f.Fetch(ctx, EntityExams, Params{})

	f.Invalidate(EntityColleges)

	f.Fetch(ctx, EntityColleges, Params{}) // refetched
	f.Fetch(ctx, EntityExams, Params{})    // still cached

	if got := atomic.LoadInt32(&hits); got != 3 {
		t.Errorf("expected 3 network requests, got %d", got)
	}
}

func TestRetryOnServerErrorNotOnClientError(t *testing.T) {
	var serverHits, clientHits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/colleges":
			atomic.AddInt32(&serverHits, 1)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "boom"})
		case "/api/exams":
			atomic.AddInt32(&clientHits, 1)
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "Exam not found"})
		}
	}))
	defer srv.Close()

	f := New(srv.URL, WithRetries(2))
	defer f.Close()

	ctx := context.Background()

	_, err := f.Fetch(ctx, EntityColleges, Params{})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 StatusError, got %v", err)
	}
	if got := atomic.LoadInt32(&serverHits); got != 3 {
		t.Errorf("expected 3 attempts on 5xx (1 + 2 retries), got %d", got)
	}

	_, err = f.Fetch(ctx, EntityExams, Params{})
	if !errors.As(err, &statusErr) || !statusErr.IsNotFound() {
		t.Fatalf("expected not-found StatusError, got %v", err)
	}
	if got := atomic.LoadInt32(&clientHits); got != 1 {
		t.Errorf("expected no retry on 4xx, got %d attempts", got)
	}
}

func TestSupersededResponseIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("search") == "slow" {
			<-release
		}
		fmt.Fprintf(w, `{"success":true,"data":[]}`)
	}))
	defer srv.Close()

	f := New(srv.URL)
	defer f.Close()

	ctx := context.Background()

	var wg sync.WaitGroup
	var slowErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, slowErr = f.Fetch(ctx, EntityColleges, Params{Search: "slow"})
	}()

	// Give the slow request time to be issued, then supersede it.
	time.Sleep(50 * time.Millisecond)
	done := make(chan error, 1)
	go func() {
		_, err := f.Fetch(ctx, EntityColleges, Params{Search: "slow"})
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	close(release)

	wg.Wait()
	if !errors.Is(slowErr, ErrSuperseded) {
		t.Errorf("first request should be superseded, got %v", slowErr)
	}
	if err := <-done; err != nil && !errors.Is(err, ErrSuperseded) {
		t.Errorf("latest request failed: %v", err)
	}
}

func TestSweepEvictsExpiredEntries(t *testing.T) {
	var hits int32
	srv := collectionServer(t, &hits)
	defer srv.Close()

	f := New(srv.URL, WithWindows(time.Millisecond, 2*time.Millisecond))
	defer f.Close()

	ctx := context.Background()
	if _, err := f.Fetch(ctx, EntityColleges, Params{}); err != nil {
		t.Fatal(err)
	}

	time.Sleep(5 * time.Millisecond)
	f.sweep(time.Now())

	f.mu.Lock()
	remaining := len(f.entries)
	f.mu.Unlock()
	if remaining != 0 {
		t.Errorf("expected cache emptied after GC window, found %d entries", remaining)
	}
}
