// Package client is the typed collection-fetch layer the site's pages
// read through: one cache entry per entity+params, a short freshness
// window, bounded retries, and discarding of superseded responses so a
// fast typist never sees a stale search result land after a newer one.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Entity names a fetchable collection.
type Entity string

const (
	EntityColleges   Entity = "colleges"
	EntityExams      Entity = "exams"
	EntityCategories Entity = "categories"
	EntityCountries  Entity = "countries"
	EntityBlogs      Entity = "blogs"
	EntityEnquiries  Entity = "enquiries"
)

// ErrSuperseded is returned when a newer request for the same key was
// issued before this one resolved; the response must be ignored.
var ErrSuperseded = errors.New("response superseded by a newer request")

// StatusError is a typed non-2xx response.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.Code, e.Message)
}

// IsNotFound reports whether the server answered 404, so callers can
// show a distinct not-found state instead of a generic failure.
func (e *StatusError) IsNotFound() bool {
	return e.Code == http.StatusNotFound
}

// Params are the query parameters of a collection fetch.
type Params struct {
	Search  string
	Filters map[string]string
}

func (p Params) encode() string {
	values := url.Values{}
	if p.Search != "" {
		values.Set("search", p.Search)
	}
	for k, v := range p.Filters {
		if v != "" {
			values.Set(k, v)
		}
	}
	return values.Encode()
}

type entry struct {
	data      json.RawMessage
	fetchedAt time.Time
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Errors  []string        `json:"errors"`
}

func (e envelope) errorMessage() string {
	if e.Error != "" {
		return e.Error
	}
	if len(e.Errors) > 0 {
		return strings.Join(e.Errors, "; ")
	}
	return e.Message
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient overrides the underlying transport.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.httpClient = c }
}

// WithRetries sets how many times a failed request is retried.
func WithRetries(n int) Option {
	return func(f *Fetcher) { f.retries = n }
}

// WithWindows overrides the freshness and garbage-collection windows.
func WithWindows(freshFor, gcAfter time.Duration) Option {
	return func(f *Fetcher) {
		f.freshFor = freshFor
		f.gcAfter = gcAfter
	}
}

// Fetcher fetches and caches entity collections from the REST API.
type Fetcher struct {
	base       string
	httpClient *http.Client
	retries    int
	freshFor   time.Duration
	gcAfter    time.Duration

	mu      sync.Mutex
	entries map[string]*entry
	seq     map[string]uint64

	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a Fetcher for the API at base (e.g. "http://localhost:8080").
func New(base string, opts ...Option) *Fetcher {
	f := &Fetcher{
		base:       strings.TrimSuffix(base, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		retries:    2,
		freshFor:   5 * time.Minute,
		gcAfter:    10 * time.Minute,
		entries:    make(map[string]*entry),
		seq:        make(map[string]uint64),
		stop:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	go f.janitor()
	return f
}

// Close stops the cache janitor.
func (f *Fetcher) Close() {
	f.stopOnce.Do(func() { close(f.stop) })
}

func (f *Fetcher) janitor() {
	interval := f.gcAfter / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-f.stop:
			return
		case <-ticker.C:
			f.sweep(time.Now())
		}
	}
}

func (f *Fetcher) sweep(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key, e := range f.entries {
		if now.Sub(e.fetchedAt) > f.gcAfter {
			delete(f.entries, key)
			delete(f.seq, key)
		}
	}
}

// Fetch returns the collection payload for entity+params. A cached
// response within the freshness window is returned without a network
// round-trip. Concurrent fetches for the same key are sequenced: only
// the most recently issued request may populate the cache, earlier
// ones resolve to ErrSuperseded.
func (f *Fetcher) Fetch(ctx context.Context, entity Entity, params Params) (json.RawMessage, error) {
	key := string(entity) + "?" + params.encode()

	f.mu.Lock()
	if e, ok := f.entries[key]; ok && time.Since(e.fetchedAt) < f.freshFor {
		data := e.data
		f.mu.Unlock()
		return data, nil
	}
	f.seq[key]++
	mySeq := f.seq[key]
	f.mu.Unlock()

	data, err := f.request(ctx, entity, params)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.seq[key] != mySeq {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	f.entries[key] = &entry{data: data, fetchedAt: time.Now()}
	return data, nil
}

func (f *Fetcher) request(ctx context.Context, entity Entity, params Params) (json.RawMessage, error) {
	endpoint := f.base + "/api/" + string(entity)
	if q := params.encode(); q != "" {
		endpoint += "?" + q
	}

	var lastErr error
	for attempt := 0; attempt <= f.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * 200 * time.Millisecond):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}

		resp, err := f.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		var env envelope
		// Body may not be an envelope on gateway errors; ignore here
		// and fall through to the status check.
		_ = json.Unmarshal(body, &env)

		if resp.StatusCode >= http.StatusInternalServerError {
			lastErr = &StatusError{Code: resp.StatusCode, Message: env.errorMessage()}
			continue
		}
		// Client errors are not retried.
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, &StatusError{Code: resp.StatusCode, Message: env.errorMessage()}
		}
		if !env.Success {
			return nil, &StatusError{Code: resp.StatusCode, Message: env.errorMessage()}
		}
		return env.Data, nil
	}
	return nil, lastErr
}

// Invalidate drops every cached response for one entity. Other
// entities' caches are untouched, even when they hold records
// referencing the invalidated one.
func (f *Fetcher) Invalidate(entity Entity) {
	prefix := string(entity) + "?"
	f.mu.Lock()
	defer f.mu.Unlock()
	for key := range f.entries {
		if strings.HasPrefix(key, prefix) {
			delete(f.entries, key)
		}
	}
}

// FetchList fetches and decodes a collection into []T.
func FetchList[T any](ctx context.Context, f *Fetcher, entity Entity, params Params) ([]T, error) {
	raw, err := f.Fetch(ctx, entity, params)
	if err != nil {
		return nil, err
	}
	var items []T
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}
