package scraper

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every admin request.
const DefaultTimeout = 2 * time.Second

// Admin endpoint paths, relative to the configured admin URL.
const (
	HealthPath = "/check-health"
	MemoryPath = "/memory.json"
	StatusPath = "/status.json"
)

// Options configures a Fetcher.
type Options struct {
	// AdminURL is the base URL of the HHVM admin server, e.g. http://localhost:9002.
	AdminURL string

	// Timeout overrides DefaultTimeout when positive.
	Timeout time.Duration

	// InsecureSkipVerify disables TLS verification for an https admin URL.
	InsecureSkipVerify bool
}

// Result is the outcome of one fetch: either a parsed Document or absence.
// Err is only kept for logging; callers decide on Present alone.
type Result struct {
	Doc Document
	Err error
}

// Present reports whether the fetch produced a document.
func (r Result) Present() bool {
	return r.Doc != nil
}

// Absent builds a Result that carries no document.
func Absent(err error) Result {
	return Result{Err: err}
}

// Fetcher issues GET requests against a single admin server.
// It is safe for concurrent use.
type Fetcher struct {
	base    string
	timeout time.Duration
	client  *http.Client
}

// New returns a Fetcher for opts. The HTTP client is built once and reused
// across scrape calls.
func New(opts Options) *Fetcher {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: opts.InsecureSkipVerify, //nolint:gosec // user-configured
	}
	return &Fetcher{
		base:    strings.TrimRight(opts.AdminURL, "/"),
		timeout: timeout,
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

// URL joins path onto the admin base URL.
func (f *Fetcher) URL(path string) string {
	return f.base + path
}

// Fetch performs one GET against url and decodes the body as a JSON object.
// Connection errors, timeouts, non-2xx statuses and bodies that are not a JSON
// object all yield an absent Result. Fetch never returns an error.
func (f *Fetcher) Fetch(ctx context.Context, url string) Result {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Absent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return Absent(fmt.Errorf("http get: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Absent(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var doc Document
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&doc); err != nil {
		return Absent(fmt.Errorf("decode JSON: %w", err))
	}
	if _, err := dec.Token(); err != io.EOF {
		return Absent(fmt.Errorf("decode JSON: trailing data after object"))
	}
	if doc == nil {
		// A literal null decodes without error into a nil map.
		return Absent(fmt.Errorf("decode JSON: body is null"))
	}
	return Result{Doc: doc}
}
