package scholar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/scoutlab/scholarscout-cli/internal/core/domain"
	"github.com/scoutlab/scholarscout-cli/internal/logger"
)

const (
	// DefaultBaseURL is the Semantic Scholar Graph API root.
	DefaultBaseURL = "https://api.semanticscholar.org/graph/v1"

	// DefaultTimeout is the per-call HTTP timeout. Multi-call
	// operations pay this budget per call, never in aggregate.
	DefaultTimeout = 30 * time.Second

	// KeyedDelay is the pacing delay when an API key is configured.
	KeyedDelay = 1 * time.Second

	// UnkeyedDelay is the pacing delay without an API key.
	UnkeyedDelay = 3 * time.Second
)

// Config holds the client configuration. The zero value of optional
// fields selects the documented defaults.
type Config struct {
	// BaseURL overrides the API root (used by tests).
	BaseURL string

	// APIKey is the optional upstream credential. Its absence only
	// lengthens the pacing delay, never disables functionality.
	APIKey string

	// Delay overrides the pacing delay (used by tests). When zero the
	// delay is derived from APIKey presence.
	Delay time.Duration

	// Timeout overrides the per-call HTTP timeout.
	Timeout time.Duration
}

// PaceDelay returns the effective inter-call delay for the config.
func (c Config) PaceDelay() time.Duration {
	if c.Delay > 0 {
		return c.Delay
	}
	if c.APIKey != "" {
		return KeyedDelay
	}
	return UnkeyedDelay
}

// Client is the rate-paced Semantic Scholar API client.
type Client struct {
	baseURL    string
	apiKey     string
	delay      time.Duration
	httpClient *http.Client

	mu          sync.Mutex
	nextAllowed time.Time
}

// NewClient creates a new client from the config.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.APIKey,
		delay:      cfg.PaceDelay(),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// get performs one GET call and decodes the JSON payload into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

// post performs one POST call with a JSON body and decodes into out.
func (c *Client) post(ctx context.Context, path string, params url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, params, body, out)
}

// do performs exactly one network call. It first waits out any pacing
// window left by the previous call, then performs the request, maps
// the status onto the error model, and finally arms the pacing window
// again. The window is armed on every exit path, failures included, so
// a failing caller cannot burst.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	if err := c.waitPace(ctx); err != nil {
		return err
	}
	defer c.armPace()

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("scholar: encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("scholar: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	logger.Debug("scholar: %s %s", method, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("scholar: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("scholar: %w, please wait and try again", domain.ErrRateLimited)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("scholar: %w", domain.ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("scholar: decode response: %w", err)
		}
	}
	return nil
}

// waitPace blocks until the pacing window from the previous call has
// elapsed.
func (c *Client) waitPace(ctx context.Context) error {
	c.mu.Lock()
	wait := time.Until(c.nextAllowed)
	c.mu.Unlock()

	if wait <= 0 {
		return nil
	}

	logger.Debug("scholar: pacing for %s", wait.Round(time.Millisecond))
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// armPace starts the pacing window after a call completes.
func (c *Client) armPace() {
	c.mu.Lock()
	c.nextAllowed = time.Now().Add(c.delay)
	c.mu.Unlock()
}
