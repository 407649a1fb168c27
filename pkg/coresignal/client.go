// Package coresignal provides a client for the CoreSignal employee
// data API.
package coresignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/sells-group/people-search/internal/profile"
)

const (
	defaultBaseURL = "https://api.coresignal.com/cdapi"
	searchPath     = "/v2/employee_base/search/filter"
	collectPath    = "/v2/employee_base/collect/"
)

// Payload is the JSON filter body for the employee search endpoint.
type Payload struct {
	FullName    string `json:"full_name,omitempty"`
	Title       string `json:"title,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

// HasCompany reports whether the payload carries a company filter.
func (p Payload) HasCompany() bool { return p.CompanyName != "" }

// WithoutCompany returns a copy of the payload with the company filter
// removed.
func (p Payload) WithoutCompany() Payload {
	p.CompanyName = ""
	return p
}

// StatusError is a non-2xx response from the API. The body is kept so
// callers can surface upstream detail.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("coresignal: status %d: %s", e.StatusCode, e.Body)
}

// Client defines the CoreSignal employee operations.
type Client interface {
	// SearchEmployeeIDs runs the filter search and returns matching
	// employee IDs.
	SearchEmployeeIDs(ctx context.Context, payload Payload) ([]int64, error)
	// CollectEmployee fetches the full record for one employee ID.
	CollectEmployee(ctx context.Context, id int64) (profile.Raw, error)
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLimiter paces collect calls. Collect is billed per record and is
// the call that fans out, so it is the one worth throttling.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *httpClient) {
		c.limiter = l
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a CoreSignal API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *httpClient) SearchEmployeeIDs(ctx context.Context, payload Payload) ([]int64, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, eris.Wrap(err, "coresignal: marshal search payload")
	}

	respBody, statusCode, err := c.do(ctx, http.MethodPost, c.baseURL+searchPath, body)
	if err != nil {
		return nil, eris.Wrap(err, "coresignal: search request")
	}
	if statusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: statusCode, Body: string(respBody)}
	}

	var ids []int64
	if err := json.Unmarshal(respBody, &ids); err != nil {
		return nil, eris.Wrap(err, "coresignal: unmarshal id list")
	}
	return ids, nil
}

func (c *httpClient) CollectEmployee(ctx context.Context, id int64) (profile.Raw, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "coresignal: collect rate limit")
		}
	}

	url := fmt.Sprintf("%s%s%d", c.baseURL, collectPath, id)
	respBody, statusCode, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, eris.Wrap(err, "coresignal: collect request")
	}
	if statusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: statusCode, Body: string(respBody)}
	}

	var record map[string]any
	if err := json.Unmarshal(respBody, &record); err != nil {
		return nil, eris.Wrap(err, "coresignal: unmarshal employee record")
	}
	return profile.Raw(record), nil
}

// retryableStatusCode returns true if the HTTP status code should
// trigger a retry.
func retryableStatusCode(code int) bool {
	return code == http.StatusTooManyRequests ||
		code == http.StatusInternalServerError ||
		code == http.StatusBadGateway ||
		code == http.StatusServiceUnavailable
}

// do executes a request with exponential backoff retries on transient
// failures (429, 500, 502, 503). Returns the response body and status
// code, or the last error after exhausting retries.
func (c *httpClient) do(ctx context.Context, method, url string, payload []byte) ([]byte, int, error) {
	const maxAttempts = 3
	backoff := 1 * time.Second

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, body)
		if err != nil {
			return nil, 0, eris.Wrap(err, "create request")
		}
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			if attempt < maxAttempts {
				select {
				case <-ctx.Done():
					return nil, 0, ctx.Err()
				case <-time.After(backoff):
				}
				backoff *= 2
				continue
			}
			return nil, 0, lastErr
		}

		respBody, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			return nil, resp.StatusCode, eris.Wrap(readErr, "read response body")
		}

		if retryableStatusCode(resp.StatusCode) && attempt < maxAttempts {
			lastErr = eris.Errorf("status %d: %s", resp.StatusCode, string(respBody))
			select {
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
			continue
		}

		return respBody, resp.StatusCode, nil
	}

	return nil, 0, lastErr
}
