// Package client is the Go SDK for the local market API. It carries the data
// layer the mobile app uses: an HTTP client with retry, an in-memory cart and
// custom-order store, checkout computation, a file-backed session store and
// order tracking helpers.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	maxRetries = 3
	retryDelay = 1000 * time.Millisecond
)

// APIError is a non-2xx response from the server. Message carries the
// server's "error" field when the body had one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger

	// sleep is swapped out in tests so retries don't take real time.
	sleep func(time.Duration)
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     zerolog.Nop(),
		sleep:      time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func retryableStatus(code int) bool {
	return code == http.StatusBadGateway ||
		code == http.StatusServiceUnavailable ||
		code == http.StatusGatewayTimeout
}

// do sends the request, retrying up to maxRetries times on transport errors
// and 502/503/504 responses with a linearly growing delay. Other error
// statuses are returned to the caller immediately.
func (c *Client) do(method, path string, body interface{}) ([]byte, int, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, 0, err
		}
	}

	url := c.baseURL + path
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			c.sleep(retryDelay * time.Duration(attempt))
			c.logger.Debug().Str("url", url).Int("attempt", attempt).Msg("retrying request")
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequest(method, url, reader)
		if err != nil {
			return nil, 0, err
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if retryableStatus(resp.StatusCode) {
			lastErr = &APIError{StatusCode: resp.StatusCode, Message: serverError(data)}
			continue
		}

		return data, resp.StatusCode, nil
	}

	c.logger.Debug().Str("url", url).Err(lastErr).Msg("request failed after retries")
	return nil, 0, lastErr
}

// serverError pulls the "error" field out of an error response body.
func serverError(data []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Error
}

// getJSON is the read path: any failure, including 404, leaves out untouched
// so callers fall back to their zero value.
func (c *Client) getJSON(path string, out interface{}) error {
	data, status, err := c.do(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return &APIError{StatusCode: status, Message: serverError(data)}
	}
	return json.Unmarshal(data, out)
}

// sendJSON is the write path: errors are returned, with the server's message
// surfaced when present.
func (c *Client) sendJSON(method, path string, body, out interface{}) error {
	data, status, err := c.do(method, path, body)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return &APIError{StatusCode: status, Message: serverError(data)}
	}
	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}
