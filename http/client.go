// Package http provides an HTTP implementation of stockbot.Indexer and
// stockbot.Asker that talks to the research service's JSON API.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/stockbot"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is where the research service listens by default.
const DefaultBaseURL = "http://localhost:8000"

// MaxResponseSize caps how many bytes of a response body are read.
const MaxResponseSize = 10 << 20

// Ensure Client implements the service interfaces at compile time.
var (
	_ stockbot.Indexer = (*Client)(nil)
	_ stockbot.Asker   = (*Client)(nil)
)

// Client calls the research service endpoints.
type Client struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets a timeout for each request. By default requests have no
// timeout and are bounded only by the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithLimiter throttles outgoing requests with the given limiter.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// NewClient creates a Client for the service at baseURL.
// An empty baseURL means DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{}
	}
	if c.timeout > 0 {
		hc := *c.client
		hc.Timeout = c.timeout
		c.client = &hc
	}

	return c
}

type processURLsRequest struct {
	URLs []string `json:"urls"`
}

type processURLsResponse struct {
	Message        string `json:"message"`
	DocumentsCount *int   `json:"documents_count"`
}

// ProcessURLs posts the URLs to /process-urls and returns the document count.
func (c *Client) ProcessURLs(ctx context.Context, urls []string) (*stockbot.IngestResult, error) {
	if urls == nil {
		urls = []string{}
	}

	var resp processURLsResponse
	if err := c.post(ctx, "/process-urls", processURLsRequest{URLs: urls}, &resp); err != nil {
		return nil, err
	}
	if resp.DocumentsCount == nil {
		return nil, stockbot.Errorf(stockbot.EINTERNAL, "malformed response from /process-urls: missing documents_count")
	}

	return &stockbot.IngestResult{
		DocumentsCount: *resp.DocumentsCount,
		Message:        resp.Message,
	}, nil
}

type askQuestionRequest struct {
	Question string `json:"question"`
}

type askQuestionResponse struct {
	Answer  *string `json:"answer"`
	Sources string  `json:"sources"`
}

// Ask posts the question to /ask-question and splits the returned sources.
func (c *Client) Ask(ctx context.Context, question string) (*stockbot.Answer, error) {
	if question == "" {
		return nil, stockbot.Errorf(stockbot.EINVALID, "question required")
	}

	var resp askQuestionResponse
	if err := c.post(ctx, "/ask-question", askQuestionRequest{Question: question}, &resp); err != nil {
		return nil, err
	}
	if resp.Answer == nil {
		return nil, stockbot.Errorf(stockbot.EINTERNAL, "malformed response from /ask-question: missing answer")
	}

	return &stockbot.Answer{
		Text:    *resp.Answer,
		Sources: stockbot.SplitSources(resp.Sources),
	}, nil
}

// errorResponse is the error body the service sends with non-2xx statuses.
type errorResponse struct {
	Detail any `json:"detail"`
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", path, err)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return stockbot.Errorf(stockbot.EUNAVAILABLE, "%s: %v", path, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return stockbot.Errorf(stockbot.EINVALID, "%s: %v", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return stockbot.Errorf(stockbot.EUNAVAILABLE, "%s: %v", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return stockbot.Errorf(stockbot.EUNAVAILABLE, "%s: reading response: %v", path, err)
	}
	if len(data) > MaxResponseSize {
		return stockbot.Errorf(stockbot.EINTERNAL, "response from %s exceeds %d bytes", path, MaxResponseSize)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(path, resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return stockbot.Errorf(stockbot.EINTERNAL, "malformed response from %s: %v", path, err)
	}
	return nil
}

// statusError converts a non-2xx response into an application error,
// including the service's error detail when the body carries one.
func statusError(path string, status int, body []byte) error {
	code := stockbot.EINTERNAL
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		code = stockbot.EINVALID
	case http.StatusNotFound:
		code = stockbot.ENOTFOUND
	}

	msg := fmt.Sprintf("%s returned HTTP %d", path, status)

	var e errorResponse
	if json.Unmarshal(body, &e) == nil && e.Detail != nil {
		switch d := e.Detail.(type) {
		case string:
			msg += ": " + d
		default:
			if b, err := json.Marshal(d); err == nil {
				msg += ": " + string(b)
			}
		}
	}

	return stockbot.Errorf(code, "%s", msg)
}
