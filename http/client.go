package http

import (
	"context"
	"io"
	nethttp "net/http"
	"time"
)

// Executor is the single execution primitive: perform raw I/O for one
// request description and return the raw result. Implementations must be
// safe for concurrent calls with distinct descriptions. Errors pass through
// to the caller unchanged; the executor performs exactly one attempt per
// call with no retry of its own.
type Executor interface {
	Data(ctx context.Context, req Requestable) (*Result, error)
}

// Execute performs one timed execution: it records a wall-clock start,
// invokes the executor's Data exactly once, and wraps the request, the raw
// result, and the elapsed-time metrics into an envelope. A transport failure
// (including cancellation) propagates unchanged and yields no envelope and
// no metrics.
func Execute(ctx context.Context, e Executor, req Requestable) (*Response, error) {
	start := time.Now()
	result, err := e.Data(ctx, req)
	if err != nil {
		return nil, err
	}
	return &Response{
		Request: req,
		Result:  result,
		Metrics: Metrics{Start: start, Duration: time.Since(start)},
	}, nil
}

// Client is a net/http-backed Executor with configurable defaults.
type Client struct {
	httpClient *nethttp.Client
	headers    map[string]string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a client with the given options. The default underlying
// http.Client carries a 30 second timeout.
func NewClient(options ...ClientOption) *Client {
	client := &Client{
		httpClient: &nethttp.Client{
			Timeout: 30 * time.Second,
		},
		headers: make(map[string]string),
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// WithTimeout sets the overall per-request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying net/http client.
func WithHTTPClient(httpClient *nethttp.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader adds a default header applied to every request the client
// sends, unless the request already sets that key.
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// Data builds the description, applies the client's default headers, sends
// the request, and buffers the response body into a Result.
func (c *Client) Data(ctx context.Context, req Requestable) (*Result, error) {
	httpReq, err := req.Build()
	if err != nil {
		return nil, err
	}
	httpReq = httpReq.WithContext(ctx)

	for key, value := range c.headers {
		if httpReq.Header.Get(key) == "" {
			httpReq.Header.Set(key, value)
		}
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	return &Result{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Header:     httpResp.Header,
		Body:       body,
	}, nil
}

// Do is a convenience wrapper running the timed Execute over this client.
func (c *Client) Do(ctx context.Context, req Requestable) (*Response, error) {
	return Execute(ctx, c, req)
}
