package http

import (
	"context"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// delayExecutor is a transport stub returning a canned result after a fixed
// delay, or a canned error.
type delayExecutor struct {
	delay  time.Duration
	result *Result
	err    error
	calls  int
}

func (e *delayExecutor) Data(ctx context.Context, req Requestable) (*Result, error) {
	e.calls++
	if e.delay > 0 {
		time.Sleep(e.delay)
	}
	if e.err != nil {
		return nil, e.err
	}
	return e.result, nil
}

func TestExecute_Metrics(t *testing.T) {
	const delay = 20 * time.Millisecond
	result := &Result{StatusCode: 200, Status: "200 OK", Body: []byte("payload")}
	stub := &delayExecutor{delay: delay, result: result}
	req := NewRequest(MethodGet, "/").WithBaseURL("https://example.com")

	before := time.Now()
	resp, err := Execute(context.Background(), stub, req)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if resp.Metrics.Duration < delay {
		t.Errorf("Expected duration >= %v, got %v", delay, resp.Metrics.Duration)
	}
	if resp.Metrics.Start.Before(before) || resp.Metrics.Start.After(before.Add(time.Second)) {
		t.Errorf("Expected start close to the wall clock before the call, got %v", resp.Metrics.Start)
	}
	if resp.Result != result {
		t.Error("Expected the raw result to pass through unchanged")
	}
	if resp.Request != Requestable(req) {
		t.Error("Expected the envelope to carry the input description")
	}
	if stub.calls != 1 {
		t.Errorf("Expected exactly one Data call, got %d", stub.calls)
	}
}

func TestExecute_ErrorPropagatesWithoutEnvelope(t *testing.T) {
	transportErr := errors.New("connection refused")
	stub := &delayExecutor{err: transportErr}
	req := NewRequest(MethodGet, "/").WithBaseURL("https://example.com")

	resp, err := Execute(context.Background(), stub, req)
	if resp != nil {
		t.Error("Expected no envelope on transport failure")
	}
	if !errors.Is(err, transportErr) {
		t.Errorf("Expected the transport error unchanged, got %v", err)
	}
}

func TestClient_Do(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("X-Test"); got != "yes" {
			t.Errorf("Expected request header X-Test=yes, got %q", got)
		}
		w.Header().Set("X-Server", "courier-test")
		w.WriteHeader(nethttp.StatusCreated)
		w.Write([]byte(`{"id":7,"name":"John"}`))
	}))
	defer server.Close()

	client := NewClient(WithTimeout(5 * time.Second))
	req := NewRequest(MethodPost, "/users").
		WithBaseURL(server.URL).
		WithHeader(Header{Key: "X-Test", Value: "yes"}).
		WithParam("name", "John")

	resp, err := client.Do(context.Background(), req)
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if resp.Result.StatusCode != 201 {
		t.Errorf("Expected status 201, got %d", resp.Result.StatusCode)
	}
	if !resp.IsSuccess() {
		t.Error("Expected a success response")
	}
	if got := resp.GetHeader("X-Server"); got != "courier-test" {
		t.Errorf("Expected response header X-Server=courier-test, got %q", got)
	}
	if got := resp.Query("name").String(); got != "John" {
		t.Errorf("Expected body name John, got %q", got)
	}
	if resp.Metrics.Duration <= 0 {
		t.Errorf("Expected a positive duration, got %v", resp.Metrics.Duration)
	}
}

func TestClient_DefaultHeaders(t *testing.T) {
	var gotAgent, gotAccept string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	client := NewClient(
		WithHeader("User-Agent", "courier/1.0"),
		WithHeader("Accept", "application/json"),
	)
	req := NewRequest(MethodGet, "/").
		WithBaseURL(server.URL).
		WithHeader(Accept("text/plain"))

	if _, err := client.Do(context.Background(), req); err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	if gotAgent != "courier/1.0" {
		t.Errorf("Expected client default User-Agent, got %q", gotAgent)
	}
	if gotAccept != "text/plain" {
		t.Errorf("Expected the request's own Accept to win over the default, got %q", gotAccept)
	}
}

func TestClient_BuildFailureSurfaces(t *testing.T) {
	client := NewClient()
	req := NewRequest(MethodGet, "").WithBaseURL("://")

	_, err := client.Do(context.Background(), req)
	if !errors.Is(err, ErrInvalidURL) {
		t.Errorf("Expected ErrInvalidURL, got %v", err)
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(nethttp.StatusOK)
	}))
	defer server.Close()

	client := NewClient()
	req := NewRequest(MethodGet, "/").WithBaseURL(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	resp, err := client.Do(ctx, req)
	if err == nil {
		t.Fatal("Expected cancellation to surface as an error")
	}
	if resp != nil {
		t.Error("Expected no envelope on cancellation")
	}
}
