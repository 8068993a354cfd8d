package http

import (
	"testing"
	"time"
)

func TestResponse_StatusPredicates(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		success     bool
		redirect    bool
		clientError bool
		serverError bool
	}{
		{"OK", 200, true, false, false, false},
		{"Created", 201, true, false, false, false},
		{"Moved", 301, false, true, false, false},
		{"NotFound", 404, false, false, true, false},
		{"Internal", 500, false, false, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := &Response{Result: &Result{StatusCode: tc.statusCode}}
			if resp.IsSuccess() != tc.success {
				t.Errorf("IsSuccess: expected %v", tc.success)
			}
			if resp.IsRedirect() != tc.redirect {
				t.Errorf("IsRedirect: expected %v", tc.redirect)
			}
			if resp.IsClientError() != tc.clientError {
				t.Errorf("IsClientError: expected %v", tc.clientError)
			}
			if resp.IsServerError() != tc.serverError {
				t.Errorf("IsServerError: expected %v", tc.serverError)
			}
		})
	}
}

func TestResponse_BodyHelpers(t *testing.T) {
	resp := &Response{Result: &Result{Body: []byte(`{"users":[{"name":"Ann"}]}`)}}

	if resp.BodyString() != `{"users":[{"name":"Ann"}]}` {
		t.Errorf("Unexpected body string %q", resp.BodyString())
	}

	var decoded struct {
		Users []struct {
			Name string `json:"name"`
		} `json:"users"`
	}
	if err := resp.JSON(&decoded); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if len(decoded.Users) != 1 || decoded.Users[0].Name != "Ann" {
		t.Errorf("Unexpected decoded value %+v", decoded)
	}

	if got := resp.Query("users.0.name").String(); got != "Ann" {
		t.Errorf("Expected query to return Ann, got %q", got)
	}
}

func TestResponse_CopyHelpers(t *testing.T) {
	original := &Response{
		Result:  &Result{StatusCode: 200},
		Metrics: Metrics{Duration: time.Second},
	}

	withMetrics := original.WithMetrics(Metrics{Duration: 2 * time.Second})
	if withMetrics == original {
		t.Error("Expected WithMetrics to return a copy")
	}
	if original.Metrics.Duration != time.Second {
		t.Error("Expected the original metrics untouched")
	}

	replacement := &Result{StatusCode: 204}
	withResult := original.WithResult(replacement)
	if withResult.Result != replacement || original.Result.StatusCode != 200 {
		t.Error("Expected WithResult to swap only the copy's result")
	}
}

func TestMetrics_Seconds(t *testing.T) {
	m := Metrics{Duration: 1500 * time.Millisecond}
	if m.Seconds() != 1.5 {
		t.Errorf("Expected 1.5 seconds, got %v", m.Seconds())
	}
}
