package testutil

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

// ResponseAssertion chains checks against a single HTTP response. The body is
// read once, up front, so every check can quote it on failure.
type ResponseAssertion struct {
	t      *testing.T
	status int
	header http.Header
	body   string
}

// AssertResponse consumes resp and returns an assertion over it.
func AssertResponse(t *testing.T, resp *http.Response) *ResponseAssertion {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response body: %v", err)
	}
	return &ResponseAssertion{
		t:      t,
		status: resp.StatusCode,
		header: resp.Header,
		body:   string(body),
	}
}

// Status checks the status code.
func (ra *ResponseAssertion) Status(code int) *ResponseAssertion {
	ra.t.Helper()
	if ra.status != code {
		ra.t.Errorf("status = %d, want %d\nbody: %s", ra.status, code, snippet(ra.body))
	}
	return ra
}

// StatusOK checks for 200.
func (ra *ResponseAssertion) StatusOK() *ResponseAssertion {
	ra.t.Helper()
	return ra.Status(http.StatusOK)
}

// ContentTypeJSON checks the Content-Type header.
func (ra *ResponseAssertion) ContentTypeJSON() *ResponseAssertion {
	ra.t.Helper()
	if ct := ra.header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		ra.t.Errorf("Content-Type = %q, want application/json", ct)
	}
	return ra
}

// Contains checks that the body includes substr.
func (ra *ResponseAssertion) Contains(substr string) *ResponseAssertion {
	ra.t.Helper()
	if !strings.Contains(ra.body, substr) {
		ra.t.Errorf("body missing %q\nbody: %s", substr, snippet(ra.body))
	}
	return ra
}

// ContainsAll checks every substring in turn.
func (ra *ResponseAssertion) ContainsAll(substrs ...string) *ResponseAssertion {
	ra.t.Helper()
	for _, substr := range substrs {
		ra.Contains(substr)
	}
	return ra
}

// NotContains checks that the body excludes substr.
func (ra *ResponseAssertion) NotContains(substr string) *ResponseAssertion {
	ra.t.Helper()
	if strings.Contains(ra.body, substr) {
		ra.t.Errorf("body unexpectedly contains %q", substr)
	}
	return ra
}

// Body returns the full response body.
func (ra *ResponseAssertion) Body() string {
	return ra.body
}

func snippet(s string) string {
	const max = 500
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
