// Package testutil provides testing utilities for the CAsense server.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// SetTestEnv points the server configuration at a fresh temporary data
// directory for the duration of the test.
func SetTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CASENSE_DATA_DIR", t.TempDir())
	t.Setenv("CASENSE_DEBUG", "true")
	t.Setenv("CASENSE_LISTEN_ADDR", ":0")
}

// TestServer runs the application's router behind httptest and offers
// request helpers that fail the test on transport errors.
type TestServer struct {
	Server  *httptest.Server
	BaseURL string
	t       *testing.T
}

// NewTestServer starts a TestServer for the given router.
func NewTestServer(t *testing.T, router http.Handler) *TestServer {
	t.Helper()
	server := httptest.NewServer(router)
	return &TestServer{Server: server, BaseURL: server.URL, t: t}
}

// Close shuts the server down.
func (ts *TestServer) Close() {
	ts.Server.Close()
}

// GET requests the given path.
func (ts *TestServer) GET(path string) *http.Response {
	ts.t.Helper()
	return ts.do(http.MethodGet, path, nil)
}

// DELETE requests the given path.
func (ts *TestServer) DELETE(path string) *http.Response {
	ts.t.Helper()
	return ts.do(http.MethodDelete, path, nil)
}

// PostJSON sends v as a JSON POST body.
func (ts *TestServer) PostJSON(path string, v any) *http.Response {
	ts.t.Helper()
	return ts.do(http.MethodPost, path, ts.encode(path, v))
}

// PutJSON sends v as a JSON PUT body.
func (ts *TestServer) PutJSON(path string, v any) *http.Response {
	ts.t.Helper()
	return ts.do(http.MethodPut, path, ts.encode(path, v))
}

func (ts *TestServer) encode(path string, v any) io.Reader {
	body, err := json.Marshal(v)
	if err != nil {
		ts.t.Fatalf("encoding body for %s: %v", path, err)
	}
	return bytes.NewReader(body)
}

func (ts *TestServer) do(method, path string, body io.Reader) *http.Response {
	req, err := http.NewRequest(method, ts.BaseURL+path, body)
	if err != nil {
		ts.t.Fatalf("%s %s: %v", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		ts.t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

// ReadBody drains the response body into a string.
func ReadBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response body: %v", err)
	}
	return string(body)
}

// DecodeBody unmarshals the JSON response body into v.
func DecodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
}
