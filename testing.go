package hxhook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Stub is a controllable hook for tests. Every call is recorded and returns
// the same pending future, which the test settles with Resolve or Reject.
//
//	stub := hxhook.NewStub()
//	page := hxhook.With(&Page{}, reg.Prefetch(stub.Hook))
//	done := engine.GetPrefetchedData(ctx, page, params)
//	stub.Resolve("profile")
type Stub struct {
	mu     sync.Mutex
	calls  []any
	future *Future
}

// NewStub creates a stub whose calls return a pending future.
func NewStub() *Stub {
	return &Stub{future: NewFuture()}
}

// Hook records the call and returns the stub's future.
func (s *Stub) Hook(ctx context.Context, locals any) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, locals)
	return s.future
}

// Resolve settles the stub's future successfully.
func (s *Stub) Resolve(v any) {
	s.future.Resolve(v)
}

// Reject settles the stub's future with err.
func (s *Stub) Reject(err error) {
	s.future.Reject(err)
}

// CallCount returns how many times the hook ran.
func (s *Stub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// Call returns the locals passed on the i-th call.
func (s *Stub) Call(i int) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.calls) {
		return nil
	}
	return s.calls[i]
}

// TestResult holds the response of a prerendered request.
type TestResult struct {
	HTML       string
	StatusCode int
	Headers    http.Header
}

// TestServe runs a GET request through Engine.Serve and records the response.
//
//	result := engine.TestServe(page, nil)
//	if !result.HTMLContains("Ada") {
//	    t.Fatal("missing profile name")
//	}
func (e *Engine) TestServe(components any, locals any) *TestResult {
	return e.TestServeWithContext(context.Background(), components, locals)
}

// TestServeWithContext is TestServe with a request context, for fetchers
// that read request-scoped values.
func (e *Engine) TestServeWithContext(ctx context.Context, components any, locals any) *TestResult {
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	e.Serve(components, locals).ServeHTTP(rec, req)

	return &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}
}

// IsOK returns true for a 200 response.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}
