package http

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

func loginRequest(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/auth/token", nil)
	req.RemoteAddr = addr
	return req
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	want := []int{200, 200, 200, 429, 429}
	for i, status := range want {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, loginRequest("10.0.0.9:40001"))
		if rec.Code != status {
			t.Errorf("attempt %d: status = %d, want %d", i+1, rec.Code, status)
		}
	}
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	rl := NewRateLimiter(2, 100*time.Millisecond)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := range 2 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, loginRequest("10.0.0.9:40001"))
		if rec.Code != http.StatusOK {
			t.Fatalf("attempt %d blocked early: %d", i+1, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, loginRequest("10.0.0.9:40001"))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("over-limit attempt passed: %d", rec.Code)
	}

	time.Sleep(150 * time.Millisecond)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, loginRequest("10.0.0.9:40001"))
	if rec.Code != http.StatusOK {
		t.Errorf("attempt after window expiry blocked: %d", rec.Code)
	}
}

func TestRateLimiter_PerClientBuckets(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for range 2 {
		handler.ServeHTTP(httptest.NewRecorder(), loginRequest("10.0.0.9:40001"))
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, loginRequest("10.0.0.9:40001"))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("first client not limited: %d", rec.Code)
	}

	// a different reader is unaffected
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, loginRequest("10.0.0.10:40001"))
	if rec.Code != http.StatusOK {
		t.Errorf("second client blocked: %d", rec.Code)
	}
}

func TestRateLimiter_ConcurrentExactCount(t *testing.T) {
	rl := NewRateLimiter(10, time.Second)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var wg sync.WaitGroup
	var mu sync.Mutex
	passed, blocked := 0, 0

	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, loginRequest("10.0.0.9:40001"))
			mu.Lock()
			defer mu.Unlock()
			switch rec.Code {
			case http.StatusOK:
				passed++
			case http.StatusTooManyRequests:
				blocked++
			}
		}()
	}
	wg.Wait()

	if passed != 10 || blocked != 10 {
		t.Errorf("passed = %d, blocked = %d, want 10/10", passed, blocked)
	}
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xri        string
		want       string
	}{
		{name: "forwarded-for wins", remoteAddr: "10.0.0.1:1", xff: "203.0.113.7", xri: "198.51.100.2", want: "203.0.113.7"},
		{name: "forwarded-for chain takes first hop", remoteAddr: "10.0.0.1:1", xff: "203.0.113.7, 70.41.3.18", want: "203.0.113.7"},
		{name: "real-ip when no forwarded-for", remoteAddr: "10.0.0.1:1", xri: "203.0.113.7", want: "203.0.113.7"},
		{name: "remote addr fallback", remoteAddr: "10.0.0.1:1", want: "10.0.0.1"},
		{name: "remote addr without port", remoteAddr: "10.0.0.1", want: "10.0.0.1"},
		{name: "invalid real-ip ignored", remoteAddr: "10.0.0.1:1", xri: "not-an-ip", want: "10.0.0.1"},
		{name: "ipv6 remote addr", remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/articles", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			if got := extractIP(req); got != tt.want {
				t.Errorf("extractIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFirstIP(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "203.0.113.7", want: "203.0.113.7"},
		{input: "203.0.113.7, 70.41.3.18", want: "203.0.113.7"},
		{input: "garbage, 70.41.3.18", want: ""},
		{input: "", want: ""},
		{input: "2001:db8::1, 2001:db8::2", want: "2001:db8::1"},
	}

	for _, tt := range tests {
		if got := parseFirstIP(tt.input); got != tt.want {
			t.Errorf("parseFirstIP(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLogging_PassesResponseThrough(t *testing.T) {
	logger := slog.Default()

	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusInternalServerError} {
		handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte("body"))
		}))

		req := httptest.NewRequest(http.MethodGet, "/articles?page=2", nil)
		req.RemoteAddr = "10.0.0.9:40001"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != status {
			t.Errorf("status = %d, want %d", rec.Code, status)
		}
		if rec.Body.String() != "body" {
			t.Errorf("body = %q", rec.Body.String())
		}
	}
}

func TestRecover(t *testing.T) {
	logger := slog.Default()

	tests := []struct {
		name       string
		panicValue any
		wantStatus int
	}{
		{name: "string panic", panicValue: "repository exploded", wantStatus: http.StatusInternalServerError},
		{name: "error panic", panicValue: fmt.Errorf("nil publisher"), wantStatus: http.StatusInternalServerError},
		{name: "integer panic", panicValue: 42, wantStatus: http.StatusInternalServerError},
		{name: "no panic", panicValue: nil, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := Recover(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.panicValue != nil {
					panic(tt.panicValue)
				}
				w.WriteHeader(http.StatusOK)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles", nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestLimitRequestBody(t *testing.T) {
	tests := []struct {
		name       string
		max        int64
		bodySize   int
		wantStatus int
	}{
		{name: "under the limit", max: 1024, bodySize: 512, wantStatus: http.StatusOK},
		{name: "exactly at the limit", max: 1024, bodySize: 1024, wantStatus: http.StatusOK},
		{name: "over the limit", max: 100, bodySize: 200, wantStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := LimitRequestBody(tt.max)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if _, err := io.ReadAll(r.Body); err != nil {
					w.WriteHeader(http.StatusRequestEntityTooLarge)
					return
				}
				w.WriteHeader(http.StatusOK)
			}))

			body := strings.NewReader(strings.Repeat("a", tt.bodySize))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/articles", body))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
