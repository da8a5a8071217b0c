package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"studyaid/internal/apperr"
)

func geminiPayload(texts ...string) map[string]any {
	parts := make([]any, 0, len(texts))
	for _, t := range texts {
		parts = append(parts, map[string]any{"text": t})
	}
	return map[string]any{
		"candidates": []any{
			map[string]any{"content": map[string]any{"role": "model", "parts": parts}},
		},
	}
}

func TestGeminiGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/demo-model:generateContent" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("api key header = %q", got)
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Contents) != 1 || req.Contents[0].Parts[0].Text != "hello" {
			t.Errorf("unexpected request body %+v", req)
		}
		_ = json.NewEncoder(w).Encode(geminiPayload("Q1...", " Q2..."))
	}))
	defer server.Close()

	client := NewGeminiClient(Config{APIKey: "test-key", BaseURL: server.URL, Model: "demo-model"})
	got, err := client.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "Q1... Q2..." {
		t.Fatalf("Generate = %q", got)
	}
}

func TestGeminiGenerateEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewGeminiClient(Config{APIKey: "k", BaseURL: server.URL})
	got, err := client.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "" {
		t.Fatalf("ожидалась пустая строка, получено %q", got)
	}
}

func TestGeminiGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer server.Close()

	calls := 0
	client := NewGeminiClient(Config{APIKey: "k", BaseURL: server.URL}, WithHTTPClient(&http.Client{
		Transport: roundTripCounter(&calls, http.DefaultTransport),
	}))
	_, err := client.Generate(context.Background(), "hello")
	if !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("ожидалась upstream-ошибка, получено %v", err)
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("причина потеряна: %v", err)
	}
	if calls != 1 {
		t.Fatalf("ожидался ровно один запрос (без ретраев), было %d", calls)
	}
}

func TestGeminiGenerateTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewGeminiClient(Config{APIKey: "k", BaseURL: server.URL, Timeout: 50 * time.Millisecond})
	start := time.Now()
	_, err := client.Generate(context.Background(), "hello")
	if !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("ожидалась upstream-ошибка по таймауту, получено %v", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Fatal("таймаут не сработал")
	}
}

func TestGeminiGenerateRequiresKey(t *testing.T) {
	client := NewGeminiClient(Config{BaseURL: "http://127.0.0.1:1"})
	if _, err := client.Generate(context.Background(), "hello"); !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("ожидалась upstream-ошибка без ключа, получено %v", err)
	}
	if _, err := client.Generate(context.Background(), "   "); !apperr.Is(err, apperr.KindInvalidInput) {
		t.Fatalf("ожидалась ошибка ввода для пустого промпта, получено %v", err)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func roundTripCounter(n *int, next http.RoundTripper) http.RoundTripper {
	return roundTripFunc(func(r *http.Request) (*http.Response, error) {
		*n++
		return next.RoundTrip(r)
	})
}
