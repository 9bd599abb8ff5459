package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_Config(t *testing.T) {
	c := NewHTTPClient("http://localhost:8080", 3*time.Second)
	if c == nil || c.Client == nil {
		t.Fatal("expected non-nil client")
	}
	if c.BaseURL != "http://localhost:8080" {
		t.Fatalf("BaseURL = %q", c.BaseURL)
	}
	if got := c.GetClient().Timeout; got != 3*time.Second {
		t.Fatalf("timeout = %v, want 3s", got)
	}
	if got := c.Header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("Content-Type = %q", got)
	}
}

func TestNewHTTPClient_NoTimeout(t *testing.T) {
	c := NewHTTPClient("http://localhost", 0)
	if got := c.GetClient().Timeout; got != 0 {
		t.Fatalf("timeout = %v, want 0", got)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	a := NewHTTPClient("http://a", time.Second)
	b := NewHTTPClient("http://b", time.Second)

	if a.Client == b.Client {
		t.Fatal("expected independent resty clients")
	}
}

func TestHTTPClient_UsesBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api-gateway/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	resp, err := c.R().SetBody(map[string]any{"query": "{}"}).Post("/api-gateway/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode())
	}
}
