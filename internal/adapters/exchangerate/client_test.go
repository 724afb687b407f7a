package exchangerate_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"stayscout/internal/adapters/exchangerate"
	"stayscout/internal/domain"
)

func TestClient_Latest(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v4/latest/USD" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"base":  "USD",
			"date":  "2024-06-01",
			"rates": map[string]float64{"USD": 1, "EUR": 0.85},
		})
	}))
	defer ts.Close()

	rates, err := exchangerate.New(ts.URL, 2*time.Second).Latest(context.Background(), "usd")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if rates["EUR"] != 0.85 || !rates.Has("USD") {
		t.Fatalf("rates = %v", rates)
	}
}

func TestClient_Latest_NoRetryOnFailure(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(502)
	}))
	defer ts.Close()

	_, err := exchangerate.New(ts.URL, 2*time.Second).Latest(context.Background(), "USD")
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("err = %v, want ErrUpstream", err)
	}
	// single-shot: the browser fallback table is the recovery path
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("upstream hit %d times, want 1", n)
	}
}

func TestClient_Latest_EmptyTableIsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"base": "USD"})
	}))
	defer ts.Close()

	if _, err := exchangerate.New(ts.URL, time.Second).Latest(context.Background(), "USD"); !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("err = %v, want ErrUpstream", err)
	}
}
