//go:build integration || !unit

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stayscout/internal/adapters/exchangerate"
	server "stayscout/internal/adapters/http_server"
	"stayscout/internal/adapters/xotelo"
	"stayscout/internal/app"
	"stayscout/internal/domain"
)

// fakeUpstreams stands in for both third-party APIs on one mux.
func fakeUpstreams(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/search", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-rapidapi-key") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		loc := r.URL.Query().Get("query")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"hotel_id": "e2e-1", "hotel_name": "Seaside Palace", "price": float64(210), "rating": 4.6,
				"amenities": []any{"Pool", "Free WiFi"}, "city": loc},
			{"name": "Station Stop", "min_price": float64(55), "review_score": 3.2},
			{"name": "No Frills"},
		})
	})

	mux.HandleFunc("/v4/latest/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"base": "USD", "date": "2024-06-01",
			"rates": map[string]float64{"USD": 1, "EUR": 0.85, "GBP": 0.73},
		})
	})

	return httptest.NewServer(mux)
}

func newAPI(t *testing.T, upstream string) *httptest.Server {
	t.Helper()
	hotels, err := xotelo.New(upstream, "", "e2e-key", 100, 2*time.Second)
	if err != nil {
		t.Fatalf("xotelo client: %v", err)
	}
	rates := exchangerate.New(upstream, 2*time.Second)

	srv := server.New()
	srv.MountHandlers(&server.Handlers{
		Search:  app.NewSearchService(hotels),
		Convert: app.NewConvertService(rates),
	})
	return httptest.NewServer(srv.Mux())
}

func TestHTTP_EndToEnd_SearchHotels(t *testing.T) {
	up := fakeUpstreams(t)
	defer up.Close()
	api := newAPI(t, up.URL)
	defer api.Close()

	res, err := http.Get(fmt.Sprintf("%s/search-hotels?location=Nice&minRating=3&sortBy=price&sortOrder=desc&limit=2", api.URL))
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}

	var page domain.SearchPage
	if err := json.NewDecoder(res.Body).Decode(&page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// "No Frills" (rating 0) is filtered; the rest come back price-desc.
	if page.Total != 2 || page.TotalPages != 1 || page.HasMore {
		t.Fatalf("metadata: %+v", page)
	}
	if page.Hotels[0].ID != "e2e-1" || page.Hotels[0].Location != "Nice" {
		t.Fatalf("first hotel: %+v", page.Hotels[0])
	}
	if page.Hotels[1].Name != "Station Stop" || page.Hotels[1].Price != 55 {
		t.Fatalf("second hotel: %+v", page.Hotels[1])
	}
	// placeholder image filled in during normalization
	if page.Hotels[1].Image == "" {
		t.Fatalf("missing image default: %+v", page.Hotels[1])
	}
}

func TestHTTP_EndToEnd_ConvertCurrency(t *testing.T) {
	up := fakeUpstreams(t)
	defer up.Close()
	api := newAPI(t, up.URL)
	defer api.Close()

	res, err := http.Get(api.URL + "/convert-currency?amount=100&from=USD&to=EUR")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}

	var conv domain.Conversion
	if err := json.NewDecoder(res.Body).Decode(&conv); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if conv.Rate != 0.85 || conv.ConvertedAmount != 85 || conv.From != "USD" || conv.To != "EUR" {
		t.Fatalf("conv: %+v", conv)
	}
}

func TestHTTP_EndToEnd_UpstreamAuthFailure(t *testing.T) {
	authFail := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer authFail.Close()
	api := newAPI(t, authFail.URL)
	defer api.Close()

	res, err := http.Get(api.URL + "/search-hotels?location=Nice")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", res.StatusCode)
	}
}
