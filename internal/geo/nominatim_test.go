package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNominatimClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "SwiftCargo-Test/1.0" {
			t.Errorf("unexpected user agent %q", ua)
		}
		q := r.URL.Query()
		if q.Get("q") != "Paris, France" {
			t.Errorf("unexpected query %q", q.Get("q"))
		}
		if q.Get("limit") != "5" {
			t.Errorf("expected limit clamped to 5, got %q", q.Get("limit"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"lat":"48.8588897","lon":"2.3200410","display_name":"Paris, Île-de-France, France","type":"administrative","addresstype":"city","importance":0.88},
			{"lat":"not-a-number","lon":"2.0","display_name":"broken"}
		]`))
	}))
	defer srv.Close()

	c := NewNominatimClient(NominatimConfig{BaseURL: srv.URL, UserAgent: "SwiftCargo-Test/1.0"})
	got, err := c.Search(context.Background(), "Paris, France", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 parsable candidate, got %d", len(got))
	}
	if got[0].PlaceType != "city" || got[0].Coordinate.Lat != 48.8588897 || got[0].Importance != 0.88 {
		t.Fatalf("unexpected candidate: %+v", got[0])
	}
}

func TestNominatimClient_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewNominatimClient(NominatimConfig{BaseURL: srv.URL})
	if _, err := c.Search(context.Background(), "Paris", 1); err == nil {
		t.Fatal("expected error on 429")
	}
}

func TestNominatimClient_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"oops"`))
	}))
	defer srv.Close()

	c := NewNominatimClient(NominatimConfig{BaseURL: srv.URL})
	if _, err := c.Search(context.Background(), "Paris", 1); err == nil {
		t.Fatal("expected error on malformed body")
	}
}

func TestNominatimClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	c := NewNominatimClient(NominatimConfig{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	if _, err := c.Search(context.Background(), "Paris", 1); err == nil {
		t.Fatal("expected timeout error")
	}
}
