package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDoJSON_RoundTripWithHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["msg"], "path": r.URL.Path})
	}))
	defer srv.Close()

	c, err := New(time.Second, WithBaseURL(srv.URL+"/"), WithHeader("X-Api-Key", "secret"))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	var out map[string]string
	if err := c.DoJSON(context.Background(), http.MethodPost, "v1/echo", map[string]string{"msg": "hola"}, &out); err != nil {
		t.Fatalf("DoJSON error: %v", err)
	}
	if out["echo"] != "hola" || out["path"] != "/v1/echo" {
		t.Fatalf("unexpected response: %#v", out)
	}
}

func TestDoJSON_Non2xxIsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c, _ := New(time.Second)
	err := c.DoJSON(context.Background(), http.MethodGet, srv.URL, nil, nil)
	if StatusCode(err) != http.StatusBadGateway {
		t.Fatalf("expected 502 HTTPError, got %v", err)
	}
}

func TestDoJSON_RelativeWithoutBaseURL(t *testing.T) {
	c, _ := New(0)
	if err := c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil); err == nil {
		t.Fatalf("expected error for relative path without base url")
	}
}
