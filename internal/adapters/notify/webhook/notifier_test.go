package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-adoption-welfare/internal/platform/httpclient"
	"pet-adoption-welfare/internal/ports/notify"
)

func TestNotifier_PostsNotification(t *testing.T) {
	var got notify.Notification
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	n, err := New(srv.URL+"/hooks/welfare", 0)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	err = n.Notify(context.Background(), notify.Notification{
		ID:          "n-1",
		Kind:        notify.KindWelfareRisk,
		RecipientID: "shelter-1",
	})
	if err != nil {
		t.Fatalf("Notify error: %v", err)
	}
	if got.ID != "n-1" || got.Kind != notify.KindWelfareRisk || got.RecipientID != "shelter-1" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestNotifier_UpstreamErrorIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n, _ := New(srv.URL, 0)
	err := n.Notify(context.Background(), notify.Notification{ID: "n-2"})
	if httpclient.StatusCode(err) != http.StatusBadGateway {
		t.Fatalf("expected 502 HTTPError, got %v", err)
	}
}

func TestNew_RequiresURL(t *testing.T) {
	if _, err := New(" ", 0); err != ErrNoURL {
		t.Fatalf("expected ErrNoURL, got %v", err)
	}
}
