package webhook

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-adoption-welfare/internal/platform/httpclient"
	"pet-adoption-welfare/internal/ports/notify"
)

var ErrNoURL = errors.New("webhook url not configured")

// Notifier hace POST del JSON de la notificación a una URL fija.
type Notifier struct {
	http *httpclient.Client
	url  string
}

func New(url string, timeout time.Duration, opts ...httpclient.Option) (*Notifier, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrNoURL
	}
	hc, err := httpclient.New(timeout, opts...)
	if err != nil {
		return nil, err
	}
	return &Notifier{http: hc, url: url}, nil
}

func (n *Notifier) Notify(ctx context.Context, msg notify.Notification) error {
	return n.http.DoJSON(ctx, http.MethodPost, n.url, msg, nil)
}
