package redispub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"pet-adoption-welfare/internal/ports/notify"
)

const DefaultChannel = "welfare.notifications"

var ErrNoAddr = errors.New("redis addr not configured")

// Publisher publica cada notificación como JSON en un canal pub/sub.
// El worker de email/SMS se suscribe del otro lado.
type Publisher struct {
	rdb     redis.UniversalClient
	channel string
}

func New(addr, channel string) (*Publisher, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, ErrNoAddr
	}
	return NewWithClient(redis.NewClient(&redis.Options{Addr: addr}), channel), nil
}

func NewWithClient(rdb redis.UniversalClient, channel string) *Publisher {
	channel = strings.TrimSpace(channel)
	if channel == "" {
		channel = DefaultChannel
	}
	return &Publisher{rdb: rdb, channel: channel}
}

func (p *Publisher) Notify(ctx context.Context, n notify.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	if err := p.rdb.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Ping se usa al arrancar para fallar temprano si redis no responde.
func (p *Publisher) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}

func (p *Publisher) Close() error {
	return p.rdb.Close()
}
