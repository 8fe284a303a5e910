package escalation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pet-adoption-welfare/internal/platform/logger"
	"pet-adoption-welfare/internal/platform/metrics"
	"pet-adoption-welfare/internal/ports/notify"
)

const DefaultNotifyTimeout = 3 * time.Second

// Notice es una notificación a levantar hacia un destinatario.
type Notice struct {
	Kind        notify.Kind
	RecipientID string
	Subject     string
	Body        string
	Metadata    map[string]string
}

// Escalator entrega notices en modo best-effort: el error se loguea y se
// cuenta, nunca vuelve al caller. Un *Escalator nil descarta todo.
type Escalator struct {
	notifier notify.Notifier
	log      logger.Logger
	metrics  *metrics.Recorder
	timeout  time.Duration
	now      func() time.Time
}

type Option func(*Escalator)

func WithTimeout(d time.Duration) Option {
	return func(e *Escalator) {
		if d > 0 {
			e.timeout = d
		}
	}
}

func WithMetrics(m *metrics.Recorder) Option {
	return func(e *Escalator) { e.metrics = m }
}

func NewEscalator(n notify.Notifier, log logger.Logger, opts ...Option) *Escalator {
	if log == nil {
		log = logger.NewNop()
	}
	e := &Escalator{
		notifier: n,
		log:      log.With(map[string]any{"component": "escalation"}),
		timeout:  DefaultNotifyTimeout,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Raise entrega el notice y devuelve si se pudo. La cancelación del request
// no corta la entrega; el timeout propio sí.
func (e *Escalator) Raise(ctx context.Context, n Notice) bool {
	if e == nil || e.notifier == nil {
		return false
	}
	if n.RecipientID == "" {
		e.log.Warn("notice without recipient dropped", map[string]any{"kind": string(n.Kind)})
		e.metrics.Notification(string(n.Kind), false)
		return false
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)
	defer cancel()

	msg := notify.Notification{
		ID:          uuid.NewString(),
		Kind:        n.Kind,
		RecipientID: n.RecipientID,
		Subject:     n.Subject,
		Body:        n.Body,
		Metadata:    n.Metadata,
		CreatedAt:   e.now(),
	}
	if err := e.notifier.Notify(ctx, msg); err != nil {
		e.log.Error("notification failed", map[string]any{
			"kind":         string(n.Kind),
			"recipient_id": n.RecipientID,
			"error":        err,
		})
		e.metrics.Notification(string(n.Kind), false)
		return false
	}

	e.metrics.Notification(string(n.Kind), true)
	return true
}

// Transitioned cuenta un cambio de estado en el flujo de escalamiento.
func (e *Escalator) Transitioned(subject, to string) {
	if e == nil {
		return
	}
	e.metrics.EscalationTransition(subject, to)
}
