package notify

import (
	"context"
	"time"
)

type Kind string

const (
	KindWelfareRisk     Kind = "welfare_risk"
	KindAlertResponse   Kind = "alert_response"
	KindDistressReport  Kind = "distress_report"
	KindAdoptionUpdated Kind = "adoption_updated"
)

// Notification es el mensaje que sale hacia el colaborador de notificaciones
// (email/SMS quedan del otro lado).
type Notification struct {
	ID          string            `json:"id"`
	Kind        Kind              `json:"kind"`
	RecipientID string            `json:"recipient_id"`
	Subject     string            `json:"subject"`
	Body        string            `json:"body"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Notifier entrega una notificación. Los callers la tratan como fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
