package logsink

import (
	"context"

	"pet-adoption-welfare/internal/platform/logger"
	"pet-adoption-welfare/internal/ports/notify"
)

// Notifier deja cada notificación en el log. Es el default en dev.
type Notifier struct {
	log logger.Logger
}

func New(log logger.Logger) *Notifier {
	if log == nil {
		log = logger.NewNop()
	}
	return &Notifier{log: log.With(map[string]any{"component": "notify.log"})}
}

func (n *Notifier) Notify(_ context.Context, msg notify.Notification) error {
	n.log.Info("notification", map[string]any{
		"notification_id": msg.ID,
		"kind":            string(msg.Kind),
		"recipient_id":    msg.RecipientID,
		"subject":         msg.Subject,
	})
	return nil
}
