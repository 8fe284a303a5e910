package logsink

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"pet-adoption-welfare/internal/platform/logger"
	"pet-adoption-welfare/internal/ports/notify"
)

func TestNotifier_Logs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := New(logger.Wrap(zap.New(core)))

	err := n.Notify(context.Background(), notify.Notification{ID: "n-1", Kind: notify.KindAlertResponse, RecipientID: "adopter-1"})
	if err != nil {
		t.Fatalf("Notify error: %v", err)
	}

	entries := logs.FilterMessage("notification").All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["recipient_id"]; got != "adopter-1" {
		t.Fatalf("unexpected recipient_id %v", got)
	}
}
