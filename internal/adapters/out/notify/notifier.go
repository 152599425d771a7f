// Package notify provides the notification collaborator. The current
// implementation writes structured log records; a chat or e-mail channel
// can replace it behind the same port.
package notify

import (
	"context"
	"log/slog"
)

// SlogNotifier emits notifications as structured log records.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier writing through the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger.With("component", "notifier")}
}

// Notify logs the message. Never fails the triggering operation.
func (n *SlogNotifier) Notify(ctx context.Context, message string) {
	n.logger.InfoContext(ctx, message)
}
