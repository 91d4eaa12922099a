package adapters

import (
	"context"
	"log/slog"

	"regalis_backend/internal/feature/identity/domain/entity"
	"regalis_backend/internal/feature/identity/usecase"
)

// LogAuditSink writes each notification as a structured log line addressed to the admin.
type LogAuditSink struct {
	logger     *slog.Logger
	adminEmail string
}

var _ usecase.AuditSink = (*LogAuditSink)(nil)

// NewLogAuditSink creates a LogAuditSink. A nil logger uses slog.Default.
func NewLogAuditSink(logger *slog.Logger, adminEmail string) *LogAuditSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogAuditSink{logger: logger, adminEmail: adminEmail}
}

// Notify logs the event.
func (s *LogAuditSink) Notify(ctx context.Context, event entity.AuditEvent) error {
	s.logger.InfoContext(ctx, "admin notification",
		"to", s.adminEmail,
		"subject", subjectFor(event),
		"event", string(event.Type),
		"email", event.Email,
		"at", event.At,
	)
	return nil
}

func subjectFor(event entity.AuditEvent) string {
	return "New User Activity - " + string(event.Type)
}
