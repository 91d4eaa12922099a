package usecase

import (
	"context"

	"regalis_backend/internal/feature/identity/domain/entity"
)

// emit queues an audit event. It runs on the store goroutine and never blocks.
func (s *Store) emit(typ entity.AuditEventType, email string) {
	event := entity.AuditEvent{Type: typ, Email: email, At: s.now().UTC()}
	select {
	case s.events <- event:
	default:
		s.logger.Warn("audit queue full, dropping event", "event", string(typ), "email", email)
	}
}

func (s *Store) deliverAudit() {
	defer close(s.auditDone)
	for event := range s.events {
		s.notify(event)
	}
}

// notify hands one event to the sink. Sink failures, panics included, are only logged.
func (s *Store) notify(event entity.AuditEvent) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("audit sink panicked", "event", string(event.Type), "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), s.auditTimeout)
	defer cancel()

	if err := s.audit.Notify(ctx, event); err != nil {
		s.logger.Warn("audit notification failed", "event", string(event.Type), "email", event.Email, "error", err)
	}
}
