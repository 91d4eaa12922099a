package adapters

import (
	"context"
	"errors"

	"regalis_backend/internal/feature/identity/domain/entity"
	"regalis_backend/internal/feature/identity/usecase"
)

// MultiAuditSink forwards every event to all of its sinks.
type MultiAuditSink []usecase.AuditSink

var _ usecase.AuditSink = MultiAuditSink(nil)

// Notify calls each sink and joins their errors.
func (m MultiAuditSink) Notify(ctx context.Context, event entity.AuditEvent) error {
	var errs []error
	for _, sink := range m {
		if err := sink.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
