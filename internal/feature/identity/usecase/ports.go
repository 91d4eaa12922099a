package usecase

import (
	"context"

	"regalis_backend/internal/feature/identity/domain/entity"
)

// Keys of the three collections in the key/value store.
const (
	KeyUsers       = "users"
	KeyProjects    = "projects"
	KeyCurrentUser = "currentUser"
)

// KVStore abstracts the key/value persistence the store writes its collections to.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/kv).
type KVStore interface {
	// Get returns the value stored under key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// ProofScheme turns a password into the stored proof and checks a password against it.
type ProofScheme interface {
	// Compute returns the proof stored for password.
	Compute(password string) (string, error)

	// Verify reports whether password matches proof.
	Verify(proof, password string) bool
}

// AuditSink receives notifications about successful signups and logins.
// Errors are logged by the store and never returned to the caller of the operation.
type AuditSink interface {
	Notify(ctx context.Context, event entity.AuditEvent) error
}

type nopAuditSink struct{}

func (nopAuditSink) Notify(context.Context, entity.AuditEvent) error { return nil }
