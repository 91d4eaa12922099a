package entity

import "time"

// AuditEventType names a successful authentication event.
type AuditEventType string

const (
	AuditSignUp AuditEventType = "SIGN UP"
	AuditLogIn  AuditEventType = "LOG IN"
)

// AuditEvent is handed to the audit sink after a successful signup or login.
type AuditEvent struct {
	Type  AuditEventType
	Email string
	At    time.Time
}
