package di

import (
	"log/slog"

	identityadapters "regalis_backend/internal/feature/identity/adapters"
	"regalis_backend/internal/feature/identity/usecase"
)

// NewProofScheme returns the configured password proof scheme.
func NewProofScheme(cfg Config) (usecase.ProofScheme, error) {
	scheme, err := identityadapters.NewProofScheme(cfg.ProofScheme, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	if cfg.ProofScheme == identityadapters.ProofSchemeBase64 {
		slog.Warn("PROOF_SCHEME=base64 stores reversible password proofs; use only for local development")
	}
	return scheme, nil
}

// NewAuditSink always logs admin notifications and also e-mails them when
// RESEND_API_KEY is set.
func NewAuditSink(cfg Config, logger *slog.Logger) usecase.AuditSink {
	logSink := identityadapters.NewLogAuditSink(logger, cfg.AdminEmail)
	if cfg.ResendAPIKey == "" {
		return logSink
	}
	resendSink, err := identityadapters.NewResendAuditSink(cfg.ResendAPIKey, cfg.AuditEmailFrom, cfg.AdminEmail)
	if err != nil {
		slog.Warn("resend audit sink disabled", "error", err)
		return logSink
	}
	return identityadapters.MultiAuditSink{logSink, resendSink}
}
