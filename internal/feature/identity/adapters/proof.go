package adapters

import (
	"fmt"

	"regalis_backend/internal/feature/identity/usecase"
)

// Proof scheme names accepted by NewProofScheme.
const (
	ProofSchemeBcrypt = "bcrypt"
	ProofSchemeBase64 = "base64"
)

// NewProofScheme returns the scheme registered under name.
func NewProofScheme(name string, bcryptCost int) (usecase.ProofScheme, error) {
	switch name {
	case ProofSchemeBcrypt, "":
		return NewBcryptProof(bcryptCost), nil
	case ProofSchemeBase64:
		return Base64Proof{}, nil
	default:
		return nil, fmt.Errorf("unknown proof scheme %q", name)
	}
}
