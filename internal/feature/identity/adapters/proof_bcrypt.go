package adapters

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"regalis_backend/internal/feature/identity/usecase"
)

// BcryptProof stores a salted bcrypt hash of the password.
type BcryptProof struct {
	cost int
}

var _ usecase.ProofScheme = (*BcryptProof)(nil)

// NewBcryptProof returns a bcrypt scheme. Costs outside bcrypt's range fall back to bcrypt.DefaultCost.
func NewBcryptProof(cost int) *BcryptProof {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptProof{cost: cost}
}

// Compute hashes the password.
func (p *BcryptProof) Compute(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify checks password against the stored hash.
func (p *BcryptProof) Verify(proof, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(proof), []byte(password)) == nil
}
