// Package adapters provides proof schemes and audit sinks for the identity store.
package adapters

import (
	"crypto/subtle"
	"encoding/base64"

	"regalis_backend/internal/feature/identity/usecase"
)

// Base64Proof stores the password as standard base64.
// It is reversible and offers no protection. Only the proof algorithm of the
// demo frontend is reproduced; its stored records use a different layout and
// cannot be read by this store.
type Base64Proof struct{}

var _ usecase.ProofScheme = Base64Proof{}

// Compute encodes the password.
func (Base64Proof) Compute(password string) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte(password)), nil
}

// Verify compares the stored proof with the encoding of password.
func (p Base64Proof) Verify(proof, password string) bool {
	want, _ := p.Compute(password)
	return subtle.ConstantTimeCompare([]byte(proof), []byte(want)) == 1
}
