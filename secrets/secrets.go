package secrets

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Comparator is the pluggable hash-comparison capability used to check a
// presented client secret against its stored form. Implementations must not
// leak the secret content through timing.
type Comparator interface {
	Matches(raw, encoded string) bool
}

// BcryptComparator compares a raw secret against a bcrypt hash. This is the
// default comparator for confidential clients.
type BcryptComparator struct{}

func (BcryptComparator) Matches(raw, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(raw)) == nil
}

// PlaintextComparator compares secrets stored in plaintext. Insecure; exists
// only for legacy clients and for client_secret_jwt registrations, which need
// the secret in a recoverable form. Select it explicitly, never by fallback.
type PlaintextComparator struct{}

func (PlaintextComparator) Matches(raw, encoded string) bool {
	return subtle.ConstantTimeCompare([]byte(raw), []byte(encoded)) == 1
}

// HashSecret encodes a client secret for storage with the default bcrypt cost.
func HashSecret(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	return string(bytes), err
}

// Verifier checks presented credentials against stored ones through a
// Comparator.
type Verifier struct {
	comparator Comparator
}

// NewVerifier creates a Verifier backed by the given comparator.
func NewVerifier(comparator Comparator) *Verifier {
	return &Verifier{comparator: comparator}
}

// Verify reports whether presented matches the stored encoded secret. When
// either side is absent there is nothing to compare and verification fails
// without invoking the comparator.
func (v *Verifier) Verify(presented, stored string) bool {
	if presented == "" || stored == "" {
		return false
	}
	return v.comparator.Matches(presented, stored)
}
