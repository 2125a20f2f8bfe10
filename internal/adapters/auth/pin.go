package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"visitordesk/internal/domain"
)

type bcryptPin struct {
	hash []byte
}

// NewPinVerifier hashes the configured front-desk PIN with bcrypt at startup
// so the clear text is not kept around for the process lifetime.
func NewPinVerifier(pin string) (domain.PinVerifier, error) {
	if pin == "" {
		return nil, fmt.Errorf("admin pin must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash pin: %w", err)
	}
	return &bcryptPin{hash: hash}, nil
}

func (p *bcryptPin) Verify(pin string) error {
	if err := bcrypt.CompareHashAndPassword(p.hash, []byte(pin)); err != nil {
		return domain.ErrBadCredentials
	}
	return nil
}
