package domain

import (
	"errors"
	"time"
)

// ErrBadCredentials is returned when a presented PIN or token does not
// verify.
var ErrBadCredentials = errors.New("bad credentials")

// PinVerifier checks the front-desk admin PIN. Implementations must not keep
// the PIN in clear text.
type PinVerifier interface {
	// Verify returns nil when the PIN matches, ErrBadCredentials otherwise.
	Verify(pin string) error
}

// TokenIssuer issues session tokens (e.g. JWT) for the admin surface.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a session token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}
