package session

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/verdantfin/fintrack/internal/common"
)

// Verifier checks a credential pair. It exists so the credential source is
// pluggable; nothing else in the tool knows where passwords live.
type Verifier interface {
	Verify(ctx context.Context, email, password string) error
}

// StaticVerifier checks credentials against a fixed email-to-password map,
// typically loaded from the auth.users config section.
type StaticVerifier struct {
	users map[string]string
}

// NewStaticVerifier creates a verifier over a fixed credential map.
func NewStaticVerifier(users map[string]string) *StaticVerifier {
	return &StaticVerifier{users: users}
}

// Verify checks the pair in constant time per password comparison.
func (v *StaticVerifier) Verify(_ context.Context, email, password string) error {
	want, ok := v.users[email]
	if !ok {
		return fmt.Errorf("%w: unknown user %s", common.ErrInvalidCredentials, email)
	}
	if subtle.ConstantTimeCompare([]byte(want), []byte(password)) != 1 {
		return common.ErrInvalidCredentials
	}
	return nil
}

// OpenVerifier accepts any email without a password check. It is the default
// when no auth.users section is configured; the tracker is a local
// single-user tool and the email only selects a data namespace.
type OpenVerifier struct{}

// Verify accepts every credential pair.
func (OpenVerifier) Verify(_ context.Context, _, _ string) error {
	return nil
}
