package auth

import (
	"context"

	"github.com/notrecocon/cocon/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction keeps the journal service independent of how a role is
// proven (shared access codes today).
type Authenticator interface {
	// Authenticate checks a credential and returns the role it unlocks.
	// Returns ErrCodesNotConfigured if nothing can be matched yet, and
	// ErrIncorrectCode for any mismatch.
	Authenticate(ctx context.Context, credential string) (models.Role, error)

	// CodesConfigured reports whether Authenticate can succeed at all.
	CodesConfigured(ctx context.Context) (bool, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
