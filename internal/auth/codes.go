package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/notrecocon/cocon/internal/models"
	"github.com/notrecocon/cocon/internal/storage"
)

var (
	ErrCodesNotConfigured = errors.New("access codes have not been set up")
	ErrIncorrectCode      = errors.New("incorrect code")
	ErrInvalidCode        = errors.New("access codes must be 1 to 72 bytes")
	ErrSameCodes          = errors.New("editor and partner codes must differ")
)

// maxCodeBytes is the longest input bcrypt compares in full.
const maxCodeBytes = 72

// SettingsStorage defines the persistence the code authenticator needs.
type SettingsStorage interface {
	GetSettings(ctx context.Context) (*models.AppSettings, error)
	SaveSettings(ctx context.Context, settings *models.AppSettings) error
}

// CodeAuthenticator matches a shared access code against the bcrypt hashes of
// the editor and partner codes.
type CodeAuthenticator struct {
	storage SettingsStorage
	cost    int
}

// NewCodeAuthenticator creates an authenticator backed by the settings record.
func NewCodeAuthenticator(storage SettingsStorage) *CodeAuthenticator {
	return &CodeAuthenticator{storage: storage, cost: bcrypt.DefaultCost}
}

// ValidateCredential checks that a code can be hashed without truncation.
func (a *CodeAuthenticator) ValidateCredential(code string) error {
	if !validCode(code) {
		return ErrInvalidCode
	}
	return nil
}

func validCode(code string) bool {
	return code != "" && len(code) <= maxCodeBytes
}

// CodesConfigured reports whether both codes have been set.
func (a *CodeAuthenticator) CodesConfigured(ctx context.Context) (bool, error) {
	settings, err := a.settings(ctx)
	if err != nil {
		return false, err
	}
	return settings.CodesConfigured(), nil
}

// Authenticate returns the role whose code matches. Unknown codes and codes
// for the wrong role are indistinguishable to the caller.
func (a *CodeAuthenticator) Authenticate(ctx context.Context, code string) (models.Role, error) {
	settings, err := a.settings(ctx)
	if err != nil {
		return "", err
	}
	if !settings.CodesConfigured() {
		return "", ErrCodesNotConfigured
	}
	if a.ValidateCredential(code) != nil {
		return "", ErrIncorrectCode
	}

	if bcrypt.CompareHashAndPassword([]byte(settings.EditorCodeHash), []byte(code)) == nil {
		return models.RoleEditor, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(settings.PartnerCodeHash), []byte(code)) == nil {
		return models.RolePartner, nil
	}
	return "", ErrIncorrectCode
}

// ValidateCodes checks a pair of codes before they are stored.
func ValidateCodes(editorCode, partnerCode string) error {
	if !validCode(editorCode) || !validCode(partnerCode) {
		return ErrInvalidCode
	}
	if editorCode == partnerCode {
		return ErrSameCodes
	}
	return nil
}

// SetCodes hashes and stores new access codes for both roles.
func (a *CodeAuthenticator) SetCodes(ctx context.Context, editorCode, partnerCode string) error {
	if err := ValidateCodes(editorCode, partnerCode); err != nil {
		return err
	}

	editorHash, err := bcrypt.GenerateFromPassword([]byte(editorCode), a.cost)
	if err != nil {
		return fmt.Errorf("failed to hash editor code: %w", err)
	}
	partnerHash, err := bcrypt.GenerateFromPassword([]byte(partnerCode), a.cost)
	if err != nil {
		return fmt.Errorf("failed to hash partner code: %w", err)
	}

	settings := &models.AppSettings{
		EditorCodeHash:  string(editorHash),
		PartnerCodeHash: string(partnerHash),
		UpdatedAt:       time.Now().Unix(),
	}
	if err := a.storage.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to save access codes: %w", err)
	}
	return nil
}

// settings loads the settings record, treating a missing one as empty.
func (a *CodeAuthenticator) settings(ctx context.Context) (*models.AppSettings, error) {
	settings, err := a.storage.GetSettings(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return &models.AppSettings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}
