package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/notrecocon/cocon/internal/models"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	for _, role := range models.Roles {
		t.Run(string(role), func(t *testing.T) {
			token, err := m.Generate(role)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			got, err := m.Validate(token)
			if err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			if got != role {
				t.Errorf("Validate() = %q, want %q", got, role)
			}
		})
	}
}

func TestJWTRejects(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	token, err := m.Generate(models.RoleEditor)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate() error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute)
		old, err := expired.Generate(models.RolePartner)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := m.Validate(old); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate() error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := m.Validate("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate() error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expires after ttl", func(t *testing.T) {
		clock := NewJWTManager("test-secret", time.Hour)
		start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		clock.now = func() time.Time { return start }
		tok, err := clock.Generate(models.RolePartner)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		clock.now = func() time.Time { return start.Add(59 * time.Minute) }
		if _, err := clock.Validate(tok); err != nil {
			t.Errorf("Validate() before expiry error = %v", err)
		}
		clock.now = func() time.Time { return start.Add(61 * time.Minute) }
		if _, err := clock.Validate(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate() after expiry error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("unsigned token", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, roleClaims{Role: models.RoleEditor})
		tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("SignedString failed: %v", err)
		}
		if _, err := m.Validate(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate() error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		if _, err := m.Generate("guest"); err == nil {
			t.Error("Generate(guest) succeeded")
		}
	})
}
