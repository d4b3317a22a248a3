package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/notrecocon/cocon/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

// tokenIssuer is the "iss" of every session token.
const tokenIssuer = "cocon"

// roleClaims is the token body. There are no accounts, so the role is the
// whole identity and doubles as the subject.
type roleClaims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager issues and checks HS256 session tokens that carry a role.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	parser *jwt.Parser
	now    func() time.Time
}

// NewJWTManager creates a manager signing with secret. Tokens expire after ttl.
func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	m := &JWTManager{secret: []byte(secret), ttl: ttl, now: time.Now}
	m.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return m.now() }),
	)
	return m
}

// Generate issues a token for role.
func (m *JWTManager) Generate(role models.Role) (string, error) {
	if !role.Valid() {
		return "", fmt.Errorf("cannot issue a token for role %q", role)
	}
	issued := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, roleClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   role.String(),
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(m.ttl)),
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate returns the role carried by a token that is well signed, unexpired
// and names a known role.
func (m *JWTManager) Validate(token string) (models.Role, error) {
	var claims roleClaims
	if _, err := m.parser.ParseWithClaims(token, &claims, m.key); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !claims.Role.Valid() || claims.Subject != claims.Role.String() {
		return "", ErrInvalidToken
	}
	return claims.Role, nil
}

func (m *JWTManager) key(*jwt.Token) (any, error) {
	return m.secret, nil
}
