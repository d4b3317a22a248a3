package middleware

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/notrecocon/cocon/internal/auth"
	"github.com/notrecocon/cocon/internal/models"
	"github.com/notrecocon/cocon/internal/wire"
)

type contextKey string

// RoleKey is the context key for the authenticated role.
const RoleKey contextKey = "role"

// WithRole returns a copy of ctx carrying role.
func WithRole(ctx context.Context, role models.Role) context.Context {
	return context.WithValue(ctx, RoleKey, role)
}

// GetRole extracts the role from the context.
// Returns the empty role if the request is unauthenticated.
func GetRole(ctx context.Context) models.Role {
	role, _ := ctx.Value(RoleKey).(models.Role)
	return role
}

// BearerToken returns the token from an "Authorization: Bearer <token>" header.
func BearerToken(h http.Header) (string, error) {
	authHeader := h.Get("Authorization")
	if authHeader == "" {
		return "", auth.ErrMissingToken
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", auth.ErrInvalidToken
	}
	return parts[1], nil
}

// RequireAuth returns an interceptor that validates the bearer token and puts
// the role from its claims into the request context. Procedures listed in
// public pass through without a token.
func RequireAuth(jwtManager *auth.JWTManager, public ...string) connect.UnaryInterceptorFunc {
	open := make(map[string]bool, len(public))
	for _, p := range public {
		open[p] = true
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if open[req.Spec().Procedure] {
				return next(ctx, req)
			}

			token, err := BearerToken(req.Header())
			if err != nil {
				return nil, unauthenticated(err)
			}
			role, err := jwtManager.Validate(token)
			if err != nil {
				return nil, unauthenticated(err)
			}

			return next(WithRole(ctx, role), req)
		}
	}
}

func unauthenticated(err error) *connect.Error {
	if cerr, ok := wire.ToConnectError(err); ok {
		return cerr
	}
	return connect.NewError(connect.CodeUnauthenticated, err)
}
