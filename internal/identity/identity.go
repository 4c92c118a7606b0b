// Package identity turns an authenticated user into the single-role
// Principal consulted by authorization decisions.
package identity

import (
	"context"

	"quizbank-service/internal/domain"
)

const authorityPrefix = "ROLE_"

// Authorities lists the granted authority strings for u.
func Authorities(u domain.User) []string {
	return []string{authorityPrefix + string(u.Role)}
}

// Resolve extracts exactly one role: the first authority, or RoleUser when
// there is none. Later authorities are ignored.
func Resolve(username string, authorities []string) domain.Principal {
	role := domain.RoleUser
	if len(authorities) > 0 {
		role = domain.ParseRole(authorities[0])
	}
	return domain.Principal{Username: username, Role: role}
}

// FromUser resolves the principal for a registered user.
func FromUser(u domain.User) domain.Principal {
	return Resolve(u.Username, Authorities(u))
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the principal stored in ctx, if any.
func PrincipalFrom(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}
