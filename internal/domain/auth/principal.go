package auth

import (
	"context"
	"errors"
)

// AnonymousPrincipal is the name carried by an unauthenticated caller.
const AnonymousPrincipal = "anonymousUser"

var ErrAccessDenied = errors.New("Authentication required. Please provide a valid JWT token.")

// Principal is the caller identity established by the transport layer for one request.
type Principal struct {
	Name          string
	UserID        int64
	Role          string
	Authenticated bool
}

func Anonymous() Principal {
	return Principal{Name: AnonymousPrincipal}
}

func (p Principal) IsAnonymous() bool {
	return p.Name == AnonymousPrincipal
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// RequireAuthentication fails unless ctx carries an authenticated, non-anonymous principal.
func RequireAuthentication(ctx context.Context) error {
	p, ok := PrincipalFrom(ctx)
	if !ok || !p.Authenticated || p.Name == "" || p.IsAnonymous() {
		return ErrAccessDenied
	}
	return nil
}
