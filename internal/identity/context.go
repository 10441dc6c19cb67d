package identity

import "context"

type ctxKey struct{}

// WithActor stashes the resolved acting identity in a request context.
func WithActor(ctx context.Context, ident *Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, ident)
}

// ActorFrom returns the acting identity resolved by the auth middleware,
// or nil for anonymous requests. Core operations take the actor as an
// explicit argument; this is only the transport-edge accessor.
func ActorFrom(ctx context.Context) *Identity {
	ident, _ := ctx.Value(ctxKey{}).(*Identity)
	return ident
}
