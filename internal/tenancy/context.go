package tenancy

import "context"

type ctxKey string

const sessionKey ctxKey = "dentalcloud.session"

// Session carries the resolved tenant and the caller's role as one value,
// so consumers can never observe a tenant from one request paired with a
// role from another.
type Session struct {
	Tenant Tenant
	Role   Role
}

// WithSession stores the tenant session in context.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext extracts the tenant session if present.
func SessionFromContext(ctx context.Context) (Session, bool) {
	val := ctx.Value(sessionKey)
	if val == nil {
		return Session{}, false
	}
	s, ok := val.(Session)
	return s, ok && s.Tenant.ID != ""
}
