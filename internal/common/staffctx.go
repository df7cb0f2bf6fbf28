package common

import "context"

// StaffContext holds the identity of the staff member behind a request,
// resolved from the Authorization header by the server middleware. When
// absent (nil), the request is unauthenticated and the upstream core API
// is the authority on rejecting it.
type StaffContext struct {
	EmployeeID string
	Email      string
	Role       string
	Token      string
}

type contextKey int

const staffContextKey contextKey = iota

// WithStaffContext stores a StaffContext in the request context.
func WithStaffContext(ctx context.Context, sc *StaffContext) context.Context {
	return context.WithValue(ctx, staffContextKey, sc)
}

// StaffContextFromContext retrieves the StaffContext from context, or nil if absent.
func StaffContextFromContext(ctx context.Context) *StaffContext {
	sc, _ := ctx.Value(staffContextKey).(*StaffContext)
	return sc
}

// ResolveBearerToken returns the bearer token carried by the request's
// staff context, or empty string when the request is unauthenticated.
func ResolveBearerToken(ctx context.Context) string {
	if sc := StaffContextFromContext(ctx); sc != nil {
		return sc.Token
	}
	return ""
}
