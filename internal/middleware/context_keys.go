package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// principalKey is the key used to store the authenticated caller.
const principalKey = contextKey("principal")

// Principal is the authenticated caller as described by its access token.
type Principal struct {
	UserID     string
	IsAdmin    bool
	CustomerID *int64
}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// GetPrincipalFromContext retrieves the authenticated caller from the Gin context,
// falling back to the request context.
func GetPrincipalFromContext(c *gin.Context) (Principal, bool) {
	if val, exists := c.Get(string(principalKey)); exists {
		p, ok := val.(Principal)
		return p, ok
	}
	p, ok := c.Request.Context().Value(principalKey).(Principal)
	return p, ok
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	p, ok := GetPrincipalFromContext(c)
	if !ok || p.UserID == "" {
		return "", false
	}
	return p.UserID, true
}
