package middleware

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vinque/vinque_backend/internal/core/domain"
)

// principalKey is the key used to store the authenticated caller.
const principalKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying the authenticated caller.
func WithPrincipal(ctx context.Context, p *domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromCtx returns the authenticated caller, if any.
func PrincipalFromCtx(ctx context.Context) (*domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(*domain.Principal)
	return p, ok && p != nil
}

// GetPrincipal retrieves the authenticated caller from the Gin context.
// It returns nil when the request is anonymous.
func GetPrincipal(c *gin.Context) *domain.Principal {
	if v, exists := c.Get(string(principalKey)); exists {
		if p, ok := v.(*domain.Principal); ok {
			return p
		}
	}
	p, _ := PrincipalFromCtx(c.Request.Context())
	return p
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	p := GetPrincipal(c)
	if p == nil {
		return "", false
	}
	return strconv.FormatInt(p.UserID, 10), true
}
