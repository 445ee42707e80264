package middleware

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
)

// AuthMiddleware creates a Gin middleware handler that validates bearer tokens
// and stores the caller. Requests without a valid token are rejected.
func AuthMiddleware(tokens portssvc.TokenSvcFacade) gin.HandlerFunc {
	return authenticate(tokens, true)
}

// OptionalAuth resolves the caller when a bearer token is present and lets
// anonymous requests through.
func OptionalAuth(tokens portssvc.TokenSvcFacade) gin.HandlerFunc {
	return authenticate(tokens, false)
}

func authenticate(tokens portssvc.TokenSvcFacade, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if required {
				logger.Warn("Authorization header missing")
				abortWith(c, apperrors.NewUnauthorizedError("Authorization header required"))
				return
			}
			c.Next()
			return
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
			logger.Warn("Authorization header format invalid")
			abortWith(c, apperrors.NewUnauthorizedError("Authorization header format must be Bearer {token}"))
			return
		}

		principal, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			abortWith(c, err)
			return
		}

		enrichedLogger := logger.With(
			slog.String("user_id", strconv.FormatInt(principal.UserID, 10)),
			slog.String("role", string(principal.Role)),
		)
		ctx := WithPrincipal(c.Request.Context(), principal)
		ctx = WithLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(principalKey), principal)

		c.Next()
	}
}

// RequireRole rejects callers whose role is not listed. It must run after
// AuthMiddleware.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c)
		if p == nil {
			abortWith(c, apperrors.NewUnauthorizedError("Authentication required"))
			return
		}
		for _, r := range roles {
			if p.Role == r {
				c.Next()
				return
			}
		}
		GetLoggerFromCtx(c.Request.Context()).Warn("Role not allowed", slog.String("role", string(p.Role)))
		abortWith(c, apperrors.NewForbiddenError("You do not have permission to perform this action"))
	}
}

func abortWith(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
