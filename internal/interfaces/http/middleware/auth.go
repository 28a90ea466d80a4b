// Package middleware holds gin middleware for the HTTP interface.
package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"bookworm/internal/infrastructure/auth"
	"bookworm/internal/infrastructure/cache"
	"bookworm/internal/shared/constants"
	apperrors "bookworm/internal/shared/errors"
	"bookworm/internal/shared/logger"
	"bookworm/internal/shared/utils"
)

// AuthMiddleware authenticates requests with a bearer JWT whose session
// is still live in Redis. Revoking the session invalidates the token
// before its JWT expiry.
type AuthMiddleware struct {
	jwt      *auth.JWTService
	sessions *cache.SessionStore
	logger   logger.Interface
}

func NewAuthMiddleware(jwt *auth.JWTService, sessions *cache.SessionStore, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt, sessions: sessions, logger: logger}
}

// RequireAuth rejects requests without a valid, live session token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(constants.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			utils.ErrorResponseWithError(c, apperrors.NewUnauthorizedError(constants.ErrMsgUnauthorized))
			c.Abort()
			return
		}

		claims, err := m.jwt.Validate(token)
		if err != nil {
			utils.ErrorResponseWithError(c, apperrors.NewUnauthorizedError(constants.ErrMsgUnauthorized))
			c.Abort()
			return
		}

		if _, err := m.sessions.Get(c.Request.Context(), claims.SessionID); err != nil {
			if !errors.Is(err, cache.ErrSessionNotFound) {
				m.logger.Errorw("session lookup failed", "error", err)
			}
			utils.ErrorResponseWithError(c, apperrors.NewUnauthorizedError(constants.ErrMsgUnauthorized))
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserRole, claims.Role)
		c.Set(constants.ContextKeySessionID, claims.SessionID)
		c.Next()
	}
}

// RequireAdmin rejects authenticated requests from non-administrators.
// Must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role != constants.RoleAdmin {
			utils.ErrorResponseWithError(c, apperrors.NewForbiddenError(constants.ErrMsgForbidden))
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID extracts the authenticated user ID from the request context.
func UserID(c *gin.Context) uint {
	if v, ok := c.Get(constants.ContextKeyUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// SessionID extracts the authenticated session ID from the request context.
func SessionID(c *gin.Context) string {
	return c.GetString(constants.ContextKeySessionID)
}

// IsAdmin reports whether the authenticated user is an administrator.
func IsAdmin(c *gin.Context) bool {
	return c.GetString(constants.ContextKeyUserRole) == constants.RoleAdmin
}
