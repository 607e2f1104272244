package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"guildesk/internal/infrastructure/auth"
	"guildesk/internal/shared/authorization"
	"guildesk/internal/shared/constants"
	"guildesk/internal/shared/logger"
	"guildesk/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// SSE clients (EventSource) cannot set headers, so the stream
			// endpoint accepts the token as a query parameter.
			if token := c.Query("access_token"); token != "" {
				m.authenticate(c, token)
				return
			}
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		m.authenticate(c, parts[1])
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context, token string) {
	claims, err := m.jwtService.VerifyAccessToken(token)
	if err != nil {
		m.logger.Warnw("failed to verify token", "error", err)
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
		c.Abort()
		return
	}

	c.Set(constants.ContextKeyUserID, claims.UserID)
	c.Set(constants.ContextKeyUserRole, claims.Role)

	c.Next()
}

// RequireStaff aborts with 403 unless the authenticated user is a Reviewer or
// Admin. Must run after RequireAuth.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := authorization.ParseRole(c.GetString(constants.ContextKeyUserRole))
		if !role.IsStaff() {
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the authenticated user is an Admin.
// Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := authorization.ParseRole(c.GetString(constants.ContextKeyUserRole))
		if !role.IsAdmin() {
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
