package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dermaconnect/derma-api/internal/model"
	"github.com/dermaconnect/derma-api/pkg/auth"
)

// ContextSession is the gin context key for the authenticated session.
const ContextSession = "session"

type AuthMiddleware struct {
	jwtService auth.JWTService
}

func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// Authenticate verifies the bearer token and stores the session in
// the request context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "invalid authorization format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		c.Set(ContextSession, model.Session{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		})
		c.Next()
	}
}

// RequireRole restricts a route to the given roles. Authenticate must
// run first.
func (m *AuthMiddleware) RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFrom(c)
		if !ok {
			abortUnauthorized(c, "authentication required")
			return
		}

		for _, role := range roles {
			if sess.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "insufficient role",
			TraceID: c.GetString(ContextRequestID),
		})
	}
}

// SessionFrom extracts the authenticated session from the gin context.
func SessionFrom(c *gin.Context) (model.Session, bool) {
	v, exists := c.Get(ContextSession)
	if !exists {
		return model.Session{}, false
	}
	sess, ok := v.(model.Session)
	return sess, ok
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
		Code:    "UNAUTHORIZED",
		Message: message,
		TraceID: c.GetString(ContextRequestID),
	})
}
