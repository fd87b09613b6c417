package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kharcha-app/kharcha/internal/auth"
	"github.com/kharcha-app/kharcha/internal/models"
)

// accountKey is the gin context key holding the authenticated account.
const accountKey = "account"

// requestLogger logs each request with its duration and status.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.Info("Request completed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.ClientIP(),
		)
	}
}

// corsMiddleware adds CORS headers for browser access. With no configured
// origins every origin is allowed, which suits development.
func corsMiddleware(allowOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowOrigins))
	for _, origin := range allowOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case len(allowed) == 0:
			c.Header("Access-Control-Allow-Origin", "*")
		case allowed[origin]:
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// requireAuth resolves the bearer token to an account and stores it in the
// context. All failures are one 401 class; the machine code tells clients
// whether re-login is needed without leaking which accounts exist.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		account, err := s.authenticator.ValidateSession(c.Request.Context(), bearerToken(c))
		if err != nil {
			code := "INVALID_TOKEN"
			switch {
			case errors.Is(err, auth.ErrMissingToken):
				code = "NO_TOKEN"
			case errors.Is(err, auth.ErrTokenExpired):
				code = "TOKEN_EXPIRED"
			case errors.Is(err, auth.ErrNotVerified):
				code = "ACCOUNT_NOT_VERIFIED"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
				"code":  code,
			})
			return
		}
		c.Set(accountKey, account)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return token
	}
	return ""
}

// currentAccount returns the account placed by requireAuth.
func currentAccount(c *gin.Context) *models.Account {
	return c.MustGet(accountKey).(*models.Account)
}
