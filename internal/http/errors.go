package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kharcha-app/kharcha/internal/auth"
	"github.com/kharcha-app/kharcha/internal/service"
	"github.com/kharcha-app/kharcha/internal/storage"
)

// respondError maps domain errors to HTTP status codes in one place so every
// handler fails the same way. Internal details only leave the server in
// development.
func (s *Server) respondError(c *gin.Context, err error) {
	if ve := service.AsValidation(err); ve != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": ve.Reason,
			"field": ve.Field,
		})
		return
	}

	switch {
	case errors.Is(err, auth.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email address"})
	case errors.Is(err, auth.ErrAccountNotFound):
		// Distinct from a wrong code: no account was ever created for this
		// address, so the client should restart with send-otp.
		c.JSON(http.StatusNotFound, gin.H{
			"error": "account not found",
			"code":  "ACCOUNT_NOT_FOUND",
		})
	case errors.Is(err, auth.ErrInvalidOTP):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired code",
			"code":  "INVALID_OTP",
		})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		detail := "internal server error"
		if !s.cfg.IsProduction() {
			detail = err.Error()
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": detail})
	}
}

// badRequest reports a malformed request body or path parameter.
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
