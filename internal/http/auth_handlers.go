package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kharcha-app/kharcha/internal/models"
)

type sendOTPRequest struct {
	Email string `json:"email"`
}

func (s *Server) handleSendOTP(c *gin.Context) {
	var req sendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	issue, err := s.authenticator.RequestOTP(c.Request.Context(), req.Email)
	if err != nil {
		s.respondError(c, err)
		return
	}

	resp := gin.H{
		"message":          "verification code sent",
		"email":            issue.Email,
		"expiresInMinutes": int(s.cfg.OTPTTL.Minutes()),
	}
	if !issue.EmailSent {
		resp["message"] = "verification code issued, email delivery failed"
	}
	// Raw code in the response is a development convenience only.
	if s.cfg.OTPEcho {
		resp["otp"] = issue.Code
	}
	c.JSON(http.StatusOK, resp)
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (s *Server) handleVerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	account, token, err := s.authenticator.VerifyOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  account,
	})
}

func (s *Server) handleMe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": currentAccount(c)})
}

type updateProfileRequest struct {
	Name     *string `json:"name"`
	Theme    *string `json:"theme"`
	Currency *string `json:"currency"`
}

func (s *Server) handleUpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	account := currentAccount(c)
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if len(name) < 2 || len(name) > 50 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "name must be between 2 and 50 characters",
				"field": "name",
			})
			return
		}
		account.Profile.Name = name
	}
	if req.Theme != nil {
		if !models.ValidTheme(*req.Theme) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "theme must be one of light, dark, auto",
				"field": "theme",
			})
			return
		}
		account.Preferences.Theme = *req.Theme
	}
	if req.Currency != nil {
		currency := strings.ToUpper(strings.TrimSpace(*req.Currency))
		if len(currency) != 3 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "currency must be a 3-letter code",
				"field": "currency",
			})
			return
		}
		account.Preferences.Currency = currency
	}

	if err := s.store.UpdateAccount(c.Request.Context(), account); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": account})
}

// handleLogout acknowledges logout. Session tokens are stateless, so the
// client discards its copy; nothing is revoked server-side.
func (s *Server) handleLogout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
