// Package auth implements passcode-based login: one-time codes delivered over
// email prove control of an address, successful verification yields a signed
// session token.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kharcha-app/kharcha/internal/email"
	"github.com/kharcha-app/kharcha/internal/models"
	"github.com/kharcha-app/kharcha/internal/storage"
)

var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidOTP      = errors.New("invalid or expired code")
	ErrNotVerified     = errors.New("account not verified")
)

// DefaultOTPTTL is how long an issued passcode stays valid.
const DefaultOTPTTL = 10 * time.Minute

// AccountStorage defines the persistence operations the authenticator needs.
// This keeps it independent of the storage implementation.
type AccountStorage interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	GetAccountByID(ctx context.Context, id string) (*models.Account, error)
	UpdateAccount(ctx context.Context, account *models.Account) error
}

// Authenticator owns the OTP lifecycle: issuance, expiry, single-use
// verification and session token issuance. The email sender is an injected
// capability; its failures never fail an issuance.
type Authenticator struct {
	storage AccountStorage
	sender  email.Sender
	tokens  *TokenManager
	otpTTL  time.Duration
}

// OTPIssue describes one issued passcode. Code is the plaintext passcode,
// which only exists here: storage keeps a bcrypt hash.
type OTPIssue struct {
	Email     string
	Code      string
	ExpiresAt int64
	// EmailSent is false when delivery failed; the code is still usable.
	EmailSent bool
}

// NewAuthenticator creates an authenticator. otpTTL <= 0 falls back to
// DefaultOTPTTL.
func NewAuthenticator(storage AccountStorage, sender email.Sender, tokens *TokenManager, otpTTL time.Duration) *Authenticator {
	if otpTTL == 0 {
		otpTTL = DefaultOTPTTL
	}
	return &Authenticator{
		storage: storage,
		sender:  sender,
		tokens:  tokens,
		otpTTL:  otpTTL,
	}
}

// NormalizeEmail lowercases and trims an email address. All lookups and
// storage use the normalized form.
func NormalizeEmail(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// RequestOTP issues a fresh passcode for the address, creating the account on
// first contact. Any previously pending passcode is replaced. The account is
// persisted before delivery is attempted, so a failed email never loses the
// issued code.
func (a *Authenticator) RequestOTP(ctx context.Context, address string) (*OTPIssue, error) {
	address = NormalizeEmail(address)
	if _, err := mail.ParseAddress(address); err != nil {
		return nil, ErrInvalidEmail
	}

	account, err := a.storage.GetAccountByEmail(ctx, address)
	if errors.Is(err, storage.ErrNotFound) {
		account = &models.Account{Email: address}
		if err := a.storage.CreateAccount(ctx, account); err != nil {
			return nil, fmt.Errorf("failed to create account: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	code := generateCode()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash code: %w", err)
	}

	expiresAt := time.Now().Add(a.otpTTL).Unix()
	account.PendingOTP = &models.PendingOTP{
		CodeHash:  string(hash),
		ExpiresAt: expiresAt,
	}
	if err := a.storage.UpdateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to store pending code: %w", err)
	}

	issue := &OTPIssue{
		Email:     address,
		Code:      code,
		ExpiresAt: expiresAt,
		EmailSent: true,
	}
	if err := a.sender.Send(ctx, address, code); err != nil {
		// Delivery failure is reported but the code remains usable.
		slog.Warn("otp email delivery failed", "email", address, "error", err)
		issue.EmailSent = false
	}
	return issue, nil
}

// VerifyOTP checks a submitted code against the account's pending passcode.
// On success the account is marked verified, the pending code is cleared
// (codes are single-use) and a session token is returned.
func (a *Authenticator) VerifyOTP(ctx context.Context, address, code string) (*models.Account, string, error) {
	address = NormalizeEmail(address)

	account, err := a.storage.GetAccountByEmail(ctx, address)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, "", ErrAccountNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up account: %w", err)
	}

	pending := account.PendingOTP
	if pending == nil || pending.ExpiresAt < time.Now().Unix() {
		return nil, "", ErrInvalidOTP
	}
	if bcrypt.CompareHashAndPassword([]byte(pending.CodeHash), []byte(code)) != nil {
		return nil, "", ErrInvalidOTP
	}

	account.Verified = true
	account.LastLoginAt = time.Now().Unix()
	account.PendingOTP = nil
	if err := a.storage.UpdateAccount(ctx, account); err != nil {
		return nil, "", fmt.Errorf("failed to update account: %w", err)
	}

	token, err := a.tokens.Generate(account)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

// ValidateSession resolves a session token to its account. It fails with
// ErrMissingToken, ErrInvalidToken, ErrTokenExpired, ErrAccountNotFound or
// ErrNotVerified; the HTTP layer surfaces all of these as one
// unauthenticated class.
func (a *Authenticator) ValidateSession(ctx context.Context, token string) (*models.Account, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	claims, err := a.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	account, err := a.storage.GetAccountByID(ctx, claims.AccountID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	// Should not occur for a token we issued, but check anyway.
	if !account.Verified {
		return nil, ErrNotVerified
	}
	return account, nil
}

// generateCode returns a uniformly distributed 6-digit code. Codes are
// short-lived login challenges, not long-term secrets; uniform distribution
// matters here, cryptographic strength does not.
func generateCode() string {
	return fmt.Sprintf("%06d", 100000+rand.IntN(900000))
}
