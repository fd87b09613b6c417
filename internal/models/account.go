package models

// Theme values accepted for Preferences.Theme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// Account represents a registered user. Accounts are created lazily on the
// first OTP request for an unseen email and are never hard-deleted.
type Account struct {
	// ID is the unique identifier for the account (UUID format).
	ID string `json:"id"`

	// Email is the account's normalized (lowercased, trimmed) email address.
	Email string `json:"email"`

	// Verified is true once the account has completed an OTP verification.
	Verified bool `json:"isVerified"`

	// PendingOTP is the currently outstanding passcode, if any.
	// At most one per account; issuing a new one replaces it.
	// Never serialized to clients.
	PendingOTP *PendingOTP `json:"-"`

	Profile     Profile     `json:"profile"`
	Preferences Preferences `json:"preferences"`

	// LastLoginAt is the Unix timestamp of the last successful verification.
	// Zero means the account has never logged in.
	LastLoginAt int64 `json:"lastLogin,omitempty"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"createdAt"`

	// UpdatedAt is the Unix timestamp of the last mutation.
	UpdatedAt int64 `json:"-"`
}

// PendingOTP is an outstanding one-time passcode. The code itself is stored
// as a bcrypt hash; the plaintext only exists at issuance time.
type PendingOTP struct {
	CodeHash  string
	ExpiresAt int64 // Unix seconds
}

// Profile holds user-editable display fields.
type Profile struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Preferences holds user settings applied by clients.
type Preferences struct {
	// Theme is one of light, dark, auto.
	Theme string `json:"theme"`

	// Currency is a 3-letter currency code (e.g. "INR", "USD").
	Currency string `json:"currency"`
}

// ValidTheme reports whether t is an accepted theme value.
func ValidTheme(t string) bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeAuto
}
