package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kharcha-app/kharcha/internal/models"
	"github.com/kharcha-app/kharcha/internal/storage"
)

const accountColumns = `id, email, verified, otp_code_hash, otp_expires_at,
	display_name, avatar, theme, currency, last_login_at, created_at, updated_at`

// CreateAccount inserts a new account into the database.
func (s *SQLiteStore) CreateAccount(ctx context.Context, account *models.Account) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if account.CreatedAt == 0 {
		account.CreatedAt = now
	}
	account.UpdatedAt = now
	if account.Preferences.Theme == "" {
		account.Preferences.Theme = models.ThemeAuto
	}
	if account.Preferences.Currency == "" {
		account.Preferences.Currency = "INR"
	}

	otpHash, otpExpiry := pendingOTPColumns(account.PendingOTP)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		account.ID,
		account.Email,
		account.Verified,
		otpHash,
		otpExpiry,
		account.Profile.Name,
		account.Profile.Avatar,
		account.Preferences.Theme,
		account.Preferences.Currency,
		account.LastLoginAt,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetAccountByEmail retrieves an account by its normalized email address.
func (s *SQLiteStore) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email)
	return scanAccount(row)
}

// GetAccountByID retrieves an account by its ID.
func (s *SQLiteStore) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	return scanAccount(row)
}

// UpdateAccount overwrites all mutable fields of an existing account.
func (s *SQLiteStore) UpdateAccount(ctx context.Context, account *models.Account) error {
	account.UpdatedAt = time.Now().Unix()
	otpHash, otpExpiry := pendingOTPColumns(account.PendingOTP)

	res, err := s.db.ExecContext(ctx, `
		UPDATE accounts
		SET verified = ?, otp_code_hash = ?, otp_expires_at = ?,
			display_name = ?, avatar = ?, theme = ?, currency = ?,
			last_login_at = ?, updated_at = ?
		WHERE id = ?`,
		account.Verified,
		otpHash,
		otpExpiry,
		account.Profile.Name,
		account.Profile.Avatar,
		account.Preferences.Theme,
		account.Preferences.Currency,
		account.LastLoginAt,
		account.UpdatedAt,
		account.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func pendingOTPColumns(otp *models.PendingOTP) (hash, expiry any) {
	if otp == nil {
		return nil, nil
	}
	return otp.CodeHash, otp.ExpiresAt
}

func scanAccount(row *sql.Row) (*models.Account, error) {
	account := &models.Account{}
	var otpHash sql.NullString
	var otpExpiry sql.NullInt64

	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.Verified,
		&otpHash,
		&otpExpiry,
		&account.Profile.Name,
		&account.Profile.Avatar,
		&account.Preferences.Theme,
		&account.Preferences.Currency,
		&account.LastLoginAt,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}

	if otpHash.Valid {
		account.PendingOTP = &models.PendingOTP{
			CodeHash:  otpHash.String,
			ExpiresAt: otpExpiry.Int64,
		}
	}
	return account, nil
}
