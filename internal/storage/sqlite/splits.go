package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kharcha-app/kharcha/internal/models"
)

// CreateSplitRecord persists a saved bill-split summary.
func (s *SQLiteStore) CreateSplitRecord(ctx context.Context, record *models.SplitRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt == 0 {
		record.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO split_records (id, account_id, total_amount, person_count, amount_per_person, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.AccountID,
		record.TotalAmount,
		record.PersonCount,
		record.AmountPerPerson,
		record.Note,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create split record: %w", err)
	}
	return nil
}

// ListSplitRecords returns an account's saved summaries, newest first.
func (s *SQLiteStore) ListSplitRecords(ctx context.Context, accountID string, limit int) ([]models.SplitRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, account_id, total_amount, person_count, amount_per_person, note, created_at
		FROM split_records
		WHERE account_id = ?
		ORDER BY created_at DESC
		LIMIT ?`,
		accountID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list split records: %w", err)
	}
	defer rows.Close()

	var records []models.SplitRecord
	for rows.Next() {
		var record models.SplitRecord
		if err := rows.Scan(
			&record.ID,
			&record.AccountID,
			&record.TotalAmount,
			&record.PersonCount,
			&record.AmountPerPerson,
			&record.Note,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan split record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate split records: %w", err)
	}
	return records, nil
}
