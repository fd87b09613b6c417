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

const itemColumns = `id, name, quantity, unit, category, estimated_price,
	actual_price, bought, bought_at, added_at`

// GetGroceryList retrieves the list for (account, date) with its items in
// display order. Returns storage.ErrNotFound when no list exists.
func (s *SQLiteStore) GetGroceryList(ctx context.Context, accountID, date string) (*models.GroceryList, error) {
	list := &models.GroceryList{AccountID: accountID, Date: date}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at FROM grocery_lists WHERE account_id = ? AND date = ?`,
		accountID, date,
	).Scan(&list.ID, &list.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get grocery list: %w", err)
	}

	items, err := s.itemsForList(ctx, list.ID)
	if err != nil {
		return nil, err
	}
	list.Items = items
	return list, nil
}

// ReplaceGroceryItems atomically replaces the full item sequence for
// (account, date), creating the list if absent.
func (s *SQLiteStore) ReplaceGroceryItems(ctx context.Context, accountID, date string, items []models.GroceryItem) (*models.GroceryList, error) {
	stored := make([]models.GroceryItem, len(items))
	copy(stored, items)

	var listID string
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		id, err := findOrCreateList(ctx, tx, accountID, date)
		if err != nil {
			return err
		}
		listID = id

		if _, err := tx.ExecContext(ctx, `DELETE FROM grocery_items WHERE list_id = ?`, listID); err != nil {
			return fmt.Errorf("failed to clear grocery items: %w", err)
		}
		return insertItems(ctx, tx, listID, stored, 0)
	})
	if err != nil {
		return nil, err
	}

	return &models.GroceryList{
		ID:        listID,
		AccountID: accountID,
		Date:      date,
		Items:     stored,
	}, nil
}

// AppendGroceryItems appends items to the list for (account, date), creating
// the list if absent. Returns the appended items with IDs assigned.
func (s *SQLiteStore) AppendGroceryItems(ctx context.Context, accountID, date string, items []models.GroceryItem) ([]models.GroceryItem, error) {
	stored := make([]models.GroceryItem, len(items))
	copy(stored, items)

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		listID, err := findOrCreateList(ctx, tx, accountID, date)
		if err != nil {
			return err
		}

		var next int
		err = tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(position) + 1, 0) FROM grocery_items WHERE list_id = ?`,
			listID,
		).Scan(&next)
		if err != nil {
			return fmt.Errorf("failed to find item position: %w", err)
		}
		return insertItems(ctx, tx, listID, stored, next)
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// UpdateGroceryItem overwrites one item's mutable fields. Returns
// storage.ErrNotFound when the list or item is absent.
func (s *SQLiteStore) UpdateGroceryItem(ctx context.Context, accountID, date string, item models.GroceryItem) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		listID, err := findList(ctx, tx, accountID, date)
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `
			UPDATE grocery_items
			SET name = ?, quantity = ?, unit = ?, category = ?,
				estimated_price = ?, actual_price = ?, bought = ?, bought_at = ?
			WHERE id = ? AND list_id = ?`,
			item.Name,
			item.Quantity,
			item.Unit,
			item.Category,
			item.EstimatedPrice,
			item.ActualPrice,
			item.Bought,
			item.BoughtDate,
			item.ID,
			listID,
		)
		if err != nil {
			return fmt.Errorf("failed to update grocery item: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to update grocery item: %w", err)
		}
		if affected == 0 {
			return storage.ErrNotFound
		}
		return nil
	})
}

// DeleteGroceryItem removes one item. Returns storage.ErrNotFound when the
// list or item is absent.
func (s *SQLiteStore) DeleteGroceryItem(ctx context.Context, accountID, date, itemID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		listID, err := findList(ctx, tx, accountID, date)
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			`DELETE FROM grocery_items WHERE id = ? AND list_id = ?`, itemID, listID)
		if err != nil {
			return fmt.Errorf("failed to delete grocery item: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to delete grocery item: %w", err)
		}
		if affected == 0 {
			return storage.ErrNotFound
		}
		return nil
	})
}

// GetGroceryListsInRange returns all of an account's lists whose date falls
// within [fromDate, toDate], items included. Dates are YYYY-MM-DD strings, so
// lexicographic comparison matches calendar order.
func (s *SQLiteStore) GetGroceryListsInRange(ctx context.Context, accountID, fromDate, toDate string) ([]models.GroceryList, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, created_at FROM grocery_lists
		WHERE account_id = ? AND date >= ? AND date <= ?
		ORDER BY date`,
		accountID, fromDate, toDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get grocery lists: %w", err)
	}
	defer rows.Close()

	var lists []models.GroceryList
	for rows.Next() {
		list := models.GroceryList{AccountID: accountID}
		if err := rows.Scan(&list.ID, &list.Date, &list.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan grocery list: %w", err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate grocery lists: %w", err)
	}

	for i := range lists {
		items, err := s.itemsForList(ctx, lists[i].ID)
		if err != nil {
			return nil, err
		}
		lists[i].Items = items
	}
	return lists, nil
}

func (s *SQLiteStore) itemsForList(ctx context.Context, listID string) ([]models.GroceryItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM grocery_items WHERE list_id = ? ORDER BY position`,
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get grocery items: %w", err)
	}
	defer rows.Close()

	var items []models.GroceryItem
	for rows.Next() {
		var item models.GroceryItem
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Quantity,
			&item.Unit,
			&item.Category,
			&item.EstimatedPrice,
			&item.ActualPrice,
			&item.Bought,
			&item.BoughtDate,
			&item.AddedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan grocery item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate grocery items: %w", err)
	}
	return items, nil
}

// findList resolves the list ID for (account, date), or storage.ErrNotFound.
func findList(ctx context.Context, tx *sql.Tx, accountID, date string) (string, error) {
	var listID string
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM grocery_lists WHERE account_id = ? AND date = ?`,
		accountID, date,
	).Scan(&listID)
	if err == sql.ErrNoRows {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to find grocery list: %w", err)
	}
	return listID, nil
}

// findOrCreateList resolves the list ID for (account, date), creating the
// list row when absent.
func findOrCreateList(ctx context.Context, tx *sql.Tx, accountID, date string) (string, error) {
	listID, err := findList(ctx, tx, accountID, date)
	if err == nil {
		return listID, nil
	}
	if err != storage.ErrNotFound {
		return "", err
	}

	listID = uuid.New().String()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO grocery_lists (id, account_id, date, created_at) VALUES (?, ?, ?, ?)`,
		listID, accountID, date, time.Now().Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create grocery list: %w", err)
	}
	return listID, nil
}

func insertItems(ctx context.Context, tx *sql.Tx, listID string, items []models.GroceryItem, startPos int) error {
	for i := range items {
		item := &items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO grocery_items (id, list_id, name, quantity, unit, category,
				estimated_price, actual_price, bought, bought_at, added_at, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			item.ID,
			listID,
			item.Name,
			item.Quantity,
			item.Unit,
			item.Category,
			item.EstimatedPrice,
			item.ActualPrice,
			item.Bought,
			item.BoughtDate,
			item.AddedDate,
			startPos+i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert grocery item: %w", err)
		}
	}
	return nil
}
