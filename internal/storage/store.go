// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/kharcha-app/kharcha/internal/models"
)

// ErrNotFound is returned when the requested account, list or item does not
// exist. The same error covers rows owned by a different account, so callers
// never learn whether foreign data exists.
var ErrNotFound = errors.New("not found")

// Store defines the persistence operations the services depend on. The
// abstraction allows swapping storage backends without touching the service
// layer. Every mutating call is applied as a single transaction.
type Store interface {
	// CreateAccount persists a new account. The account.ID field is
	// populated by the store when empty.
	CreateAccount(ctx context.Context, account *models.Account) error

	// GetAccountByEmail retrieves an account by its normalized email.
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)

	// GetAccountByID retrieves an account by ID.
	GetAccountByID(ctx context.Context, id string) (*models.Account, error)

	// UpdateAccount overwrites all mutable account fields, including the
	// pending OTP (nil clears it).
	UpdateAccount(ctx context.Context, account *models.Account) error

	// GetGroceryList returns the list for (account, date) with its items in
	// display order. Returns ErrNotFound when no list exists; it never
	// creates one.
	GetGroceryList(ctx context.Context, accountID, date string) (*models.GroceryList, error)

	// ReplaceGroceryItems replaces the full item sequence for (account,
	// date) in one transaction, creating the list if absent. Items without
	// an ID get one assigned. Returns the stored list.
	ReplaceGroceryItems(ctx context.Context, accountID, date string, items []models.GroceryItem) (*models.GroceryList, error)

	// AppendGroceryItems appends items to the list for (account, date),
	// creating the list if absent. Returns the appended items with IDs
	// assigned.
	AppendGroceryItems(ctx context.Context, accountID, date string, items []models.GroceryItem) ([]models.GroceryItem, error)

	// UpdateGroceryItem overwrites one item's mutable fields. Returns
	// ErrNotFound when the list or item is absent; it never creates a list.
	UpdateGroceryItem(ctx context.Context, accountID, date string, item models.GroceryItem) error

	// DeleteGroceryItem removes one item. Returns ErrNotFound when the list
	// or item is absent.
	DeleteGroceryItem(ctx context.Context, accountID, date, itemID string) error

	// GetGroceryListsInRange returns all of an account's lists whose date
	// falls within [fromDate, toDate], items included.
	GetGroceryListsInRange(ctx context.Context, accountID, fromDate, toDate string) ([]models.GroceryList, error)

	// CreateSplitRecord persists a saved bill-split summary.
	CreateSplitRecord(ctx context.Context, record *models.SplitRecord) error

	// ListSplitRecords returns an account's saved summaries, newest first.
	ListSplitRecords(ctx context.Context, accountID string, limit int) ([]models.SplitRecord, error)

	// Close releases any resources held by the store.
	Close() error
}
