// Package service implements the application services on top of the storage
// layer. The grocery ledger owns all list semantics: validation,
// classification of new items, partial updates, bulk replacement,
// duplication and monthly aggregation.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kharcha-app/kharcha/internal/classifier"
	"github.com/kharcha-app/kharcha/internal/models"
	"github.com/kharcha-app/kharcha/internal/storage"
)

// Ledger is the grocery-list service. Every operation is scoped to one
// account; rows belonging to other accounts are indistinguishable from
// missing ones (storage.ErrNotFound either way).
type Ledger struct {
	store storage.Store
}

// NewLedger creates a grocery ledger backed by the given store.
func NewLedger(store storage.Store) *Ledger {
	return &Ledger{store: store}
}

// ItemDraft is caller-supplied item input for add and bulk-save operations.
// Zero-valued Unit and Category mean "let the classifier decide" on add, and
// fall back to defaults ("g" / "General") on bulk-save.
type ItemDraft struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Quantity       float64  `json:"quantity"`
	Unit           string   `json:"unit"`
	Category       string   `json:"category"`
	EstimatedPrice float64  `json:"estimatedPrice"`
	ActualPrice    *float64 `json:"actualPrice"`
	Bought         bool     `json:"bought"`
	BoughtDate     *int64   `json:"boughtDate"`
	AddedDate      int64    `json:"addedDate"`
}

// ItemPatch carries partial-update fields; nil pointers leave the stored
// value untouched.
type ItemPatch struct {
	Name           *string  `json:"name"`
	Quantity       *float64 `json:"quantity"`
	Unit           *string  `json:"unit"`
	Category       *string  `json:"category"`
	EstimatedPrice *float64 `json:"estimatedPrice"`
	ActualPrice    *float64 `json:"actualPrice"`
	Bought         *bool    `json:"bought"`
	BoughtDate     *int64   `json:"boughtDate"`
}

// GetList returns the items for (account, date). A missing list yields an
// empty slice and is never created as a side effect.
func (l *Ledger) GetList(ctx context.Context, accountID, date string) ([]models.GroceryItem, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	list, err := l.store.GetGroceryList(ctx, accountID, date)
	if errors.Is(err, storage.ErrNotFound) {
		return []models.GroceryItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	if list.Items == nil {
		return []models.GroceryItem{}, nil
	}
	return list.Items, nil
}

// AddItem validates and appends one item to the list for date, creating the
// list lazily. When the draft carries no unit, category or estimated price
// the classifier fills them from the item name. The item always gets a fresh
// id; any caller-supplied one is ignored.
func (l *Ledger) AddItem(ctx context.Context, accountID, date string, draft ItemDraft) (*models.GroceryItem, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	draft.ID = ""
	item, err := l.buildItem(draft, time.Now().Unix(), true)
	if err != nil {
		return nil, err
	}

	stored, err := l.store.AppendGroceryItems(ctx, accountID, date, []models.GroceryItem{*item})
	if err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}
	return &stored[0], nil
}

// UpdateItem applies a partial update to one item. Fields absent from the
// patch keep their stored values. Toggling bought on without an explicit
// boughtDate stamps now; toggling it off clears the date.
func (l *Ledger) UpdateItem(ctx context.Context, accountID, date, itemID string, patch ItemPatch) (*models.GroceryItem, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	list, err := l.store.GetGroceryList(ctx, accountID, date)
	if err != nil {
		return nil, err
	}
	item := findItem(list.Items, itemID)
	if item == nil {
		return nil, storage.ErrNotFound
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, invalid("name", "must not be empty")
		}
		item.Name = name
	}
	if patch.Quantity != nil {
		if *patch.Quantity <= 0 {
			return nil, invalid("quantity", "must be greater than 0")
		}
		item.Quantity = *patch.Quantity
	}
	if patch.Unit != nil {
		if !models.ValidUnit(*patch.Unit) {
			return nil, invalid("unit", "unknown unit")
		}
		item.Unit = *patch.Unit
	}
	if patch.Category != nil {
		if !models.ValidCategory(*patch.Category) {
			return nil, invalid("category", "unknown category")
		}
		item.Category = *patch.Category
	}
	if patch.EstimatedPrice != nil {
		if *patch.EstimatedPrice < 0 {
			return nil, invalid("estimatedPrice", "must not be negative")
		}
		item.EstimatedPrice = *patch.EstimatedPrice
	}
	if patch.ActualPrice != nil {
		if *patch.ActualPrice < 0 {
			return nil, invalid("actualPrice", "must not be negative")
		}
		item.ActualPrice = patch.ActualPrice
	}
	if patch.Bought != nil {
		item.Bought = *patch.Bought
		if item.Bought {
			if patch.BoughtDate != nil {
				item.BoughtDate = patch.BoughtDate
			} else if item.BoughtDate == nil {
				now := time.Now().Unix()
				item.BoughtDate = &now
			}
		} else {
			item.BoughtDate = nil
		}
	} else if patch.BoughtDate != nil && item.Bought {
		item.BoughtDate = patch.BoughtDate
	}

	if err := l.store.UpdateGroceryItem(ctx, accountID, date, *item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes one item from the list for date.
func (l *Ledger) DeleteItem(ctx context.Context, accountID, date, itemID string) error {
	if err := validateDate(date); err != nil {
		return err
	}
	return l.store.DeleteGroceryItem(ctx, accountID, date, itemID)
}

// BulkSave replaces the full item sequence for date with the given drafts.
// Every draft is re-validated and re-normalized; the replacement happens in
// one transaction, so the operation is all-or-nothing and idempotent.
func (l *Ledger) BulkSave(ctx context.Context, accountID, date string, drafts []ItemDraft) ([]models.GroceryItem, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	items := make([]models.GroceryItem, 0, len(drafts))
	for i, draft := range drafts {
		item, err := l.buildItem(draft, now, false)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, *item)
	}

	list, err := l.store.ReplaceGroceryItems(ctx, accountID, date, items)
	if err != nil {
		return nil, fmt.Errorf("failed to save list: %w", err)
	}
	if list.Items == nil {
		return []models.GroceryItem{}, nil
	}
	return list.Items, nil
}

// DuplicateFromDate copies every item of the source date's list into new
// unbought items at the target date, appending to whatever already exists
// there. A missing or empty source fails with not-found and leaves the
// target untouched.
func (l *Ledger) DuplicateFromDate(ctx context.Context, accountID, targetDate, sourceDate string) ([]models.GroceryItem, error) {
	if err := validateDate(targetDate); err != nil {
		return nil, err
	}
	if err := validateDate(sourceDate); err != nil {
		return nil, err
	}

	source, err := l.store.GetGroceryList(ctx, accountID, sourceDate)
	if err != nil {
		return nil, err
	}
	if len(source.Items) == 0 {
		return nil, storage.ErrNotFound
	}

	now := time.Now().Unix()
	copies := make([]models.GroceryItem, 0, len(source.Items))
	for _, item := range source.Items {
		copies = append(copies, models.GroceryItem{
			Name:           item.Name,
			Quantity:       item.Quantity,
			Unit:           item.Unit,
			Category:       item.Category,
			EstimatedPrice: item.EstimatedPrice,
			Bought:         false,
			AddedDate:      now,
		})
	}

	appended, err := l.store.AppendGroceryItems(ctx, accountID, targetDate, copies)
	if err != nil {
		return nil, fmt.Errorf("failed to duplicate list: %w", err)
	}
	return appended, nil
}

// DuplicateLastWeek duplicates the list from exactly seven days before date.
func (l *Ledger) DuplicateLastWeek(ctx context.Context, accountID, date string) ([]models.GroceryItem, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	day, _ := time.Parse(models.DateFormat, date)
	source := day.AddDate(0, 0, -7).Format(models.DateFormat)
	return l.DuplicateFromDate(ctx, accountID, date, source)
}

// MonthlySummary aggregates one calendar month. Spend counts only bought
// items with an actual price; the bought count includes unpriced ones.
func (l *Ledger) MonthlySummary(ctx context.Context, accountID string, year, month int) (*models.MonthlySummary, error) {
	if year < 1970 || year > 9999 {
		return nil, invalid("year", "out of range")
	}
	if month < 1 || month > 12 {
		return nil, invalid("month", "must be between 1 and 12")
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	lists, err := l.store.GetGroceryListsInRange(ctx, accountID,
		first.Format(models.DateFormat), last.Format(models.DateFormat))
	if err != nil {
		return nil, err
	}

	summary := &models.MonthlySummary{DailyTotals: make(map[string]float64)}
	for _, list := range lists {
		var dayTotal float64
		for _, item := range list.Items {
			if !item.Bought {
				continue
			}
			summary.TotalItemsBought++
			if item.ActualPrice != nil {
				dayTotal += *item.ActualPrice * item.Quantity
			}
		}
		summary.TotalSpent += dayTotal
		summary.DailyTotals[list.Date] = dayTotal
	}
	return summary, nil
}

// buildItem validates and normalizes one draft into a storable item.
// classify=true resolves missing unit/category from the item name and fills
// a zero estimated price with the category's suggested one; otherwise
// unit/category fall back to plain defaults (the bulk-save contract).
func (l *Ledger) buildItem(draft ItemDraft, now int64, classify bool) (*models.GroceryItem, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return nil, invalid("name", "must not be empty")
	}
	if draft.Quantity <= 0 {
		return nil, invalid("quantity", "must be greater than 0")
	}
	if draft.EstimatedPrice < 0 {
		return nil, invalid("estimatedPrice", "must not be negative")
	}
	if draft.ActualPrice != nil && *draft.ActualPrice < 0 {
		return nil, invalid("actualPrice", "must not be negative")
	}

	unit, category := draft.Unit, draft.Category
	if classify {
		suggestedCategory, suggestedUnit := classifier.Classify(name)
		if category == "" {
			category = suggestedCategory
		}
		if unit == "" {
			unit = suggestedUnit
		}
		if draft.EstimatedPrice == 0 {
			draft.EstimatedPrice = classifier.SuggestedPrice(category)
		}
	} else {
		if unit == "" {
			unit = "g"
		}
		if category == "" {
			category = "General"
		}
	}
	if !models.ValidUnit(unit) {
		return nil, invalid("unit", "unknown unit")
	}
	if !models.ValidCategory(category) {
		return nil, invalid("category", "unknown category")
	}

	item := &models.GroceryItem{
		ID:             draft.ID,
		Name:           name,
		Quantity:       draft.Quantity,
		Unit:           unit,
		Category:       category,
		EstimatedPrice: draft.EstimatedPrice,
		ActualPrice:    draft.ActualPrice,
		Bought:         draft.Bought,
		AddedDate:      draft.AddedDate,
	}
	if item.AddedDate == 0 {
		item.AddedDate = now
	}
	if item.Bought {
		if draft.BoughtDate != nil {
			item.BoughtDate = draft.BoughtDate
		} else {
			item.BoughtDate = &now
		}
	}
	return item, nil
}

func findItem(items []models.GroceryItem, id string) *models.GroceryItem {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}

func validateDate(date string) error {
	if _, err := time.Parse(models.DateFormat, date); err != nil {
		return invalid("date", "must be formatted YYYY-MM-DD")
	}
	return nil
}
