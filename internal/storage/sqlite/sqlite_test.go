package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kharcha-app/kharcha/internal/models"
	"github.com/kharcha-app/kharcha/internal/storage"
)

func setupTestStore(t *testing.T) (*SQLiteStore, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "kharcha-sqlite-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		os.RemoveAll(tempDir)
		t.Fatalf("failed to create store: %v", err)
	}
	return store, func() {
		store.Close()
		os.RemoveAll(tempDir)
	}
}

func mustCreateAccount(t *testing.T, store *SQLiteStore, email string) *models.Account {
	t.Helper()
	account := &models.Account{Email: email, Verified: true}
	if err := store.CreateAccount(context.Background(), account); err != nil {
		t.Fatalf("failed to create account: %v", err)
	}
	return account
}

func TestCreateAndGetAccount(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	account := &models.Account{Email: "alice@example.com"}
	if err := store.CreateAccount(ctx, account); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	if account.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if account.CreatedAt == 0 {
		t.Error("expected createdAt to be set")
	}

	got, err := store.GetAccountByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetAccountByEmail failed: %v", err)
	}
	if got.ID != account.ID {
		t.Errorf("ID = %q, want %q", got.ID, account.ID)
	}
	if got.Verified {
		t.Error("new account should be unverified")
	}
	if got.PendingOTP != nil {
		t.Error("new account should have no pending code")
	}
	if got.Preferences.Theme != models.ThemeAuto || got.Preferences.Currency != "INR" {
		t.Errorf("unexpected default preferences: %+v", got.Preferences)
	}

	byID, err := store.GetAccountByID(ctx, account.ID)
	if err != nil {
		t.Fatalf("GetAccountByID failed: %v", err)
	}
	if byID.Email != "alice@example.com" {
		t.Errorf("email = %q", byID.Email)
	}
}

func TestGetAccount_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := store.GetAccountByEmail(ctx, "ghost@example.com"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetAccountByEmail error = %v, want ErrNotFound", err)
	}
	if _, err := store.GetAccountByID(ctx, "nope"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetAccountByID error = %v, want ErrNotFound", err)
	}
}

func TestUpdateAccount(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	account := mustCreateAccount(t, store, "alice@example.com")

	account.Profile.Name = "Alice"
	account.Preferences.Theme = models.ThemeDark
	account.Preferences.Currency = "USD"
	account.PendingOTP = &models.PendingOTP{
		CodeHash:  "hash",
		ExpiresAt: time.Now().Add(10 * time.Minute).Unix(),
	}
	account.LastLoginAt = time.Now().Unix()
	if err := store.UpdateAccount(ctx, account); err != nil {
		t.Fatalf("UpdateAccount failed: %v", err)
	}

	got, err := store.GetAccountByID(ctx, account.ID)
	if err != nil {
		t.Fatalf("GetAccountByID failed: %v", err)
	}
	if got.Profile.Name != "Alice" || got.Preferences.Theme != models.ThemeDark || got.Preferences.Currency != "USD" {
		t.Errorf("update lost fields: %+v", got)
	}
	if got.PendingOTP == nil || got.PendingOTP.CodeHash != "hash" {
		t.Errorf("pending code not stored: %+v", got.PendingOTP)
	}
	if got.LastLoginAt == 0 {
		t.Error("lastLoginAt not stored")
	}

	// Clearing the pending code persists nil.
	got.PendingOTP = nil
	if err := store.UpdateAccount(ctx, got); err != nil {
		t.Fatalf("UpdateAccount failed: %v", err)
	}
	got, err = store.GetAccountByID(ctx, account.ID)
	if err != nil {
		t.Fatalf("GetAccountByID failed: %v", err)
	}
	if got.PendingOTP != nil {
		t.Errorf("pending code not cleared: %+v", got.PendingOTP)
	}
}

func TestUpdateAccount_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.UpdateAccount(context.Background(), &models.Account{ID: "ghost", Email: "g@example.com"})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestGroceryList_NotFoundUntilWritten(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	account := mustCreateAccount(t, store, "alice@example.com")

	if _, err := store.GetGroceryList(ctx, account.ID, "2025-03-01"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestAppendGroceryItems(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	account := mustCreateAccount(t, store, "alice@example.com")
	now := time.Now().Unix()

	first, err := store.AppendGroceryItems(ctx, account.ID, "2025-03-01", []models.GroceryItem{
		{Name: "Milk", Quantity: 2, Unit: "l", Category: "Dairy", AddedDate: now},
	})
	if err != nil {
		t.Fatalf("AppendGroceryItems failed: %v", err)
	}
	if len(first) != 1 || first[0].ID == "" {
		t.Fatalf("append did not assign IDs: %+v", first)
	}

	// A second append lands after the first batch.
	if _, err := store.AppendGroceryItems(ctx, account.ID, "2025-03-01", []models.GroceryItem{
		{Name: "Bread", Quantity: 1, Unit: "pcs", Category: "Bakery", AddedDate: now},
	}); err != nil {
		t.Fatalf("AppendGroceryItems failed: %v", err)
	}

	list, err := store.GetGroceryList(ctx, account.ID, "2025-03-01")
	if err != nil {
		t.Fatalf("GetGroceryList failed: %v", err)
	}
	if list.Date != "2025-03-01" || list.AccountID != account.ID {
		t.Errorf("unexpected list: %+v", list)
	}
	if len(list.Items) != 2 || list.Items[0].Name != "Milk" || list.Items[1].Name != "Bread" {
		t.Errorf("unexpected items/order: %+v", list.Items)
	}
}

func TestReplaceGroceryItems(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	account := mustCreateAccount(t, store, "alice@example.com")
	now := time.Now().Unix()

	if _, err := store.AppendGroceryItems(ctx, account.ID, "2025-03-01", []models.GroceryItem{
		{Name: "Old", Quantity: 1, Unit: "g", Category: "General", AddedDate: now},
	}); err != nil {
		t.Fatalf("AppendGroceryItems failed: %v", err)
	}

	list, err := store.ReplaceGroceryItems(ctx, account.ID, "2025-03-01", []models.GroceryItem{
		{ID: "keep-this-id", Name: "Rice", Quantity: 5, Unit: "kg", Category: "Pantry", AddedDate: now},
		{Name: "Dal", Quantity: 1, Unit: "kg", Category: "Pantry", AddedDate: now},
	})
	if err != nil {
		t.Fatalf("ReplaceGroceryItems failed: %v", err)
	}
	if len(list.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(list.Items))
	}
	if list.Items[0].ID != "keep-this-id" {
		t.Errorf("caller-supplied ID replaced: %q", list.Items[0].ID)
	}
	if list.Items[1].ID == "" {
		t.Error("missing ID not assigned")
	}

	got, err := store.GetGroceryList(ctx, account.ID, "2025-03-01")
	if err != nil {
		t.Fatalf("GetGroceryList failed: %v", err)
	}
	if len(got.Items) != 2 || got.Items[0].Name != "Rice" || got.Items[1].Name != "Dal" {
		t.Errorf("replace left stale state: %+v", got.Items)
	}

	// Replacing with an empty slice empties the list but keeps it existing.
	if _, err := store.ReplaceGroceryItems(ctx, account.ID, "2025-03-01", nil); err != nil {
		t.Fatalf("ReplaceGroceryItems failed: %v", err)
	}
	got, err = store.GetGroceryList(ctx, account.ID, "2025-03-01")
	if err != nil {
		t.Fatalf("GetGroceryList failed: %v", err)
	}
	if len(got.Items) != 0 {
		t.Errorf("expected empty list, got %+v", got.Items)
	}
}

func TestUpdateGroceryItem(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	account := mustCreateAccount(t, store, "alice@example.com")
	now := time.Now().Unix()

	items, err := store.AppendGroceryItems(ctx, account.ID, "2025-03-01", []models.GroceryItem{
		{Name: "Milk", Quantity: 2, Unit: "l", Category: "Dairy", AddedDate: now},
	})
	if err != nil {
		t.Fatalf("AppendGroceryItems failed: %v", err)
	}

	price := 55.0
	boughtAt := time.Now().Unix()
	item := items[0]
	item.Quantity = 3
	item.Bought = true
	item.BoughtDate = &boughtAt
	item.ActualPrice = &price
	if err := store.UpdateGroceryItem(ctx, account.ID, "2025-03-01", item); err != nil {
		t.Fatalf("UpdateGroceryItem failed: %v", err)
	}

	list, err := store.GetGroceryList(ctx, account.ID, "2025-03-01")
	if err != nil {
		t.Fatalf("GetGroceryList failed: %v", err)
	}
	got := list.Items[0]
	if got.Quantity != 3 || !got.Bought {
		t.Errorf("update lost fields: %+v", got)
	}
	if got.ActualPrice == nil || *got.ActualPrice != 55 {
		t.Errorf("actualPrice = %v, want 55", got.ActualPrice)
	}
	if got.BoughtDate == nil || *got.BoughtDate != boughtAt {
		t.Errorf("boughtDate = %v, want %d", got.BoughtDate, boughtAt)
	}

	// Nil pointers clear the nullable columns.
	item.ActualPrice = nil
	item.BoughtDate = nil
	item.Bought = false
	if err := store.UpdateGroceryItem(ctx, account.ID, "2025-03-01", item); err != nil {
		t.Fatalf("UpdateGroceryItem failed: %v", err)
	}
	list, err = store.GetGroceryList(ctx, account.ID, "2025-03-01")
	if err != nil {
		t.Fatalf("GetGroceryList failed: %v", err)
	}
	got = list.Items[0]
	if got.ActualPrice != nil || got.BoughtDate != nil || got.Bought {
		t.Errorf("nullable fields not cleared: %+v", got)
	}
}

func TestUpdateGroceryItem_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	account := mustCreateAccount(t, store, "alice@example.com")

	err := store.UpdateGroceryItem(ctx, account.ID, "2025-03-01", models.GroceryItem{ID: "ghost", Name: "x"})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestDeleteGroceryItem(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	account := mustCreateAccount(t, store, "alice@example.com")
	items, err := store.AppendGroceryItems(ctx, account.ID, "2025-03-01", []models.GroceryItem{
		{Name: "Milk", Quantity: 1, Unit: "l", Category: "Dairy", AddedDate: time.Now().Unix()},
	})
	if err != nil {
		t.Fatalf("AppendGroceryItems failed: %v", err)
	}

	if err := store.DeleteGroceryItem(ctx, account.ID, "2025-03-01", items[0].ID); err != nil {
		t.Fatalf("DeleteGroceryItem failed: %v", err)
	}
	if err := store.DeleteGroceryItem(ctx, account.ID, "2025-03-01", items[0].ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}

func TestGetGroceryListsInRange(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	account := mustCreateAccount(t, store, "alice@example.com")
	other := mustCreateAccount(t, store, "bob@example.com")
	now := time.Now().Unix()

	for _, date := range []string{"2025-02-28", "2025-03-01", "2025-03-31", "2025-04-01"} {
		if _, err := store.AppendGroceryItems(ctx, account.ID, date, []models.GroceryItem{
			{Name: "Item " + date, Quantity: 1, Unit: "g", Category: "General", AddedDate: now},
		}); err != nil {
			t.Fatalf("AppendGroceryItems failed: %v", err)
		}
	}
	// Another account's list inside the range must not show up.
	if _, err := store.AppendGroceryItems(ctx, other.ID, "2025-03-15", []models.GroceryItem{
		{Name: "Bob's", Quantity: 1, Unit: "g", Category: "General", AddedDate: now},
	}); err != nil {
		t.Fatalf("AppendGroceryItems failed: %v", err)
	}

	lists, err := store.GetGroceryListsInRange(ctx, account.ID, "2025-03-01", "2025-03-31")
	if err != nil {
		t.Fatalf("GetGroceryListsInRange failed: %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("got %d lists, want 2", len(lists))
	}
	if lists[0].Date != "2025-03-01" || lists[1].Date != "2025-03-31" {
		t.Errorf("unexpected dates: %q, %q", lists[0].Date, lists[1].Date)
	}
	for _, list := range lists {
		if len(list.Items) != 1 {
			t.Errorf("list %s missing items", list.Date)
		}
	}
}

func TestGroceryCrossAccountScoping(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	alice := mustCreateAccount(t, store, "alice@example.com")
	bob := mustCreateAccount(t, store, "bob@example.com")

	items, err := store.AppendGroceryItems(ctx, alice.ID, "2025-03-01", []models.GroceryItem{
		{Name: "Milk", Quantity: 1, Unit: "l", Category: "Dairy", AddedDate: time.Now().Unix()},
	})
	if err != nil {
		t.Fatalf("AppendGroceryItems failed: %v", err)
	}

	if _, err := store.GetGroceryList(ctx, bob.ID, "2025-03-01"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("cross-account read error = %v, want ErrNotFound", err)
	}
	if err := store.DeleteGroceryItem(ctx, bob.ID, "2025-03-01", items[0].ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("cross-account delete error = %v, want ErrNotFound", err)
	}
	item := items[0]
	item.Name = "hijack"
	if err := store.UpdateGroceryItem(ctx, bob.ID, "2025-03-01", item); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("cross-account update error = %v, want ErrNotFound", err)
	}
}

func TestSplitRecords(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	alice := mustCreateAccount(t, store, "alice@example.com")
	bob := mustCreateAccount(t, store, "bob@example.com")

	for i, total := range []float64{100, 250, 90} {
		record := &models.SplitRecord{
			AccountID:       alice.ID,
			TotalAmount:     total,
			PersonCount:     3,
			AmountPerPerson: total / 3,
			Note:            "dinner",
			CreatedAt:       time.Now().Unix() + int64(i), // force distinct ordering
		}
		if err := store.CreateSplitRecord(ctx, record); err != nil {
			t.Fatalf("CreateSplitRecord failed: %v", err)
		}
		if record.ID == "" {
			t.Error("expected ID to be assigned")
		}
	}
	if err := store.CreateSplitRecord(ctx, &models.SplitRecord{
		AccountID: bob.ID, TotalAmount: 10, PersonCount: 2, AmountPerPerson: 5,
		CreatedAt: time.Now().Unix(),
	}); err != nil {
		t.Fatalf("CreateSplitRecord failed: %v", err)
	}

	records, err := store.ListSplitRecords(ctx, alice.ID, 10)
	if err != nil {
		t.Fatalf("ListSplitRecords failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	// Newest first.
	if records[0].TotalAmount != 90 || records[2].TotalAmount != 100 {
		t.Errorf("unexpected order: %v, %v, %v", records[0].TotalAmount, records[1].TotalAmount, records[2].TotalAmount)
	}

	limited, err := store.ListSplitRecords(ctx, alice.ID, 2)
	if err != nil {
		t.Fatalf("ListSplitRecords failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit ignored: got %d records", len(limited))
	}
}
