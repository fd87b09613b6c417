package models

// Units is the closed set of measurement units for grocery items.
var Units = []string{"g", "kg", "ml", "l", "pcs", "pkg"}

// Categories is the closed set of grocery categories. "General" is the
// classifier fallback; "Other" exists for explicit user choice only.
var Categories = []string{
	"General", "Vegetables", "Fruits", "Dairy", "Meat", "Snacks",
	"Beverages", "Bakery", "Frozen", "Pantry", "Health & Beauty", "Other",
}

// DateFormat is the calendar-day key format for grocery lists.
const DateFormat = "2006-01-02"

// GroceryList is the set of items an account plans to buy on one date.
// There is at most one list per (account, date).
type GroceryList struct {
	// ID is the unique identifier for the list (UUID format).
	ID string `json:"id"`

	// AccountID is the owning account.
	AccountID string `json:"-"`

	// Date is the calendar-day key, formatted as DateFormat. No time component.
	Date string `json:"date"`

	// Items in insertion/display order.
	Items []GroceryItem `json:"items"`

	// CreatedAt is the Unix timestamp when the list was first created.
	CreatedAt int64 `json:"-"`
}

// GroceryItem is a single entry on a grocery list.
type GroceryItem struct {
	// ID is unique within the owning list (UUID format).
	ID string `json:"id"`

	// Name is the free-text item name. Never empty.
	Name string `json:"name"`

	// Quantity is the amount to buy, in Unit. Always > 0.
	Quantity float64 `json:"quantity"`

	// Unit is one of Units.
	Unit string `json:"unit"`

	// Category is one of Categories.
	Category string `json:"category"`

	// EstimatedPrice is the expected per-unit price. Never negative.
	EstimatedPrice float64 `json:"estimatedPrice"`

	// ActualPrice is the paid per-unit price, nil until recorded.
	ActualPrice *float64 `json:"actualPrice"`

	// Bought marks the item as purchased.
	Bought bool `json:"bought"`

	// BoughtDate is the Unix timestamp of purchase, present iff Bought.
	BoughtDate *int64 `json:"boughtDate"`

	// AddedDate is the Unix timestamp the item was created. Immutable.
	AddedDate int64 `json:"addedDate"`
}

// MonthlySummary aggregates one calendar month of grocery spending.
type MonthlySummary struct {
	// TotalSpent sums actualPrice x quantity over bought items that have
	// an actual price recorded.
	TotalSpent float64 `json:"totalSpent"`

	// TotalItemsBought counts bought items, priced or not.
	TotalItemsBought int `json:"totalItemsBought"`

	// DailyTotals maps each list date to that day's bought-item spend.
	DailyTotals map[string]float64 `json:"dailyTotals"`
}

// ValidUnit reports whether u is in the closed unit set.
func ValidUnit(u string) bool {
	for _, v := range Units {
		if u == v {
			return true
		}
	}
	return false
}

// ValidCategory reports whether c is in the closed category set.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}
