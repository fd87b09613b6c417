// Package classifier maps free-text grocery item names to a category and a
// suggested measurement unit. Classification is pure keyword matching:
// deterministic, no I/O, same input always yields the same output.
package classifier

import (
	"math"
	"strings"
)

// Classify resolves the category and suggested unit for an item name.
// The category rules are evaluated in a fixed order and the first rule whose
// keyword appears (case-insensitive substring) in the name wins; names
// matching no rule fall back to "General". The unit is then derived from the
// resolved category plus secondary keyword checks on the name.
func Classify(name string) (category, unit string) {
	category = CategoryFor(name)
	return category, UnitFor(category, name)
}

// CategoryFor resolves only the category for an item name.
func CategoryFor(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return "General"
}

// UnitFor suggests a unit for an item of the given category. The secondary
// keyword checks run against the item name, not the category.
func UnitFor(category, name string) string {
	lower := strings.ToLower(name)
	containsAny := func(kws ...string) bool {
		for _, kw := range kws {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}

	switch category {
	case "Fruits", "Vegetables":
		if containsAny("juice", "smoothie") {
			return "ml"
		}
		if containsAny("small", "individual") {
			return "pcs"
		}
		return "kg"
	case "Dairy":
		if containsAny("milk", "juice", "cream") {
			return "ml"
		}
		if containsAny("cheese", "butter") {
			return "g"
		}
		return "pcs"
	case "Meat":
		return "kg"
	case "Bakery":
		if containsAny("bread", "roll", "bagel") {
			return "pcs"
		}
		return "g"
	case "Beverages":
		return "ml"
	case "Snacks":
		if containsAny("nuts", "chips", "crackers") {
			return "g"
		}
		return "pcs"
	case "Pantry":
		if containsAny("oil", "vinegar", "sauce") {
			return "ml"
		}
		if containsAny("rice", "pasta", "flour") {
			return "kg"
		}
		return "g"
	}
	return "g"
}

// SuggestedPrice returns a ballpark per-unit price for a category: the
// midpoint of the category's typical range, rounded to a whole amount.
// Categories without a range use the General one.
func SuggestedPrice(category string) float64 {
	r, ok := priceRanges[category]
	if !ok {
		r = priceRanges["General"]
	}
	return math.Round(float64(r.min+r.max) / 2)
}

type priceRange struct {
	min, max int
}

var priceRanges = map[string]priceRange{
	"Fruits":          {20, 200},
	"Vegetables":      {15, 150},
	"Dairy":           {30, 300},
	"Meat":            {200, 800},
	"Bakery":          {10, 100},
	"Beverages":       {20, 150},
	"Snacks":          {20, 200},
	"Frozen":          {50, 400},
	"Pantry":          {30, 300},
	"Health & Beauty": {50, 500},
	"General":         {20, 200},
}
