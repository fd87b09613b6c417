// Package calculator computes bill splits. It is pure: nothing here touches
// storage or the clock, and identical inputs always produce identical results.
package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTotal       = errors.New("total amount must be greater than 0")
	ErrInvalidPersonCount = errors.New("person count must be at least 1")
	ErrInvalidPercentage  = errors.New("percentage must be between 0 and 100")
)

// SplitInput holds the parameters for one split calculation.
type SplitInput struct {
	TotalAmount   float64
	PersonCount   int
	TipPercentage float64
	TaxPercentage float64

	// CustomAmounts, when non-empty, assigns each person an explicit share.
	// Its length must equal PersonCount.
	CustomAmounts []float64
}

// PersonShare is one person's computed share of the bill.
type PersonShare struct {
	Person     int     `json:"person"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage,omitempty"`
}

// SplitResult is the full outcome of a split calculation.
type SplitResult struct {
	// Type is "equal" or "custom".
	Type string `json:"type"`

	TotalAmount float64 `json:"totalAmount"`
	Subtotal    float64 `json:"subtotal"`
	TipAmount   float64 `json:"tipAmount"`
	TaxAmount   float64 `json:"taxAmount"`
	PersonCount int     `json:"personCount"`

	// AmountPerPerson is set for equal splits only.
	AmountPerPerson float64 `json:"amountPerPerson,omitempty"`

	Shares []PersonShare `json:"splitDetails"`

	// Difference and IsBalanced are set for custom splits: how far the
	// custom amounts are from the bill total, and whether they are within
	// a cent of it.
	Difference float64 `json:"difference,omitempty"`
	IsBalanced bool    `json:"isBalanced"`
}

// Calculate computes the split for the given input.
//
// Tip and tax are derived from the total; the subtotal is what remains.
// Custom amounts produce per-person percentages and a balance check against
// the total. Equal splits round each person's share to 2 decimal places
// independently; the rounding remainder is not redistributed, so the shares
// need not re-sum to the exact total.
func Calculate(input SplitInput) (*SplitResult, error) {
	if input.TotalAmount <= 0 {
		return nil, ErrInvalidTotal
	}
	if input.PersonCount < 1 {
		return nil, ErrInvalidPersonCount
	}
	if input.TipPercentage < 0 || input.TipPercentage > 100 {
		return nil, fmt.Errorf("tip: %w", ErrInvalidPercentage)
	}
	if input.TaxPercentage < 0 || input.TaxPercentage > 100 {
		return nil, fmt.Errorf("tax: %w", ErrInvalidPercentage)
	}

	total := decimal.NewFromFloat(input.TotalAmount)
	tip := total.Mul(decimal.NewFromFloat(input.TipPercentage)).Div(decimal.NewFromInt(100))
	tax := total.Mul(decimal.NewFromFloat(input.TaxPercentage)).Div(decimal.NewFromInt(100))
	subtotal := total.Sub(tip).Sub(tax)

	result := &SplitResult{
		TotalAmount: round2(total),
		Subtotal:    round2(subtotal),
		TipAmount:   round2(tip),
		TaxAmount:   round2(tax),
		PersonCount: input.PersonCount,
	}

	if len(input.CustomAmounts) > 0 && len(input.CustomAmounts) == input.PersonCount {
		result.Type = "custom"
		sum := decimal.Zero
		for i, amount := range input.CustomAmounts {
			d := decimal.NewFromFloat(amount)
			sum = sum.Add(d)
			result.Shares = append(result.Shares, PersonShare{
				Person:     i + 1,
				Amount:     round2(d),
				Percentage: round2(d.Div(total).Mul(decimal.NewFromInt(100))),
			})
		}
		diff := total.Sub(sum)
		result.Difference = round2(diff)
		result.IsBalanced = diff.Abs().LessThan(decimal.NewFromFloat(0.01))
		return result, nil
	}

	result.Type = "equal"
	perPerson := round2(total.Div(decimal.NewFromInt(int64(input.PersonCount))))
	result.AmountPerPerson = perPerson
	for i := 0; i < input.PersonCount; i++ {
		result.Shares = append(result.Shares, PersonShare{
			Person: i + 1,
			Amount: perPerson,
		})
	}
	return result, nil
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
